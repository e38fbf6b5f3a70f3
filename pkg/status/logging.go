// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🖥️ Console is a Sink that renders signals on a terminal. It is not safe
// for concurrent use; wrap it with Dispatch so every call arrives on the
// foreground context.
type Console struct {
	out       io.Writer
	logger    zerolog.Logger
	formatter Formatter
	bar       *pterm.ProgressbarPrinter
	title     string
	locked    bool
}

// 🏭 NewConsole creates a console sink writing to out
func NewConsole(out io.Writer, logger zerolog.Logger) *Console {
	return &Console{
		out:       out,
		logger:    logger,
		formatter: NewDefaultFormatter(),
	}
}

// Locked reports the last lock state received
func (c *Console) Locked() bool {
	return c.locked
}

func (c *Console) LockUI(locked bool) {
	c.locked = locked
	c.logger.Debug().Bool("locked", locked).Msg(c.formatter.FormatLock(locked))
}

func (c *Console) Progress(percent int) {
	percent = ClampProgress(percent)
	c.logger.Trace().Int("percent", percent).Msg("progress")

	if percent == MinProgress {
		c.stopBar()
		return
	}

	if c.bar == nil || percent < c.bar.Current {
		c.stopBar()
		bar, err := pterm.DefaultProgressbar.
			WithTotal(MaxProgress).
			WithTitle(c.title).
			WithWriter(c.out).
			Start()
		if err != nil {
			// fall back to a plain line when the bar cannot render
			fmt.Fprintln(c.out, c.formatter.FormatProgress(percent))
			return
		}
		c.bar = bar
	}

	if delta := percent - c.bar.Current; delta > 0 {
		c.bar.Add(delta)
	}
	if percent >= MaxProgress {
		c.stopBar()
	}
}

func (c *Console) OngoingStatus(text string) {
	c.title = text
	fmt.Fprintf(c.out, "%s %s\n", color.New(color.FgMagenta).Sprint("◆"), color.New(color.Faint).Sprint(text))
	c.logger.Info().Str("status", text).Msg("ongoing")
}

func (c *Console) CompletionStatus(text string, isError bool) {
	c.stopBar()
	if isError {
		pterm.Error.WithWriter(c.out).Println(text)
		c.logger.Error().Str("status", text).Msg("completion")
		return
	}
	pterm.Success.WithWriter(c.out).Println(text)
	c.logger.Info().Str("status", text).Msg("completion")
}

func (c *Console) stopBar() {
	if c.bar == nil {
		return
	}
	if _, err := c.bar.Stop(); err != nil {
		c.logger.Debug().Err(err).Msg("stopping progress bar")
	}
	c.bar = nil
}

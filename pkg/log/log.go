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

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent workbook entries
	nameWidth   = 35 // Base width for filename
	roleWidth   = 10 // Width for workbook role
	statusWidth = 15 // Width for status text
)

// 📗 Role is the part a workbook plays in a run
type Role string

const (
	RoleBase    Role = "base"
	RoleTarget  Role = "target"
	RoleCreated Role = "created"
)

// 🎯 WorkbookEntry represents one workbook touched by a run
type WorkbookEntry struct {
	Path    string // Workbook path
	Role    Role   // base, target or created
	Status  string // Short status text
	Missing bool   // Whether the file could not be found
}

// 📦 RunHeader describes the command being run
type RunHeader struct {
	Command string // merge, sort or create
	Base    string // Base workbook path
	Targets int    // Number of target workbooks
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	current *RunHeader
	entries []WorkbookEntry
}

// 🏭 New creates a new logger. Console lines go to console; structured logs
// go to stderr.
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🎯 NewContext attaches the structured logger to ctx for zerolog.Ctx
func NewContext(ctx context.Context, l *Logger) context.Context {
	return l.zlog.WithContext(ctx)
}

// 📝 formatWorkbook formats a workbook entry for display
func (l *Logger) formatWorkbook(e WorkbookEntry) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case e.Missing:
		symbol = '✗'
		symbolColor = color.FgRed
	case e.Role == RoleCreated:
		symbol = '✓'
		symbolColor = color.FgGreen
	case e.Role == RoleBase:
		symbol = '◆'
		symbolColor = color.FgMagenta
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	var roleColor color.Attribute
	switch e.Role {
	case RoleBase:
		roleColor = color.FgMagenta
	case RoleCreated:
		roleColor = color.FgGreen
	default:
		roleColor = color.FgBlue
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, filepath.Base(e.Path)),
		color.New(roleColor).Sprint(fmt.Sprintf("%-*s", roleWidth, e.Role)),
		fmt.Sprintf("%-*s", statusWidth, e.Status))
}

// 📝 LogWorkbook logs a workbook taking part in the current run
func (l *Logger) LogWorkbook(ctx context.Context, e WorkbookEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, e)

	fmt.Fprintln(l.console, l.formatWorkbook(e))

	l.zlog.Debug().
		Str("path", e.Path).
		Str("role", string(e.Role)).
		Str("status", e.Status).
		Bool("missing", e.Missing).
		Msg("workbook")
}

// 📝 StartRun prints the header of a command
func (l *Logger) StartRun(ctx context.Context, h RunHeader) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.current = &h
	l.entries = nil

	fmt.Fprintf(l.console, "[%s %s]\n",
		h.Command,
		color.New(color.FgCyan).Sprint(filepath.Base(h.Base)))

	if h.Targets > 0 {
		fmt.Fprintf(l.console, "%s %s %s %s\n",
			color.New(color.FgMagenta).Sprint("◆"),
			color.New(color.Bold).Sprint(filepath.Dir(h.Base)),
			color.New(color.Faint).Sprint("•"),
			color.New(color.FgYellow).Sprintf("%d targets", h.Targets))
	}

	l.zlog.Info().
		Str("command", h.Command).
		Str("base", h.Base).
		Int("targets", h.Targets).
		Msg("starting run")
}

// 📝 EndRun closes the current run
func (l *Logger) EndRun(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return
	}

	l.zlog.Info().
		Str("command", l.current.Command).
		Int("workbooks", len(l.entries)).
		Msg("run complete")

	l.current = nil
	l.entries = nil
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

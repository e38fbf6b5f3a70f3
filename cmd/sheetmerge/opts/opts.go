package opts

import (
	"io"
	"time"

	"github.com/walteh/sheetmerge/pkg/config"
	"github.com/walteh/sheetmerge/pkg/engine"
	"github.com/walteh/sheetmerge/pkg/log"
	"github.com/walteh/sheetmerge/pkg/operation"
)

// RootOpts contains shared options used by all commands. It is filled in
// once flags have been parsed.
type RootOpts struct {
	Config *config.Config
	Logger *log.Logger
	Engine engine.Engine
	Out    io.Writer
}

// Animation converts the configured animation for the orchestrator
func (o *RootOpts) Animation() operation.Animation {
	return operation.Animation{
		Steps:    o.Config.Animation.Steps,
		Interval: o.Config.Animation.Interval,
		Ceiling:  o.Config.Animation.Ceiling,
	}
}

// ResetDelay converts the configured progress reset delay for the
// orchestrator, where a negative delay disables the reset
func (o *RootOpts) ResetDelay() time.Duration {
	if o.Config.ProgressResetDelay <= 0 {
		return -1
	}
	return o.Config.ProgressResetDelay
}

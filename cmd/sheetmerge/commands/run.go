package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/sheetmerge/cmd/sheetmerge/opts"
	"github.com/walteh/sheetmerge/pkg/log"
	"github.com/walteh/sheetmerge/pkg/selection"
	"github.com/walteh/sheetmerge/pkg/session"
	"github.com/walteh/sheetmerge/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// ErrOperationFailed is returned when the operation reported an error
// completion
var ErrOperationFailed = errors.Base("operation failed")

// runSession drives one command: a foreground loop renders every signal,
// setup fills the selection and start kicks off the operation
func runSession(
	ctx context.Context,
	o *opts.RootOpts,
	header log.RunHeader,
	setup func(sel *selection.State),
	start func(ctx context.Context, s *session.Session) error,
) error {
	logger := zerolog.Ctx(ctx)

	loop := status.NewLoop()
	rec := status.NewRecorder()
	console := status.NewConsole(o.Out, *logger)

	s, err := session.New(session.Options{
		Engine:     o.Engine,
		Signals:    status.Dispatch(loop, status.Multi{console, rec}),
		Poster:     loop,
		Animation:  o.Animation(),
		ResetDelay: o.ResetDelay(),
		Logger:     logger,
	})
	if err != nil {
		return errors.Errorf("creating session: %w", err)
	}

	unsubscribe := s.Selection().Subscribe(func(snap selection.Snapshot) {
		logger.Debug().
			Stringer("mode", snap.Mode).
			Str("base", snap.ExistingBasePath).
			Str("targets", snap.TargetNames()).
			Bool("can_merge", snap.CanMerge).
			Bool("has_base", snap.HasValidBaseFile).
			Msg("selection changed")
	})
	defer unsubscribe()

	// the loop drains everything posted before Close even after ctx is
	// cancelled, so the final completion is never lost
	var group errgroup.Group
	group.Go(func() error {
		loop.Run(context.WithoutCancel(ctx))
		return nil
	})

	o.Logger.StartRun(ctx, header)
	defer o.Logger.EndRun(ctx)

	setup(s.Selection())
	creating := s.Selection().Mode() == selection.CreateNewBase
	startErr := start(ctx, s)

	s.Settle()
	s.Close()
	loop.Close()
	_ = group.Wait()

	if startErr != nil {
		return startErr
	}

	for _, e := range rec.Of(status.SignalCompletion) {
		if e.IsError {
			msg := strings.TrimSpace(e.Text)
			o.Logger.Error(msg)
			return errors.Errorf("%w: %s", ErrOperationFailed, msg)
		}
	}

	final := s.Selection().Snapshot()
	if final.HasValidBaseFile {
		entry := log.WorkbookEntry{
			Path:   final.ExistingBasePath,
			Role:   log.RoleBase,
			Status: "done",
		}
		if creating {
			entry.Role = log.RoleCreated
			entry.Status = "created"
		}
		o.Logger.LogWorkbook(ctx, entry)
	}
	o.Logger.Success(fmt.Sprintf("%s finished", header.Command))
	return nil
}

package commands

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/walteh/sheetmerge/cmd/sheetmerge/opts"
	"github.com/walteh/sheetmerge/pkg/log"
	"github.com/walteh/sheetmerge/pkg/selection"
	"github.com/walteh/sheetmerge/pkg/session"
	"gitlab.com/tozd/go/errors"
)

// NewSortCmd creates a new sort command
func NewSortCmd(o *opts.RootOpts) *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "sort --base FILE",
		Short: "Sort the sheets of a workbook by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			abs, err := filepath.Abs(base)
			if err != nil {
				return errors.Errorf("resolving base: %w", err)
			}

			return runSession(cmd.Context(), o, log.RunHeader{Command: "sort", Base: abs},
				func(sel *selection.State) {
					sel.SetExistingBase(abs)
				},
				func(ctx context.Context, s *session.Session) error {
					return s.Sort(ctx)
				})
		},
	}

	cmd.Flags().StringVarP(&base, "base", "b", "", "workbook to sort")
	_ = cmd.MarkFlagRequired("base")

	return cmd
}

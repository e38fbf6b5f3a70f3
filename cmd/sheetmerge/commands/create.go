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

// NewCreateCmd creates a new create command
func NewCreateCmd(o *opts.RootOpts) *cobra.Command {
	var (
		dir  string
		name string
	)

	cmd := &cobra.Command{
		Use:   "create --dir DIR --name NAME",
		Short: "Create an empty base workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return errors.Errorf("resolving directory: %w", err)
			}

			header := log.RunHeader{Command: "create", Base: filepath.Join(abs, selection.WithExtension(name))}
			return runSession(cmd.Context(), o, header,
				func(sel *selection.State) {
					sel.SetMode(selection.CreateNewBase)
					sel.SetBaseDirectory(abs)
					sel.SetBaseFilename(name)
				},
				func(ctx context.Context, s *session.Session) error {
					return s.CreateNew(ctx)
				})
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory to create the workbook in")
	cmd.Flags().StringVar(&name, "name", "", "file name (.xlsx is added when missing)")
	_ = cmd.MarkFlagRequired("dir")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

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

// NewMergeCmd creates a new merge command
func NewMergeCmd(o *opts.RootOpts) *cobra.Command {
	var (
		base    string
		newDir  string
		newName string
	)

	cmd := &cobra.Command{
		Use:   "merge [flags] TARGET...",
		Short: "Merge target workbooks into a base workbook",
		Long: `Merge copies every sheet of every target into the base workbook, in the
order the targets are given. Either pick an existing base with --base, or
let merge create one with --new-dir and --new-name. A created base is
selected as the existing base before the merge starts.

Targets may be glob patterns ("reports/**/*.xlsx"); matches are filtered
by the configured target_patterns.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if (base == "") == (newDir == "" && newName == "") {
				return errors.Errorf("use either --base or --new-dir with --new-name")
			}
			if base == "" && (newDir == "" || newName == "") {
				return errors.Errorf("--new-dir and --new-name go together")
			}

			targets, err := expandTargets(args, o.Config.TargetPatterns)
			if err != nil {
				return err
			}

			header := log.RunHeader{Command: "merge", Targets: len(targets)}
			if base != "" {
				if base, err = filepath.Abs(base); err != nil {
					return errors.Errorf("resolving base: %w", err)
				}
				header.Base = base
			} else {
				if newDir, err = filepath.Abs(newDir); err != nil {
					return errors.Errorf("resolving directory: %w", err)
				}
				header.Base = filepath.Join(newDir, selection.WithExtension(newName))
			}

			return runSession(ctx, o, header,
				func(sel *selection.State) {
					if base != "" {
						sel.SetExistingBase(base)
					} else {
						sel.SetMode(selection.CreateNewBase)
						sel.SetBaseDirectory(newDir)
						sel.SetBaseFilename(newName)
					}
					for _, t := range targets {
						missing := !exists(t)
						o.Logger.LogWorkbook(ctx, log.WorkbookEntry{
							Path:    t,
							Role:    log.RoleTarget,
							Status:  "queued",
							Missing: missing,
						})
						if missing {
							o.Logger.Warningf("target %s not found", t)
						}
					}
					sel.ReplaceTargets(targets)
				},
				func(ctx context.Context, s *session.Session) error {
					return s.Merge(ctx)
				})
		},
	}

	cmd.Flags().StringVarP(&base, "base", "b", "", "existing base workbook")
	cmd.Flags().StringVar(&newDir, "new-dir", "", "directory of the base workbook to create")
	cmd.Flags().StringVar(&newName, "new-name", "", "file name of the base workbook to create (.xlsx is added when missing)")

	return cmd
}

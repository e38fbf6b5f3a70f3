package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/sheetmerge/cmd/sheetmerge/commands"
	"github.com/walteh/sheetmerge/cmd/sheetmerge/opts"
	"github.com/walteh/sheetmerge/pkg/config"
	"github.com/walteh/sheetmerge/pkg/engine/excel"
	"github.com/walteh/sheetmerge/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd builds the command tree. Shared options are loaded once flags
// have been parsed.
func newRootCmd(out io.Writer) *cobra.Command {
	var (
		configFile string
		debug      bool
	)

	rootOpts := &opts.RootOpts{Out: out}

	rootCmd := &cobra.Command{
		Use:   "sheetmerge",
		Short: "Merge, sort and create Excel workbooks",
		Long: `sheetmerge copies the sheets of target workbooks into a base workbook,
sorts the sheets of a workbook by name, or creates a new empty base.
Only one operation runs at a time; progress is shown as it happens.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return loadRootOpts(cmd, rootOpts, configFile, debug)
		},
	}

	addRootFlags(rootCmd, &configFile, &debug)

	rootCmd.SetOut(out)
	rootCmd.AddCommand(
		commands.NewMergeCmd(rootOpts),
		commands.NewSortCmd(rootOpts),
		commands.NewCreateCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, configFile *string, debug *bool) {
	cmd.PersistentFlags().StringVarP(configFile, "config", "c", "", "config file path (default: .sheetmerge.{yaml,yml,json,hcl} in the working directory)")
	cmd.PersistentFlags().BoolVarP(debug, "debug", "d", false, "enable debug logging")
}

// loadRootOpts resolves the config file, builds the logger and attaches it
// to the command context
func loadRootOpts(cmd *cobra.Command, o *opts.RootOpts, configFile string, debug bool) error {
	ctx := cmd.Context()

	if configFile == "" {
		wd, err := os.Getwd()
		if err != nil {
			return errors.Errorf("getting working directory: %w", err)
		}
		configFile = config.Discover(wd)
	}

	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	level := cfg.Level()
	if debug {
		level = zerolog.DebugLevel
	}

	o.Config = cfg
	o.Logger = log.New(o.Out, level)
	o.Engine = excel.New()

	ctx = log.NewContext(ctx, o.Logger)
	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("configuration loaded")
	cmd.SetContext(ctx)

	return nil
}

package smbsnap

import (
	"fmt"
	"time"

	"github.com/arthur-debert/smbsnap/internal/version"
	"github.com/arthur-debert/smbsnap/pkg/config"
	"github.com/arthur-debert/smbsnap/pkg/core"
	"github.com/arthur-debert/smbsnap/pkg/diskinfo"
	"github.com/arthur-debert/smbsnap/pkg/display"
	"github.com/arthur-debert/smbsnap/pkg/errors"
	"github.com/arthur-debert/smbsnap/pkg/filesystem"
	"github.com/arthur-debert/smbsnap/pkg/logging"
	"github.com/arthur-debert/smbsnap/pkg/metrics"
	"github.com/arthur-debert/smbsnap/pkg/snapshot"
	"github.com/arthur-debert/smbsnap/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// shareNamesCompletion completes the configured share names
func shareNamesCompletion(g *globalFlags) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := config.Load(config.LoadOptions{Path: g.configPath})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		given := make(map[string]bool, len(args))
		for _, a := range args {
			given[a] = true
		}

		var names []string
		for _, s := range cfg.Directories.Shares {
			if !given[s] {
				names = append(names, s)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

func newRunCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:               "run [shares...]",
		Short:             MsgRunShort,
		Long:              MsgRunLong,
		Example:           MsgRunExample,
		GroupID:           "core",
		ValidArgsFunction: shareNamesCompletion(g),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			g.setupLogging(true, cfg.Logging.File)
			defer logging.Close()

			shares, err := cfg.SelectShares(args)
			if err != nil {
				return err
			}
			if err := cfg.CheckSharesRoot(filesystem.NewOS()); err != nil {
				return err
			}

			result, err := core.RunSnapshots(cmd.Context(), core.Options{
				Shares:      shares,
				SharesRoot:  cfg.Directories.SharesRoot,
				SnapRoot:    cfg.Directories.SnapRoot,
				Keep:        cfg.Snapshots.Count,
				PreExec:     cfg.Commands.PreExec,
				PostExec:    cfg.Commands.PostExec,
				Shell:       cfg.Commands.Shell,
				Sync:        cfg.Sync.StrategyOptions(),
				KeepPartial: cfg.Sync.KeepPartial,
				DryRun:      g.dryRun,
				DiskUsage:   diskinfo.Stat,
			})
			if err != nil {
				return err
			}

			if err := metrics.WriteTextfile(cfg.Metrics.Textfile, result); err != nil {
				log.Warn().Err(err).Msg("Could not write metrics")
			}

			summary, err := display.RenderRunSummary(result)
			if err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), summary)

			if !result.Success() {
				return errors.New(errors.ErrRunFailed, MsgRunFailed)
			}
			return nil
		},
	}
}

func newListCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:               "list [shares...]",
		Short:             MsgListShort,
		Long:              MsgListLong,
		GroupID:           "core",
		ValidArgsFunction: shareNamesCompletion(g),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			shares, err := cfg.SelectShares(args)
			if err != nil {
				return err
			}

			index := snapshot.NewIndex(filesystem.NewOS())
			listings := make([]display.ShareListing, 0, len(shares))
			for _, name := range shares {
				share := types.NewShare(name, cfg.Directories.SharesRoot, cfg.Directories.SnapRoot)
				set, err := index.List(share.SnapRoot)
				listings = append(listings, display.ShareListing{Share: name, Set: set, Err: err})
			}

			var usage *diskinfo.Usage
			if u, err := diskinfo.Stat(cfg.Directories.SnapRoot); err == nil {
				usage = &u
			} else {
				log.Debug().Err(err).Msg("Cannot read snapshot filesystem usage")
			}

			fmt.Fprint(cmd.OutOrStdout(), display.RenderSnapshotList(listings, time.Now(), usage))
			return nil
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := config.GenerateSample()
			if err != nil {
				return fmt.Errorf(MsgErrSampleConfig, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), sample)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}

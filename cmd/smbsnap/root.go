package smbsnap

import (
	"fmt"
	"os"

	"github.com/arthur-debert/smbsnap/internal/version"
	"github.com/arthur-debert/smbsnap/pkg/config"
	"github.com/arthur-debert/smbsnap/pkg/display"
	"github.com/arthur-debert/smbsnap/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	configPath string
	logFile    string
	verbosity  int
	dryRun     bool
	noColor    bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	color := display.ColorEnabled(os.Stdout, false)
	cobra.AddTemplateFuncs(templateFuncs(color))

	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "smbsnap",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			g.setupLogging(false, "")
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&g.logFile, "log-file", "l", "", MsgFlagLogFile)
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&g.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRunCmd(g))
	rootCmd.AddCommand(newListCmd(g))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	installTopics(rootCmd, color)
	rootCmd.SetHelpCommandGroupID("misc")

	return rootCmd
}

// setupLogging configures the global logger. Without withFile only the
// console is written. Otherwise the --log-file flag wins over configFile,
// which wins over the default location.
func (g *globalFlags) setupLogging(withFile bool, configFile string) {
	logFile := g.logFile
	if logFile == "" {
		logFile = configFile
	}

	color := display.ColorEnabled(os.Stdout, g.noColor)
	display.SetColor(color)

	logging.SetupLogger(logging.Options{
		Verbosity:   g.verbosity,
		LogFile:     logFile,
		NoColor:     !color,
		ConsoleOnly: !withFile,
	})
}

// loadConfig loads the configuration honoring --config and --log-file
func (g *globalFlags) loadConfig() (*config.Config, error) {
	overrides := map[string]interface{}{}
	if g.logFile != "" {
		overrides["logging.file"] = g.logFile
	}

	cfg, err := config.Load(config.LoadOptions{Path: g.configPath, Overrides: overrides})
	if err != nil {
		return nil, err
	}

	log.Debug().Str("config", cfg.Source).Msg("Configuration loaded")
	return cfg, nil
}

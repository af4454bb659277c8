package cli

import (
	"github.com/spf13/cobra"

	"github.com/lucaschallamel/BMAD-METHOD/internal/branding"
	"github.com/lucaschallamel/BMAD-METHOD/internal/config"
	"github.com/lucaschallamel/BMAD-METHOD/internal/logger"
	"github.com/lucaschallamel/BMAD-METHOD/internal/version"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` converts BMAD agent and workflow descriptors into WARP Terminal
configuration: agent records, workflow definitions, rules, prompts and
environment files under .warp/.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		level, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
		if err != nil {
			return err
		}
		// The flag wins over the saved setting only when given.
		if !cmd.Flags().Changed("log-level") {
			level = config.Get(config.KeyLogLevel)
		}
		log := logger.SetupLogger(level, logJSON, logSource)
		cmd.SetContext(logger.ContextWithLogger(cmd.Context(), log))
		return nil
	},
}

func init() {
	logger.AddFlags(rootCmd)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(v, commit, date string) error {
	buildVersion = version.Resolve(v)
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

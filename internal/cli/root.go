package cli

import (
	"github.com/salesdash/scaffolder/internal/branding"
	"github.com/salesdash/scaffolder/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates the components/ directory in the current working directory
and populates it with the empty .jsx files of the dashboard component set.
Existing files are truncated to zero length.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runScaffold,
}

func init() {
	rootCmd.PersistentFlags().Bool(config.KeyVerbose, false, "Print each created path to stderr")
	_ = viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup(config.KeyVerbose))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

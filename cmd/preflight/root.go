package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/forked-u/onex-preflight/internal/logging"
)

var (
	verbosity int
	noColor   bool

	rootCmd = &cobra.Command{
		Use:   "preflight",
		Short: "Verify workflow requirements before anything runs",
		Long: `preflight checks that the system packages, runtime modules, and container
images a workflow declares are actually present on this host. It reports
what is missing; it never installs anything.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(managersCmd)
	rootCmd.AddCommand(lastCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig wires the optional config file and PREFLIGHT_* environment
// variables into flag defaults. Explicit flags always win.
func initConfig() {
	viper.SetConfigName("preflight")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(xdg.ConfigHome)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("PREFLIGHT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Warn().Err(err).Msg("Failed to read config file")
		}
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "preflight version %s\n", version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", date)
	},
}

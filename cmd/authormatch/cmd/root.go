// Package cmd implements the authormatch command tree.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scholarly/authormatch/pkg/logging"
)

var (
	configFile string
	outputFlag string
	logLevel   string
	verbose    bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "authormatch",
	Short: "Reconcile author name lists with ORCID identity records",
	Long: `Authormatch pairs the author names of a record (a publication byline,
a citation, a catalog entry) with candidate ORCID identity records, so that
persistent identifiers can be attached without manual curation.

Matching runs a fixed chain of strategies against shrinking pools of
unmatched names: exact full name, exact inverted name, token and
abbreviation similarity, and exact credit name. Every accepted pairing
reports the strategy that produced it and a confidence score.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.authormatch.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: table, json, or yaml (default auto-detects)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (shortcut for --log-level debug)")

	for _, flag := range []string{"output", "log-level", "verbose"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("Failed to bind %s flag: %v", flag, err))
		}
	}
}

// initConfig loads configuration in order of precedence:
// flags > environment > .env files > config file > defaults.
func initConfig() {
	// .env files are loaded before viper env binding so both are visible
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".authormatch")
	}

	// Missing config file is fine
	_ = viper.ReadInConfig()
}

// configureLogging applies the resolved logging configuration. Precedence:
// --log-level, then --verbose, then LOG_LEVEL, then info.
func configureLogging() {
	level := viper.GetString("log-level")
	if level == "" && viper.GetBool("verbose") {
		level = "debug"
	}
	if level == "" {
		level = viper.GetString("log_level")
	}
	if level == "" {
		level = "info"
	}

	logging.Configure(&logging.Config{
		Level:  level,
		Format: viper.GetString("log_format"),
	})
}

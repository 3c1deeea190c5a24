// Package cli wires the reach command tree: demo, rank, and interactive.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mkravets/reach/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "reach",
	Short:         "Closeness-centrality explorer for undirected graphs",
	Long:          "reach ranks the nodes of an undirected graph by influence:\nthe closeness-centrality score (N-1) / Σ shortest distances to every other node.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "reach:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .reach.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format: text or json")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "console", "log format: console or json")

	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".reach")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("REACH")
	viper.AutomaticEnv()

	// No config file is fine; flags and defaults carry the day.
	_ = viper.ReadInConfig()
}

// newLogger builds the process logger from the effective configuration.
func newLogger() *zap.Logger {
	lg, err := logging.New(viper.GetString("log.level"), viper.GetString("log.format"))
	if err != nil {
		return zap.NewNop()
	}

	return lg
}

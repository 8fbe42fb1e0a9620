// Package main is the entry point for the passforge CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/passforge/passforge-core/internal/config"
	"github.com/passforge/passforge-core/internal/logger"
	"github.com/spf13/cobra"
)

var (
	cfg       *config.Environment
	appLogger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "passforge",
	Short: "Wallet pass bundle builder",
	Long: `Builds signed, portable wallet pass bundles (.pkpass).
Scaffolds pass directories and seals them into signed archives.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		appLogger = logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel))
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(signCmd)
}

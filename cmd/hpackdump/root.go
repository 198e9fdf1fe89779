package main

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"

	"hpackdump/internal/shared/recovery"
)

var (
	verbose bool

	logger    *zap.Logger
	recoverer *recovery.Recoverer
)

var rootCmd = &cobra.Command{
	Use:   "hpackdump",
	Short: "Decode and inspect RFC 7541 HPACK header blocks",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return err
		}
		recoverer = recovery.NewRecoverer(logger, nil)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(inspectCmd)
}

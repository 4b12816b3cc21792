// Package cli implements the downsize command line.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-downsize/internal/cli/log"
)

// New returns the root command with all sub-commands attached.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "downsize [sub-command]",
		Short: "Reorder JSON fields for better gzip compression",
		Long: `downsize regroups the fields of every JSON object by value type (numbers,
booleans, nulls, nested containers, strings) so that gzip and similar
compressors find longer repeated runs. The content of the document does not
change, only the order of object members.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := log.GetBaseLogger(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(log.WithLogger(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		DisableAutoGenTag: true,
	}
	log.RegisterLoggingFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newOptimizeCmd(),
		newRebuildCmd(),
		newStatsCmd(),
		newVerifyCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}

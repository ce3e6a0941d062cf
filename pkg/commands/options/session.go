// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// SessionOptions selects where a command's data comes from.
type SessionOptions struct {
	Restore bool
	Seed    int64
}

func AddSessionArgs(cmd *cobra.Command, o *SessionOptions) {
	cmd.Flags().BoolVar(&o.Restore, "restore", false,
		Wrap80("Start from the latest saved snapshot instead of generated demo data."))
	cmd.Flags().Int64Var(&o.Seed, "seed", 1,
		"Seed for generated demo data.")
}

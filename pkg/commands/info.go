package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/hrow/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where snapshots are stored.",
		Example: `
hrow info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := load(true)
			if err != nil {
				return err
			}
			s := info.Info{
				Config:      e.cfg,
				Persistence: e.p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

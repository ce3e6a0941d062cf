package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/hrow/pkg/commands/options"
	"tableflip.dev/hrow/pkg/runner/snapshot"
)

func addSnapshot(topLevel *cobra.Command) {
	so := &options.SessionOptions{}
	no := &options.SnapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save committed state, or list saved snapshots.",
		Example: `
hrow snapshot
hrow snapshot --name week-12
hrow snapshot --list
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := load(false)
			if err != nil {
				return err
			}
			defer func() { _ = e.log.Sync() }()

			ctx := context.Background()
			s := snapshot.Snapshot{
				Persistence: e.p,
				Name:        no.Name,
				List:        no.List,
			}
			if !no.List {
				if s.Controller, err = e.controller(ctx, so); err != nil {
					return err
				}
			}
			return s.Do(ctx)
		},
	}

	options.AddSessionArgs(cmd, so)
	options.AddSnapshotArgs(cmd, no)
	topLevel.AddCommand(cmd)
}

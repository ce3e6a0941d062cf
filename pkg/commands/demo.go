package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/hrow/pkg/commands/options"
	"tableflip.dev/hrow/pkg/runner/demo"
)

func addDemo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted edit session and print what it committed.",
		Example: `
hrow demo
hrow demo --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := load(false)
			if err != nil {
				return output.HandleError(err)
			}
			defer func() { _ = e.log.Sync() }()

			d := demo.Demo{Log: e.log, Output: output.Format()}
			err = d.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

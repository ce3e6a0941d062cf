package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/hrow/pkg/commands/options"
	"tableflip.dev/hrow/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	so := &options.SessionOptions{}
	to := &options.TableOptions{}

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"get", "ls"},
		Short:   "Print committed tables.",
		Example: `
hrow show
hrow show --table finance
hrow show --restore --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := load(false)
			if err != nil {
				return output.HandleError(err)
			}
			defer func() { _ = e.log.Sync() }()

			ctx := context.Background()
			ctrl, err := e.controller(ctx, so)
			if err != nil {
				return output.HandleError(err)
			}
			s := show.Show{
				Controller: ctrl,
				Table:      to.Table,
				Output:     output.Format(),
			}
			err = s.Do(ctx)
			return output.HandleError(err)
		},
	}

	options.AddSessionArgs(cmd, so)
	options.AddTableArgs(cmd, to)
	_ = cmd.RegisterFlagCompletionFunc("table", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return options.TableCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

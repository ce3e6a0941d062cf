package commands

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/hrow/pkg/commands/options"
	"tableflip.dev/hrow/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	so := &options.SessionOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
hrow ui
hrow ui --restore
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			fd := os.Stdout.Fd()
			if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				return errors.New("ui needs an interactive terminal, try `hrow show`")
			}
			e, err := load(true)
			if err != nil {
				return err
			}
			defer func() { _ = e.log.Sync() }()

			ctx := context.Background()
			ctrl, err := e.controller(ctx, so)
			if err != nil {
				return err
			}
			i := ui.UI{Controller: ctrl, Persistence: e.p, Log: e.log}
			return i.Do(ctx)
		},
	}

	options.AddSessionArgs(cmd, so)
	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/hrow/pkg/app"
	"tableflip.dev/hrow/pkg/commands/options"
	"tableflip.dev/hrow/pkg/config"
	"tableflip.dev/hrow/pkg/logging"
	"tableflip.dev/hrow/pkg/runner/session"
	"tableflip.dev/hrow/pkg/store"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "hrow",
		Short: base.Wrap80("Keep workers, attendance, partners and finances in one place."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addSnapshot(topLevel)
	addDemo(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}

// env is what every data command needs before it runs.
type env struct {
	cfg *config.Config
	log *zap.Logger
	p   store.Persistence
}

// load reads the config and opens the snapshot store. Logs go to the
// configured file, or to stderr when quiet is false.
func load(quiet bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := zap.NewNop()
	switch {
	case cfg.Log.File != "":
		log, err = logging.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	case !quiet:
		log, err = logging.New(cfg.Log.Level, cfg.Log.Format, "stderr")
	}
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, p: p}, nil
}

func (e *env) controller(ctx context.Context, so *options.SessionOptions) (*app.Controller, error) {
	s := session.Session{
		Config:      e.cfg,
		Log:         e.log,
		Persistence: e.p,
		Restore:     so.Restore,
		Seed:        so.Seed,
	}
	return s.Controller(ctx)
}

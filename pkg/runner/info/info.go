package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/hrow/pkg/config"
	"tableflip.dev/hrow/pkg/printers"
	"tableflip.dev/hrow/pkg/store"
)

type Info struct {
	Config      *config.Config
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = printers.Stdout()
	}

	if override := os.Getenv("HROW_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "HROW_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "HROW_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = config.Load()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintf(out, "Config.log: %s (%s)\n", n.Config.Log.Level, n.Config.Log.Format)

	if n.Persistence == nil {
		return errors.New("info: no snapshot store")
	}

	_, _ = fmt.Fprintln(out, "Snapshots:")
	found := 0
	for _, name := range n.Persistence.Names(ctx) {
		_, _ = fmt.Fprintf(out, "  %s\n", name)
		found++
	}
	if found == 0 {
		_, _ = fmt.Fprintln(out, "  no snapshots")
	}
	return nil
}

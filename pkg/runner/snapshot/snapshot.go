// Package snapshot writes or lists snapshots of committed state.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/hrow/pkg/app"
	"tableflip.dev/hrow/pkg/printers"
	"tableflip.dev/hrow/pkg/store"
)

type Snapshot struct {
	Controller  *app.Controller
	Persistence store.Persistence
	Name        string
	List        bool
	Out         io.Writer
}

func (s *Snapshot) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("snapshot: no store configured")
	}
	out := s.Out
	if out == nil {
		out = printers.Stdout()
	}

	if s.List {
		names := s.Persistence.Names(ctx)
		if len(names) == 0 {
			_, _ = color.New(color.Faint, color.Italic).Fprintln(out, " no snapshots")
			return nil
		}
		for _, n := range names {
			_, _ = fmt.Fprintf(out, "  %s\n", n)
		}
		return nil
	}

	name := s.Name
	if name == "" {
		name = store.DefaultName
	}
	snap := s.Controller.Snapshot()
	if err := s.Persistence.Save(ctx, name, snap); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "saved %q: %d workers, %d partners, %d expenses, %d revenues\n",
		name, len(snap.Workers), len(snap.Partners), len(snap.Expenses), len(snap.Revenues))
	return nil
}

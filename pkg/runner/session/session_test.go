package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/hrow/pkg/config"
	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/store"
)

type dir string

func (d dir) BasePath() string { return string(d) }

func TestSeededSession(t *testing.T) {
	s := &Session{
		Config: &config.Config{Seed: config.Seed{Workers: 3, Finance: 2}},
		Seed:   7,
		Now:    func() time.Time { return time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC) },
	}
	ctrl, err := s.Controller(context.Background())
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	if n := len(ctrl.CommittedWorkers()); n != 3 {
		t.Fatalf("expected 3 workers, got %d", n)
	}
	if n := len(ctrl.CommittedAttendance().Columns); n != DemoDays {
		t.Fatalf("expected %d columns, got %d", DemoDays, n)
	}
}

func TestRestoreSession(t *testing.T) {
	ctx := context.Background()
	p, err := store.Load(dir(t.TempDir()))
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	s := &Session{Persistence: p, Restore: true}
	if _, err := s.Controller(ctx); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := p.Save(ctx, store.DefaultName, store.Snapshot{Workers: []entity.Worker{{ID: 4, Name: "Ann"}}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	ctrl, err := s.Controller(ctx)
	if err != nil {
		t.Fatalf("controller: %v", err)
	}
	if got := ctrl.CommittedWorkers(); len(got) != 1 || got[0].Name != "Ann" {
		t.Fatalf("unexpected workers %+v", got)
	}
}

func TestRestoreNeedsStore(t *testing.T) {
	s := &Session{Restore: true}
	if _, err := s.Controller(context.Background()); err == nil {
		t.Fatalf("expected an error without a store")
	}
}

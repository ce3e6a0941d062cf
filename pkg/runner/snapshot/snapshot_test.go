package snapshot

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/hrow/pkg/app"
	"tableflip.dev/hrow/pkg/entity"
	"tableflip.dev/hrow/pkg/store"
)

type dir string

func (d dir) BasePath() string { return string(d) }

func TestSaveThenList(t *testing.T) {
	ctx := context.Background()
	p, err := store.Load(dir(t.TempDir()))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	ctrl := app.New()
	ctrl.Restore(store.Snapshot{Workers: []entity.Worker{{ID: 1, Name: "Ann"}}})

	var buf bytes.Buffer
	s := &Snapshot{Controller: ctrl, Persistence: p, Out: &buf}
	if err := s.Do(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.Contains(buf.String(), `saved "latest": 1 workers`) {
		t.Fatalf("unexpected output %q", buf.String())
	}

	buf.Reset()
	s.List = true
	if err := s.Do(ctx); err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.TrimSpace(buf.String()) != store.DefaultName {
		t.Fatalf("unexpected listing %q", buf.String())
	}
}

func TestNeedsStore(t *testing.T) {
	if err := (&Snapshot{}).Do(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}
}

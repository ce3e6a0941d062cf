// Package session builds the controller a command works on, either from
// the last saved snapshot or from generated demo data.
package session

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/hrow/pkg/app"
	"tableflip.dev/hrow/pkg/config"
	"tableflip.dev/hrow/pkg/ident"
	"tableflip.dev/hrow/pkg/seed"
	"tableflip.dev/hrow/pkg/store"
)

// DemoDays is the number of attendance columns in generated data.
const DemoDays = 5

type Session struct {
	Config      *config.Config
	Log         *zap.Logger
	Persistence store.Persistence

	// Restore loads store.DefaultName instead of generating data.
	Restore bool
	// Seed makes generated data reproducible.
	Seed int64
	Now  func() time.Time
}

// Controller returns a controller holding the session's committed state.
func (s *Session) Controller(ctx context.Context) (*app.Controller, error) {
	now := s.Now
	if now == nil {
		now = time.Now
	}
	ids := ident.NewSequence(0)
	ctrl := app.New(app.WithLogger(s.Log), app.WithIDs(ids), app.WithClock(now))

	if s.Restore {
		if s.Persistence == nil {
			return nil, errors.New("session: restore needs a snapshot store")
		}
		snap, err := s.Persistence.Load(ctx, store.DefaultName)
		if err != nil {
			return nil, err
		}
		ctrl.Restore(snap)
		return ctrl, nil
	}

	opts := seed.Options{Workers: 20, Finance: 5, Days: DemoDays, Seed: s.Seed}
	if s.Config != nil {
		opts.Workers = s.Config.Seed.Workers
		opts.Finance = s.Config.Seed.Finance
	}
	ctrl.Restore(seed.Snapshot(opts, ids, now()))
	return ctrl, nil
}

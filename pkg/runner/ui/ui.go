// Package ui runs the terminal front end.
package ui

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tableflip.dev/hrow/pkg/app"
	"tableflip.dev/hrow/pkg/store"
	"tableflip.dev/hrow/pkg/tui"
)

type UI struct {
	Controller  *app.Controller
	Persistence store.Persistence
	Log         *zap.Logger
}

func (u *UI) Do(_ context.Context) error {
	if u.Controller == nil {
		return errors.New("ui: no session")
	}
	m := tui.New(u.Controller, tui.WithPersistence(u.Persistence), tui.WithLogger(u.Log))
	return tui.Run(m)
}

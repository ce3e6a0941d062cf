package auth

import (
	"errors"
	"testing"
)

func TestDefaultDirectory(t *testing.T) {
	d, err := DefaultDirectory()
	if err != nil {
		t.Fatalf("default directory: %v", err)
	}
	tests := map[string]struct {
		user, pass string
		want       Role
		wantErr    error
	}{
		"admin":          {user: "admin", pass: "admin", want: RoleAdmin},
		"worker":         {user: "worker", pass: "worker", want: RoleWorker},
		"wrong password": {user: "admin", pass: "nope", wantErr: ErrInvalidCredentials},
		"unknown user":   {user: "root", pass: "root", wantErr: ErrInvalidCredentials},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := d.Authenticate(tc.user, tc.pass)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Fatalf("expected role %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRegisterValidates(t *testing.T) {
	d := NewDirectory()
	d.Cost = 4
	if err := d.Register("", "x", RoleAdmin); err == nil {
		t.Fatalf("expected error for blank user")
	}
	if err := d.Register("x", "x", Role("root")); err == nil {
		t.Fatalf("expected error for unknown role")
	}
	if !RoleAdmin.CanEdit() || RoleWorker.CanEdit() || RoleNone.CanEdit() {
		t.Fatalf("only admins may edit")
	}
}

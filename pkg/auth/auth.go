// Package auth resolves a login to a role. There are two roles: admins may
// change records, workers may only look.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Role is the binary permission flag of a session.
type Role string

const (
	// RoleNone is a logged out session.
	RoleNone Role = ""
	// RoleAdmin may edit every table.
	RoleAdmin Role = "admin"
	// RoleWorker has read-only access.
	RoleWorker Role = "worker"
)

// CanEdit reports whether the role may mutate records.
func (r Role) CanEdit() bool {
	return r == RoleAdmin
}

// ErrInvalidCredentials is returned for an unknown user or wrong password.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

type account struct {
	hash []byte
	role Role
}

// Directory maps user names to bcrypt password hashes and roles.
type Directory struct {
	// Cost is the bcrypt cost used by Register; zero means bcrypt.DefaultCost.
	Cost     int
	accounts map[string]account
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{accounts: map[string]account{}}
}

// DefaultDirectory holds the built-in admin/admin and worker/worker accounts.
func DefaultDirectory() (*Directory, error) {
	d := NewDirectory()
	d.Cost = bcrypt.MinCost
	if err := d.Register("admin", "admin", RoleAdmin); err != nil {
		return nil, err
	}
	if err := d.Register("worker", "worker", RoleWorker); err != nil {
		return nil, err
	}
	return d, nil
}

// Register stores an account, replacing one with the same name.
func (d *Directory) Register(username, password string, role Role) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("auth: username required")
	}
	if role != RoleAdmin && role != RoleWorker {
		return fmt.Errorf("auth: unknown role %q", role)
	}
	cost := d.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return fmt.Errorf("auth: hash password: %w", err)
	}
	if d.accounts == nil {
		d.accounts = map[string]account{}
	}
	d.accounts[username] = account{hash: hash, role: role}
	return nil
}

// Authenticate checks the password and returns the account's role.
func (d *Directory) Authenticate(username, password string) (Role, error) {
	acc, ok := d.accounts[strings.TrimSpace(username)]
	if !ok {
		return RoleNone, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
		return RoleNone, ErrInvalidCredentials
	}
	return acc.role, nil
}

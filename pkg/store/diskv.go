// Package store writes snapshots of committed state to disk. It is an
// optional collaborator: a session works entirely in memory without it.
package store

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// ErrNotFound is returned when no snapshot has the requested name.
var ErrNotFound = errors.New("store: snapshot not found")

// Persistence saves and loads named snapshots.
type Persistence interface {
	Save(ctx context.Context, name string, s Snapshot) error
	Load(ctx context.Context, name string) (Snapshot, error)
	Names(ctx context.Context) []string
	Delete(ctx context.Context, name string) error
}

// Config points the store at a directory.
type Config interface {
	BasePath() string
}

// Load creates a Persistence backed by diskv under cfg.BasePath().
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		return nil, errors.New("store: config required")
	}
	basePath := strings.TrimSpace(cfg.BasePath())
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

const snapshotPrefix = "snapshots"

func (p *persistence) Save(_ context.Context, name string, s Snapshot) error {
	key, err := toKey(name)
	if err != nil {
		return err
	}
	data, err := s.Marshal()
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write snapshot %q: %w", name, err)
	}
	return nil
}

func (p *persistence) Load(_ context.Context, name string) (Snapshot, error) {
	key, err := toKey(name)
	if err != nil {
		return Snapshot{}, err
	}
	data, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{}, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return Snapshot{}, fmt.Errorf("store: read snapshot %q: %w", name, err)
	}
	s, err := Unmarshal(data)
	if err != nil {
		return Snapshot{}, fmt.Errorf("store: decode snapshot %q: %w", name, err)
	}
	return s, nil
}

func (p *persistence) Names(ctx context.Context) []string {
	names := make([]string, 0)
	for key := range p.d.KeysPrefix(snapshotPrefix+"-", ctx.Done()) {
		name, err := fromKey(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *persistence) Delete(_ context.Context, name string) error {
	key, err := toKey(name)
	if err != nil {
		return err
	}
	if !p.d.Has(key) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return p.d.Erase(key)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `snapshots-<hex name>`; hex keeps separators out of the name.
func toKey(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("store: snapshot name required")
	}
	return fmt.Sprintf("%s-%s", snapshotPrefix, hex.EncodeToString([]byte(name))), nil
}

func fromKey(key string) (string, error) {
	encoded := strings.TrimPrefix(key, snapshotPrefix+"-")
	b, err := hex.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("fromKey: %w", err)
	}
	return string(b), nil
}

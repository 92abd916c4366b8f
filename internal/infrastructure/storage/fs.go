package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"svw.info/numbers/internal/ctxlog"
	"svw.info/numbers/internal/domain"
	"svw.info/numbers/internal/ports"
)

var _ ports.Storage = (*FS)(nil)

// FS keeps the whole leaderboard in one JSON file.
type FS struct{ path string }

func NewFS(path string) *FS { return &FS{path: path} }

// Path returns the backing file.
func (s *FS) Path() string { return s.path }

// Load reads the leaderboard. A missing file is an empty leaderboard.
func (s *FS) Load(ctx context.Context) (domain.Leaderboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewLeaderboard(), nil
		}
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	var lb domain.Leaderboard
	if err := json.Unmarshal(data, &lb); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	return normalize(lb), nil
}

// Save records a result for d. A corrupt file is moved aside to
// <path>.corrupt and replaced by a fresh leaderboard.
func (s *FS) Save(ctx context.Context, name string, attempts int, d domain.Difficulty) error {
	name, err := validateEntry(name, attempts)
	if err != nil {
		return err
	}
	lb, err := s.Load(ctx)
	switch {
	case errors.Is(err, ErrCorrupt):
		aside := s.path + ".corrupt"
		if rerr := os.Rename(s.path, aside); rerr != nil {
			return fmt.Errorf("move corrupt leaderboard aside: %w", rerr)
		}
		ctxlog.FromContext(ctx).Warn("corrupt leaderboard moved aside", "path", s.path, "backup", aside, "err", err)
		lb = domain.NewLeaderboard()
	case err != nil:
		return err
	}
	key := d.String()
	lb[key] = lb[key].Record(name, attempts)
	if err := s.write(lb); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("score saved", "difficulty", key, "name", name, "attempts", attempts)
	return nil
}

// Top returns the ranked entries for d.
func (s *FS) Top(ctx context.Context, d domain.Difficulty) ([]domain.Entry, error) {
	lb, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return lb[d.String()].Top(), nil
}

// Clear overwrites the file with the empty leaderboard.
func (s *FS) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.write(domain.NewLeaderboard()); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("leaderboard cleared", "path", s.path)
	return nil
}

// write replaces the file via a temp file and rename.
func (s *FS) write(lb domain.Leaderboard) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".leaderboard-*.json")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(lb); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode leaderboard: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace leaderboard: %w", err)
	}
	return nil
}

package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"svw.info/numbers/internal/domain"
)

func openTempSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "leaderboard.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestSQLiteLoadEmpty(t *testing.T) {
	s := openTempSQLite(t)
	lb, err := s.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(domain.NewLeaderboard(), lb); diff != "" {
		t.Fatalf("leaderboard mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLiteSaveMatchesFileRules(t *testing.T) {
	ctx := context.Background()
	s := openTempSQLite(t)
	for name, attempts := range map[string]int{"a": 9, "b": 2, "c": 7, "d": 4, "e": 10, "f": 1, "g": 6} {
		if err := s.Save(ctx, name, attempts, domain.Medium); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Save(ctx, "b", 5, domain.Medium); err != nil {
		t.Fatal(err)
	}
	top, err := s.Top(ctx, domain.Medium)
	if err != nil {
		t.Fatal(err)
	}
	want := []domain.Entry{
		{Rank: 1, Name: "f", Attempts: 1},
		{Rank: 2, Name: "b", Attempts: 2},
		{Rank: 3, Name: "d", Attempts: 4},
		{Rank: 4, Name: "g", Attempts: 6},
		{Rank: 5, Name: "c", Attempts: 7},
	}
	if diff := cmp.Diff(want, top); diff != "" {
		t.Fatalf("top mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLiteClear(t *testing.T) {
	ctx := context.Background()
	s := openTempSQLite(t)
	if err := s.Save(ctx, "ana", 3, domain.Easy); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	top, err := s.Top(ctx, domain.Easy)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 0 {
		t.Fatalf("top after clear = %v", top)
	}
}

func TestOpenSQLiteOnGarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.db")
	if err := os.WriteFile(path, []byte("this is definitely not a sqlite database file, just text padding it out"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenSQLite(path); err == nil {
		t.Fatal("expected error opening garbage file")
	}
}

package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"svw.info/numbers/internal/config"
)

func testConfig(t *testing.T, backend, file string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.LeaderboardBackend = backend
	cfg.LeaderboardPath = filepath.Join(t.TempDir(), file)
	cfg.Seed = 99
	cfg.LogLevel = "debug"
	return &cfg
}

func TestRunSessionOnBothBackends(t *testing.T) {
	cases := []struct {
		backend string
		file    string
	}{
		{config.BackendJSON, "leaderboard.json"},
		{config.BackendSQLite, "leaderboard.db"},
	}
	for _, tc := range cases {
		t.Run(tc.backend, func(t *testing.T) {
			cfg := testConfig(t, tc.backend, tc.file)
			lines := []string{"", "easy"}
			for i := 0; i < 10; i++ {
				lines = append(lines, "hint")
			}
			lines = append(lines, "yes", "ana")
			in := strings.NewReader(strings.Join(lines, "\n") + "\n")

			var out, logs bytes.Buffer
			a, err := New(cfg, in, &out, &logs)
			if err != nil {
				t.Fatalf("new app: %v", err)
			}
			if err := a.Run(context.Background()); err != nil {
				t.Fatalf("run: %v", err)
			}
			if !strings.Contains(out.String(), "1. ana — 10 attempts") {
				t.Fatalf("leaderboard not shown:\n%s", out.String())
			}
			if !strings.Contains(logs.String(), "app configured") {
				t.Fatalf("debug log missing:\n%s", logs.String())
			}
		})
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("error", "json", &buf)
	l.Warn("hidden")
	l.Error("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), `"msg":"shown"`) {
		t.Fatalf("unexpected log output: %s", buf.String())
	}
}

func TestNewLogsResolvedConfig(t *testing.T) {
	cfg := testConfig(t, config.BackendJSON, "leaderboard.json")
	var logs bytes.Buffer
	if _, err := New(cfg, strings.NewReader(""), &bytes.Buffer{}, &logs); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"app configured", "log_level=debug", "seed=99"} {
		if !strings.Contains(logs.String(), want) {
			t.Fatalf("log missing %q:\n%s", want, logs.String())
		}
	}
}

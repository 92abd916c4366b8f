package terminal

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"svw.info/numbers/internal/domain"
	"svw.info/numbers/internal/generator"
	"svw.info/numbers/internal/hint"
	"svw.info/numbers/internal/infrastructure/storage"
	"svw.info/numbers/internal/usecase"
	"svw.info/numbers/internal/validator"
)

type harness struct {
	store *storage.FS
	uc    *usecase.Service
}

func newHarness(t *testing.T, secret int) *harness {
	t.Helper()
	st := storage.NewFS(filepath.Join(t.TempDir(), "leaderboard.json"))
	return &harness{
		store: st,
		uc:    usecase.NewService(generator.Fixed(secret), validator.New(), hint.NewWindow(), st),
	}
}

func (h *harness) play(t *testing.T, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	if err := New(h.uc, in, &out).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("output missing %q\n--- output ---\n%s", w, out)
		}
	}
}

func TestEasyWinInThreeSavesWithoutAsking(t *testing.T) {
	h := newHarness(t, 27)
	out := h.play(t, "", "easy", "10", "40", "27", "ana")
	assertContains(t, out,
		"I'm thinking of a number between 1 and 50.",
		"Too low! Try again.",
		"Too high! Try again.",
		"You guessed the number in 3 attempts!",
		"You are a genius! Enter your name for the leaderboard:",
		"Top 5 Leaderboard — Easy",
		"1. ana — 3 attempts",
	)
	if strings.Contains(out, "Do you want to save your score?") {
		t.Fatal("fast win should not ask yes/no")
	}
}

func TestHintAsFirstAction(t *testing.T) {
	h := newHarness(t, 27)
	out := h.play(t, "", "easy", "hint", "27", "ana")
	assertContains(t, out,
		"The number is between 17 and 37",
		"You now have 9 attempts left.",
		"You guessed the number in 2 attempts!",
	)
}

func TestUnknownDifficultyDefaultsToMedium(t *testing.T) {
	h := newHarness(t, 60)
	out := h.play(t, "", "xyz", "60", "bo")
	assertContains(t, out,
		"Invalid choice. Defaulting to medium difficulty.",
		"between 1 and 100.",
		"Top 5 Leaderboard — Medium",
	)
}

func TestRejectedGuessesDoNotConsumeAttempts(t *testing.T) {
	h := newHarness(t, 27)
	out := h.play(t, "", "easy", "abc", "99", "-99999999999999999999", "1", "2", "3", "27", "no")
	assertContains(t, out,
		"Invalid input. Please enter a valid number or 'hint'.",
		"Please enter a number between 1 and 50.",
		"You guessed the number in 4 attempts!",
		"Do you want to save your score? (yes/no):",
		"Thanks for playing! Better luck next time!",
	)
}

func TestSlowWinOptInSave(t *testing.T) {
	h := newHarness(t, 27)
	h.play(t, "", "easy", "1", "2", "3", "27", "yes", "cy")
	top, err := h.store.Top(context.Background(), domain.Easy)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 || top[0].Name != "cy" || top[0].Attempts != 4 {
		t.Fatalf("top = %+v", top)
	}
}

func TestLossRevealsSecretAndOffersSave(t *testing.T) {
	h := newHarness(t, 27)
	lines := []string{"", "easy"}
	for i := 0; i < domain.MaxAttempts; i++ {
		lines = append(lines, "hint")
	}
	lines = append(lines, "yes", "dee")
	out := h.play(t, lines...)
	assertContains(t, out,
		"You now have 0 attempts left.",
		"You've used all 10 attempts. Game over!",
		"The number was: 27",
		"1. dee — 10 attempts",
	)
}

func TestResetClearsLeaderboard(t *testing.T) {
	h := newHarness(t, 27)
	ctx := context.Background()
	if err := h.store.Save(ctx, "old", 1, domain.Easy); err != nil {
		t.Fatal(err)
	}
	out := h.play(t, "RESET", "easy", "1", "2")
	assertContains(t, out, "Leaderboard cleared!")
	lb, err := h.store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(lb["easy"]) != 0 {
		t.Fatalf("easy after reset = %v", lb["easy"])
	}
}

func TestEmptyLeaderboardNotice(t *testing.T) {
	h := newHarness(t, 27)
	var out bytes.Buffer
	New(h.uc, strings.NewReader(""), &out).display(context.Background(), domain.Insane)
	assertContains(t, out.String(), "No leaderboard entries yet for Insane.")
}

func TestCorruptLeaderboardIsReportedAndReplaced(t *testing.T) {
	h := newHarness(t, 27)
	if err := os.WriteFile(h.store.Path(), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	New(h.uc, strings.NewReader(""), &out).display(context.Background(), domain.Easy)
	assertContains(t, out.String(), "The leaderboard file could not be read.", "No leaderboard entries yet for Easy.")

	out2 := h.play(t, "", "easy", "27", "ana")
	assertContains(t, out2, "1. ana — 1 attempts")
}

func TestBlankNameIsReprompted(t *testing.T) {
	h := newHarness(t, 27)
	out := h.play(t, "", "easy", "27", "  ", "ana")
	assertContains(t, out, "Please enter a name.", "1. ana — 1 attempts")
}

func TestEndOfInputEndsSessionCleanly(t *testing.T) {
	h := newHarness(t, 27)
	var out bytes.Buffer
	in := strings.NewReader("\neasy\n10\n")
	if err := New(h.uc, in, &out).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertContains(t, out.String(), "Too low! Try again.", "Goodbye!")
}

// Package terminal drives one interactive session over a line-oriented
// reader and writer: startup prompt, rules, difficulty choice, the guess
// loop and the leaderboard prompts.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"svw.info/numbers/internal/ctxlog"
	"svw.info/numbers/internal/domain"
	"svw.info/numbers/internal/game"
	"svw.info/numbers/internal/infrastructure/storage"
	"svw.info/numbers/internal/usecase"
)

// geniusThreshold is the win size that skips the yes/no save question.
const geniusThreshold = 3

type Console struct {
	UC    *usecase.Service
	in    *bufio.Reader
	out   io.Writer
	title cases.Caser
}

func New(uc *usecase.Service, in io.Reader, out io.Writer) *Console {
	return &Console{
		UC:    uc,
		in:    bufio.NewReader(in),
		out:   out,
		title: cases.Title(language.English),
	}
}

// Run plays one session. Running out of input ends the session without an
// error.
func (c *Console) Run(ctx context.Context) error {
	err := c.run(ctx)
	if errors.Is(err, io.EOF) {
		c.printf("\n\nGoodbye!\n")
		return nil
	}
	return err
}

func (c *Console) run(ctx context.Context) error {
	answer, err := c.ask(ctx, "\nPress Enter to play: ")
	if err != nil {
		return err
	}
	if strings.EqualFold(strings.TrimSpace(answer), "reset") {
		c.reset(ctx)
	}

	c.showRules()
	d, err := c.chooseDifficulty(ctx)
	if err != nil {
		return err
	}
	g, err := c.UC.NewGame(ctx, d)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	r := g.Range()
	c.printf("\nI'm thinking of a number between %d and %d.\n", r.Min, r.Max)

	for !g.Done() {
		line, err := c.ask(ctx, fmt.Sprintf("\nEnter your guess (%d-%d): ", r.Min, r.Max))
		if err != nil {
			return err
		}
		turn, err := g.Submit(line)
		if err != nil {
			return err
		}
		c.report(g, turn)
	}
	return c.finish(ctx, g)
}

func (c *Console) reset(ctx context.Context) {
	if err := c.UC.ResetLeaderboard(ctx); err != nil {
		ctxlog.FromContext(ctx).Error("reset leaderboard", "err", err)
		c.printf("Could not clear the leaderboard: %v\n", err)
		return
	}
	c.printf("Leaderboard cleared!\n")
}

func (c *Console) showRules() {
	c.printf("\nWelcome to the Number Guessing Game!\n")
	c.printf("\nHere are the rules:\n")
	c.printf("\n1. Choose your difficulty level. You can choose from easy, medium, hard, or insane.\n")
	c.printf("2. Try to guess the number I'm thinking of.\n")
	c.printf("3. You have %d attempts.\n", domain.MaxAttempts)
	c.printf("4. If you want a hint, type 'hint' to see the range of the number. If you use your hint, you will lose one attempt.\n")
	c.printf("5. You can enter your name to save your score to the leaderboard when you've finished playing.\n")
	c.printf("\nLet's start!\n")
}

func (c *Console) chooseDifficulty(ctx context.Context) (domain.Difficulty, error) {
	choice, err := c.ask(ctx, "\nChoose your difficulty level: ")
	if err != nil {
		return domain.Medium, err
	}
	d, ok := domain.ParseDifficulty(choice)
	if !ok {
		ctxlog.FromContext(ctx).Debug("unknown difficulty, using medium", "input", choice)
		c.printf("\nInvalid choice. Defaulting to medium difficulty.\n")
	}
	return d, nil
}

func (c *Console) report(g *game.Game, turn domain.Turn) {
	r := g.Range()
	switch turn.Guess.Kind {
	case domain.GuessParseFailure:
		c.printf("\nInvalid input. Please enter a valid number or 'hint'.\n")
		return
	case domain.GuessOutOfRange:
		c.printf("\nPlease enter a number between %d and %d.\n", r.Min, r.Max)
		return
	case domain.GuessHint:
		c.printf("\nHere's your hint, use it well: The number is between %d and %d\n", turn.Hint.Low, turn.Hint.High)
		c.printf("\nHint used! You now have %d attempts left.\n", turn.Remaining)
	case domain.GuessValid:
		switch turn.Feedback {
		case domain.FeedbackTooLow:
			c.printf("\nToo low! Try again.\n")
		case domain.FeedbackTooHigh:
			c.printf("\nToo high! Try again.\n")
		case domain.FeedbackCorrect:
			c.printf("\nCongratulations! You've guessed the number!\n")
		}
	}
	switch turn.State {
	case domain.StateWon:
		c.printf("\nYou guessed the number in %d attempts!\n", turn.Attempts)
	case domain.StateLost:
		c.printf("\nYou've used all %d attempts. Game over!\n", domain.MaxAttempts)
		c.printf("The number was: %d\n", g.Secret())
	}
}

func (c *Console) finish(ctx context.Context, g *game.Game) error {
	if g.State() == domain.StateWon && g.Attempts() <= geniusThreshold {
		name, err := c.askName(ctx, "\nYou are a genius! Enter your name for the leaderboard: ")
		if err != nil {
			return err
		}
		c.save(ctx, name, g)
		return nil
	}

	answer, err := c.ask(ctx, "\nDo you want to save your score? (yes/no): ")
	if err != nil {
		return err
	}
	if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
		c.printf("\nThanks for playing! Better luck next time!\n")
		return nil
	}
	name, err := c.askName(ctx, "\nEnter your name for the leaderboard: ")
	if err != nil {
		return err
	}
	c.save(ctx, name, g)
	return nil
}

func (c *Console) askName(ctx context.Context, prompt string) (string, error) {
	for {
		name, err := c.ask(ctx, prompt)
		if err != nil {
			return "", err
		}
		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
		c.printf("\nPlease enter a name.\n")
	}
}

func (c *Console) save(ctx context.Context, name string, g *game.Game) {
	if err := c.UC.SaveScore(ctx, name, g.Attempts(), g.Difficulty()); err != nil {
		ctxlog.FromContext(ctx).Error("save score", "err", err)
		c.printf("\nCould not save your score: %v\n", err)
		return
	}
	c.display(ctx, g.Difficulty())
}

func (c *Console) display(ctx context.Context, d domain.Difficulty) {
	label := c.title.String(d.String())
	entries, err := c.UC.Leaderboard(ctx, d)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("read leaderboard", "err", err)
		if errors.Is(err, storage.ErrCorrupt) {
			c.printf("\nThe leaderboard file could not be read.\n")
		} else {
			c.printf("\nCould not read the leaderboard: %v\n", err)
		}
		entries = nil
	}
	if len(entries) == 0 {
		c.printf("\nNo leaderboard entries yet for %s.\n", label)
		return
	}
	c.printf("\n🌟 Top %d Leaderboard — %s 🌟\n", domain.LeaderboardSize, label)
	for _, e := range entries {
		c.printf("%d. %s — %d attempts\n", e.Rank, e.Name, e.Attempts)
	}
}

// ask prints prompt and returns the next input line without its newline.
// A final line without a newline is returned before io.EOF.
func (c *Console) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.printf("%s", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

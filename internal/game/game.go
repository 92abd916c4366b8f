// Package game implements the guess loop: a secret number, an attempt
// budget shared by guesses and hints, and the transitions between awaiting
// input, won and lost. It performs no I/O.
package game

import (
	"errors"

	"svw.info/numbers/internal/domain"
	"svw.info/numbers/internal/ports"
)

// ErrGameOver is returned when input is submitted after the game ended.
var ErrGameOver = errors.New("game is over")

// Game holds one session's secret and progress.
type Game struct {
	difficulty domain.Difficulty
	rng        domain.Range
	secret     int
	attempts   int
	state      domain.State

	validator ports.Validator
	hinter    ports.Hinter
}

// New starts a game at difficulty d with the given secret.
func New(d domain.Difficulty, secret int, v ports.Validator, h ports.Hinter) *Game {
	return &Game{
		difficulty: d,
		rng:        d.Range(),
		secret:     secret,
		state:      domain.StateAwaitingInput,
		validator:  v,
		hinter:     h,
	}
}

func (g *Game) Difficulty() domain.Difficulty { return g.difficulty }
func (g *Game) Range() domain.Range           { return g.rng }
func (g *Game) Attempts() int                 { return g.attempts }
func (g *Game) State() domain.State           { return g.state }
func (g *Game) Remaining() int                { return domain.MaxAttempts - g.attempts }

// Secret is meant for revealing the number once the game is lost.
func (g *Game) Secret() int { return g.secret }

// Done reports whether the game reached a terminal state.
func (g *Game) Done() bool { return g.state != domain.StateAwaitingInput }

// Submit evaluates one line of input. Hints and in-range guesses consume an
// attempt; unparseable and out-of-range input leave the game untouched.
func (g *Game) Submit(input string) (domain.Turn, error) {
	if g.Done() {
		return domain.Turn{}, ErrGameOver
	}
	guess := g.validator.Classify(input, g.rng)
	turn := domain.Turn{Guess: guess}

	switch guess.Kind {
	case domain.GuessHint:
		g.attempts++
		h := g.hinter.Hint(g.secret, g.rng)
		turn.Hint = &h
		g.exhaust()
	case domain.GuessValid:
		g.attempts++
		switch {
		case guess.Value < g.secret:
			turn.Feedback = domain.FeedbackTooLow
			g.exhaust()
		case guess.Value > g.secret:
			turn.Feedback = domain.FeedbackTooHigh
			g.exhaust()
		default:
			turn.Feedback = domain.FeedbackCorrect
			g.state = domain.StateWon
		}
	}

	turn.Attempts = g.attempts
	turn.Remaining = g.Remaining()
	turn.State = g.state
	return turn, nil
}

func (g *Game) exhaust() {
	if g.attempts >= domain.MaxAttempts {
		g.state = domain.StateLost
	}
}

package ports

import (
	"context"

	"svw.info/numbers/internal/domain"
)

// SecretSource draws the secret number for a new game.
type SecretSource interface {
	Draw(ctx context.Context, d domain.Difficulty) (int, error)
}

// Hinter reveals a window around the secret.
type Hinter interface {
	Hint(secret int, r domain.Range) domain.Hint
}

// Validator classifies one line of player input against a range.
type Validator interface {
	Classify(input string, r domain.Range) domain.Guess
}

// Storage persists the leaderboard.
type Storage interface {
	Load(ctx context.Context) (domain.Leaderboard, error)
	Save(ctx context.Context, name string, attempts int, d domain.Difficulty) error
	Top(ctx context.Context, d domain.Difficulty) ([]domain.Entry, error)
	Clear(ctx context.Context) error
}

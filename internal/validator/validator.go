package validator

import (
	"errors"
	"strconv"
	"strings"

	"svw.info/numbers/internal/domain"
)

// GuessValidator turns raw input lines into classified guesses.
type GuessValidator struct{}

func New() *GuessValidator { return &GuessValidator{} }

// Classify trims and lowercases input, then decides whether it is a hint
// request, an in-range number, an out-of-range number, or neither.
func (v *GuessValidator) Classify(input string, r domain.Range) domain.Guess {
	raw := strings.ToLower(strings.TrimSpace(input))
	if raw == "hint" {
		return domain.Guess{Kind: domain.GuessHint, Raw: raw}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// Digits that overflow int are still a number, just far out of range.
		if errors.Is(err, strconv.ErrRange) {
			return domain.Guess{Kind: domain.GuessOutOfRange, Value: n, Raw: raw}
		}
		return domain.Guess{Kind: domain.GuessParseFailure, Raw: raw}
	}
	if !r.Contains(n) {
		return domain.Guess{Kind: domain.GuessOutOfRange, Value: n, Raw: raw}
	}
	return domain.Guess{Kind: domain.GuessValid, Value: n, Raw: raw}
}

package domain

import "strings"

// Difficulty selects the range the secret number is drawn from.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Insane
)

// Difficulties lists every tier in ascending order of range size.
var Difficulties = []Difficulty{Easy, Medium, Hard, Insane}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Insane:
		return "insane"
	default:
		return "medium"
	}
}

// Range returns the inclusive bounds for the tier.
func (d Difficulty) Range() Range {
	switch d {
	case Easy:
		return Range{Min: 1, Max: 50}
	case Hard:
		return Range{Min: 1, Max: 500}
	case Insane:
		return Range{Min: 1, Max: 1000}
	default:
		return Range{Min: 1, Max: 100}
	}
}

// ParseDifficulty resolves player input to a tier. Unknown input yields
// Medium and ok=false so callers can warn.
func ParseDifficulty(s string) (d Difficulty, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	case "insane":
		return Insane, true
	default:
		return Medium, false
	}
}

// GuessKind classifies one line of player input.
type GuessKind int

const (
	GuessParseFailure GuessKind = iota // not a number and not "hint"
	GuessOutOfRange                    // a number outside the tier's range
	GuessHint                          // the player asked for a hint
	GuessValid                         // a number inside the range
)

// Feedback is the comparison of a valid guess against the secret.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackTooLow
	FeedbackTooHigh
	FeedbackCorrect
)

// State is the guess loop's position in its lifecycle.
type State int

const (
	StateAwaitingInput State = iota
	StateWon
	StateLost
)

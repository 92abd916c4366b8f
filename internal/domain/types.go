package domain

const (
	// MaxAttempts is the attempt budget shared by guesses and hints.
	MaxAttempts = 10
	// LeaderboardSize caps the entries kept per difficulty.
	LeaderboardSize = 5
	// HintSpread is the distance either side of the secret revealed by a hint.
	HintSpread = 10
)

// Range is an inclusive integer interval.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// Guess is classified player input.
type Guess struct {
	Kind  GuessKind
	Value int
	Raw   string
}

// Hint is the window around the secret revealed on request.
type Hint struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// Turn reports what happened to one line of input.
type Turn struct {
	Guess     Guess
	Feedback  Feedback
	Hint      *Hint
	Attempts  int
	Remaining int
	State     State
}

// Consumed reports whether the turn used up an attempt.
func (t Turn) Consumed() bool {
	return t.Guess.Kind == GuessHint || t.Guess.Kind == GuessValid
}

// Scores maps player name to best attempt count for one difficulty.
type Scores map[string]int

// Leaderboard maps difficulty name to its scores. This is the persisted shape.
type Leaderboard map[string]Scores

// NewLeaderboard returns the canonical empty leaderboard with every
// difficulty key present.
func NewLeaderboard() Leaderboard {
	lb := make(Leaderboard, len(Difficulties))
	for _, d := range Difficulties {
		lb[d.String()] = Scores{}
	}
	return lb
}

// Entry is one ranked leaderboard row.
type Entry struct {
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	Attempts int    `json:"attempts"`
}

package hint

import "svw.info/numbers/internal/domain"

// Window reveals the secret's neighbourhood, clamped to the game range.
type Window struct {
	Spread int
}

func NewWindow() *Window { return &Window{Spread: domain.HintSpread} }

// Hint returns [max(min, secret-spread), min(max, secret+spread)].
func (h *Window) Hint(secret int, r domain.Range) domain.Hint {
	low := max(r.Min, secret-h.Spread)
	high := min(r.Max, secret+h.Spread)
	return domain.Hint{Low: low, High: high}
}

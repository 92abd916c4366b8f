package generator

import (
	"context"
	"math/rand"
	"sync"

	"svw.info/numbers/internal/domain"
)

// RandomSource draws secrets uniformly from a difficulty's range.
type RandomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource seeds a source; the same seed replays the same secrets.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Draw returns an integer in the inclusive range of d.
func (g *RandomSource) Draw(ctx context.Context, d domain.Difficulty) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r := d.Range()
	g.mu.Lock()
	defer g.mu.Unlock()
	return r.Min + g.rng.Intn(r.Max-r.Min+1), nil
}

// Fixed always returns the same secret, clamped to the range. Used for
// scripted sessions.
type Fixed int

func (f Fixed) Draw(ctx context.Context, d domain.Difficulty) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r := d.Range()
	v := int(f)
	if v < r.Min {
		v = r.Min
	}
	if v > r.Max {
		v = r.Max
	}
	return v, nil
}

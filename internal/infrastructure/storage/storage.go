// Package storage persists the leaderboard, either as an indented JSON file
// or in a SQLite database. Both backends share the ranking rules in
// domain.Scores.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"svw.info/numbers/internal/domain"
)

var (
	// ErrCorrupt marks leaderboard content that cannot be decoded.
	ErrCorrupt = errors.New("leaderboard is corrupt")
	// ErrInvalidName is returned for blank player names.
	ErrInvalidName = errors.New("player name is required")
	// ErrInvalidAttempts is returned for attempt counts outside 1..MaxAttempts.
	ErrInvalidAttempts = errors.New("attempts out of range")
)

func validateEntry(name string, attempts int) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}
	if attempts < 1 || attempts > domain.MaxAttempts {
		return "", fmt.Errorf("%w: %d", ErrInvalidAttempts, attempts)
	}
	return name, nil
}

// normalize fills in any difficulty key the stored data lacks.
func normalize(lb domain.Leaderboard) domain.Leaderboard {
	if lb == nil {
		lb = domain.Leaderboard{}
	}
	for _, d := range domain.Difficulties {
		if lb[d.String()] == nil {
			lb[d.String()] = domain.Scores{}
		}
	}
	return lb
}

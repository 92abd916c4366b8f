package usecase

import (
	"context"
	"errors"

	"svw.info/numbers/internal/ctxlog"
	"svw.info/numbers/internal/domain"
	"svw.info/numbers/internal/game"
	"svw.info/numbers/internal/ports"
)

type Service struct {
	Secrets   ports.SecretSource
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(src ports.SecretSource, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Secrets: src, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// NewGame draws a secret for d and returns a fresh guess loop.
func (u *Service) NewGame(ctx context.Context, d domain.Difficulty) (*game.Game, error) {
	if u.Secrets == nil || u.Validator == nil || u.Hinter == nil {
		return nil, errNotConfigured
	}
	secret, err := u.Secrets.Draw(ctx, d)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("game started", "difficulty", d.String(), "range", d.Range())
	return game.New(d, secret, u.Validator, u.Hinter), nil
}

// Leaderboard
func (u *Service) SaveScore(ctx context.Context, name string, attempts int, d domain.Difficulty) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, name, attempts, d)
}
func (u *Service) Leaderboard(ctx context.Context, d domain.Difficulty) ([]domain.Entry, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Top(ctx, d)
}
func (u *Service) ResetLeaderboard(ctx context.Context) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Clear(ctx)
}

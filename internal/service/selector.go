package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"wallcraft/internal/domain"
)

// SwitchFunc attempts to make id the current wallpaper. It fails when the
// image cannot be fetched at the configured resolution.
type SwitchFunc func(ctx context.Context, id domain.WallpaperID) error

// Selector picks the next wallpaper from a candidate list. Candidates are
// tried in uniformly random order, each at most once, so a run over a
// list where nothing is servable terminates instead of spinning.
type Selector struct {
	logger *slog.Logger
}

func NewSelector(logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{logger: logger}
}

// PickNext keeps picking random candidates until one switch succeeds and
// returns its ID. ErrNoCandidates on an empty list,
// ErrAllCandidatesFailed when every candidate was tried without success.
func (s *Selector) PickNext(ctx context.Context, candidates []domain.WallpaperID, switchFn SwitchFunc) (domain.WallpaperID, error) {
	if len(candidates) == 0 {
		return "", domain.ErrNoCandidates
	}

	order := make([]domain.WallpaperID, len(candidates))
	copy(order, candidates)
	rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	for _, id := range order {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := switchFn(ctx, id); err != nil {
			s.logger.Warn("switch failed, trying another wallpaper", "id", id, "error", err)
			continue
		}
		return id, nil
	}
	return "", fmt.Errorf("%w: tried %d candidates", domain.ErrAllCandidatesFailed, len(order))
}

package timer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/humanbelnik/fakeartist/core/internal/model"
	usecase_game "github.com/humanbelnik/fakeartist/core/internal/usecase/game"
	"github.com/jonboulle/clockwork"
)

type GameSource interface {
	GameByCode(ctx context.Context, code string) (model.Game, error)
	DecrementTimer(ctx context.Context, code string) (int, error)
}

type Broadcaster interface {
	TimerUpdate(code string, remaining int)
	TimerExpired(code string)
}

// Service runs one countdown goroutine per started round. The goroutine
// holds no authoritative state of its own: every tick re-reads the game,
// so it observes room deletion or a phase change within one second and
// winds itself down.
type Service struct {
	games       GameSource
	broadcaster Broadcaster
	clock       clockwork.Clock
	logger      *slog.Logger
}

func New(games GameSource, broadcaster Broadcaster) *Service {
	return NewWithClock(games, broadcaster, clockwork.NewRealClock())
}

// NewWithClock is used by tests that drive a fake clock.
func NewWithClock(games GameSource, broadcaster Broadcaster, clock clockwork.Clock) *Service {
	return &Service{
		games:       games,
		broadcaster: broadcaster,
		clock:       clock,
		logger:      slog.Default(),
	}
}

// Run counts the round down on a one-second cadence until the game is
// gone, no longer playing, or out of seconds, then emits a single expiry
// and returns. Never emits anything after the expiry.
func (s *Service) Run(ctx context.Context, code string) {
	ticker := s.clock.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			alive, err := s.tick(ctx, code)
			if err != nil {
				// Transient store failure. The next tick re-reads.
				s.logger.Error("timer tick failed", "room", code, "error", err)
				continue
			}
			if !alive {
				s.broadcaster.TimerExpired(code)
				return
			}
		}
	}
}

func (s *Service) tick(ctx context.Context, code string) (bool, error) {
	game, err := s.games.GameByCode(ctx, code)
	if err != nil {
		if errors.Is(err, usecase_game.ErrGameNotFound) {
			return false, nil
		}
		return true, err
	}
	if game.State != model.StatePlaying || game.Timer <= 0 {
		return false, nil
	}

	remaining, err := s.games.DecrementTimer(ctx, code)
	if err != nil {
		if errors.Is(err, usecase_game.ErrGameNotFound) {
			return false, nil
		}
		return true, err
	}

	s.broadcaster.TimerUpdate(code, remaining)
	return true, nil
}

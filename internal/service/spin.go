package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"wheel_backend/internal/domain"
	"wheel_backend/internal/game"
	"wheel_backend/internal/store"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ErrWheelInactive means the kill switch is off for regular users.
	ErrWheelInactive = errors.New("wheel is not active")
	// ErrDailyLimit means the user has used up today's plays.
	ErrDailyLimit = errors.New("daily play limit reached")
)

var spinsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "wheel_spins_total",
		Help: "Spin evaluations by outcome",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(spinsTotal)
}

// Publisher receives every persisted play, e.g. the dashboard live feed.
type Publisher interface {
	PublishSpin(entry domain.PlayLogEntry)
}

// SpinResult is everything one spin produces: the persisted fact and
// the rotation target for the animation.
type SpinResult struct {
	Entry          domain.PlayLogEntry
	Index          int
	Value          int
	Rotation       float64
	PlaysRemaining int
}

// SpinService runs the whole spin sequence: read config, read log,
// evaluate limits, select outcome, build record, plan rotation, append.
//
// A single mutex serializes evaluations in this process. Daily counts
// are still recomputed from the full log every time (the log is the
// source of truth, no counters are persisted); the lock only keeps the
// read-modify-write append consistent and narrows the global-win-cap
// race to whatever other processes share the store.
type SpinService struct {
	store store.Store
	rng   game.Rand
	now   func() time.Time
	feed  Publisher

	mu sync.Mutex
}

func NewSpinService(st store.Store) *SpinService {
	return &SpinService{
		store: st,
		rng:   game.CryptoRand{},
		now:   time.Now,
	}
}

// SetFeed attaches a live-feed publisher. Must be called before serving.
func (s *SpinService) SetFeed(p Publisher) { s.feed = p }

// SetClock overrides the clock, for tests.
func (s *SpinService) SetClock(now func() time.Time) { s.now = now }

// SetRand overrides the random source, for tests.
func (s *SpinService) SetRand(rng game.Rand) { s.rng = rng }

// Spin evaluates one spin attempt for userID. currentRotation is the
// wheel's present absolute rotation as reported by the client; rotation
// state lives in the session, never on the server. Admins may spin a
// deactivated wheel to test it.
func (s *SpinService) Spin(ctx context.Context, userID string, isAdmin bool, currentRotation float64) (*SpinResult, error) {
	cfg, err := s.store.LoadConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Active && !isAdmin {
		spinsTotal.WithLabelValues("inactive").Inc()
		return nil, ErrWheelInactive
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	plays, err := s.store.LoadPlays(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format("2006-01-02")

	limits := game.EvaluateLimits(userID, today, plays, cfg)
	if !limits.CanPlay {
		spinsTotal.WithLabelValues("rejected").Inc()
		return nil, ErrDailyLimit
	}

	prize := game.SelectOutcome(cfg, limits.CanWin, s.rng)
	entry := game.BuildRecord(userID, prize, now, s.rng)

	plays = append(plays, entry)
	if err := s.store.SavePlays(ctx, plays); err != nil {
		return nil, err
	}

	rotation := game.PlanRotation(prize.Index, cfg.SegmentCount(), currentRotation, s.rng)

	if entry.IsWin {
		spinsTotal.WithLabelValues("win").Inc()
	} else {
		spinsTotal.WithLabelValues("lose").Inc()
	}
	if s.feed != nil {
		s.feed.PublishSpin(entry)
	}

	remaining := cfg.MaxDailyPlays - limits.UserPlaysToday - 1
	if remaining < 0 {
		remaining = 0
	}

	return &SpinResult{
		Entry:          entry,
		Index:          prize.Index,
		Value:          prize.Segment.Value,
		Rotation:       rotation,
		PlaysRemaining: remaining,
	}, nil
}

// History returns the caller's own entries from the play log, newest
// last, in the same order they were appended.
func (s *SpinService) History(ctx context.Context, userID string) ([]domain.PlayLogEntry, error) {
	plays, err := s.store.LoadPlays(ctx)
	if err != nil {
		return nil, err
	}
	var mine []domain.PlayLogEntry
	for _, p := range plays {
		if p.User == userID {
			mine = append(mine, p)
		}
	}
	return mine, nil
}

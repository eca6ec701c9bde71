package game

import (
	"testing"

	"wheel_backend/internal/domain"
)

// 3 winning, 5 losing
func eightSegmentConfig(winPercent float64) *domain.WheelConfig {
	return &domain.WheelConfig{
		Segments: []domain.PrizeSegment{
			{Label: "gelato", Winning: true, Value: 5},
			{Label: "retry", Winning: false},
			{Label: "coffee", Winning: true, Value: 2},
			{Label: "nothing", Winning: false},
			{Label: "discount", Winning: true, Value: 10},
			{Label: "nothing", Winning: false},
			{Label: "nothing", Winning: false},
			{Label: "nothing", Winning: false},
		},
		MaxDailyPlays: 3,
		MaxDailyWins:  1,
		WinPercent:    winPercent,
	}
}

func TestSelectOutcomeNeverWinsWhenCapped(t *testing.T) {
	cfg := eightSegmentConfig(100)
	rng := seededRand(1)

	for i := 0; i < 10000; i++ {
		prize := SelectOutcome(cfg, false, rng)
		if prize.Segment.Winning {
			t.Fatalf("iteration %d: got winning segment %q with canWin=false", i, prize.Segment.Label)
		}
	}
}

func TestSelectOutcomeAlwaysWinsAtFullProbability(t *testing.T) {
	cfg := eightSegmentConfig(100)
	rng := seededRand(2)

	for i := 0; i < 1000; i++ {
		prize := SelectOutcome(cfg, true, rng)
		if !prize.Segment.Winning {
			t.Fatalf("iteration %d: got losing segment %q with canWin=true and 100%%", i, prize.Segment.Label)
		}
	}
}

func TestSelectOutcomeNeverWinsAtZeroProbability(t *testing.T) {
	cfg := eightSegmentConfig(0)
	rng := seededRand(3)

	for i := 0; i < 1000; i++ {
		prize := SelectOutcome(cfg, true, rng)
		if prize.Segment.Winning {
			t.Fatalf("iteration %d: got winning segment with 0%% probability", i)
		}
	}
}

func TestSelectOutcomeForcedWinDraw(t *testing.T) {
	cfg := eightSegmentConfig(100)

	prize := SelectOutcome(cfg, true, stubRand{f: 0, n: 0})
	if !prize.Segment.Winning {
		t.Fatalf("forced draw 0.0 with canWin=true should win, got %q", prize.Segment.Label)
	}
	if prize.Index != 0 {
		t.Errorf("first winning pool pick should be index 0, got %d", prize.Index)
	}
}

func TestSelectOutcomeIndexMatchesSegment(t *testing.T) {
	cfg := eightSegmentConfig(50)
	rng := seededRand(4)

	for i := 0; i < 1000; i++ {
		prize := SelectOutcome(cfg, true, rng)
		if prize.Index < 0 || prize.Index >= len(cfg.Segments) {
			t.Fatalf("index %d out of range", prize.Index)
		}
		if cfg.Segments[prize.Index] != prize.Segment {
			t.Fatalf("index %d does not match returned segment", prize.Index)
		}
	}
}

func TestSelectOutcomeAllWinningFallback(t *testing.T) {
	cfg := &domain.WheelConfig{
		Segments: []domain.PrizeSegment{
			{Label: "a", Winning: true},
			{Label: "b", Winning: true},
		},
		WinPercent: 0,
	}
	rng := seededRand(5)

	// Probability says lose, but there are no losing segments: the
	// pick must fall back to the whole wheel instead of failing.
	for i := 0; i < 100; i++ {
		prize := SelectOutcome(cfg, true, rng)
		if prize.Index < 0 || prize.Index >= 2 {
			t.Fatalf("fallback index %d out of range", prize.Index)
		}
	}
}

func TestSelectOutcomeWinRateRoughlyMatchesPercent(t *testing.T) {
	cfg := eightSegmentConfig(30)
	rng := seededRand(6)

	wins := 0
	const n = 20000
	for i := 0; i < n; i++ {
		if SelectOutcome(cfg, true, rng).Segment.Winning {
			wins++
		}
	}

	rate := float64(wins) / n
	if rate < 0.27 || rate > 0.33 {
		t.Errorf("win rate = %.3f, want ~0.30", rate)
	}
}

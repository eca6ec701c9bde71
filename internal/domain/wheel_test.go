package domain

import (
	"errors"
	"testing"
)

func validConfig() *WheelConfig {
	return &WheelConfig{
		WheelName:     "Ruota",
		Segments:      []PrizeSegment{{Label: "a", Winning: true}, {Label: "b"}},
		MaxDailyPlays: 1,
		MaxDailyWins:  1,
		WinPercent:    5,
	}
}

func TestValidateOK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestValidateEmptySegments(t *testing.T) {
	cfg := validConfig()
	cfg.Segments = nil
	if err := cfg.Validate(); !errors.Is(err, ErrNoSegments) {
		t.Fatalf("err = %v, want ErrNoSegments", err)
	}
}

func TestValidateWinPercentRange(t *testing.T) {
	for _, pct := range []float64{-1, 100.01, 200} {
		cfg := validConfig()
		cfg.WinPercent = pct
		if err := cfg.Validate(); !errors.Is(err, ErrBadWinPercent) {
			t.Errorf("WinPercent=%v: err = %v, want ErrBadWinPercent", pct, err)
		}
	}
	for _, pct := range []float64{0, 50, 100} {
		cfg := validConfig()
		cfg.WinPercent = pct
		if err := cfg.Validate(); err != nil {
			t.Errorf("WinPercent=%v rejected: %v", pct, err)
		}
	}
}

func TestValidateNegativeLimits(t *testing.T) {
	cfg := validConfig()
	cfg.MaxDailyPlays = -1
	if err := cfg.Validate(); !errors.Is(err, ErrNegativeLimit) {
		t.Fatalf("err = %v, want ErrNegativeLimit", err)
	}

	// zero caps are legal: they just mean nobody plays or nobody wins
	cfg = validConfig()
	cfg.MaxDailyPlays = 0
	cfg.MaxDailyWins = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("zero limits rejected: %v", err)
	}
}

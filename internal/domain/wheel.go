package domain

import "errors"

var (
	ErrNoSegments    = errors.New("wheel config has no segments")
	ErrBadWinPercent = errors.New("win percent must be between 0 and 100")
	ErrNegativeLimit = errors.New("daily limits must not be negative")
)

// PrizeSegment is one wedge of the wheel. Its position in
// WheelConfig.Segments defines the wheel geometry: segment i occupies
// [i*360/N, (i+1)*360/N) degrees clockwise from the top.
type PrizeSegment struct {
	Label   string `json:"label"`
	Winning bool   `json:"winning"`
	Value   int    `json:"value"`
}

// WheelConfig is the wheel configuration document edited from the
// dashboard. It is loaded once per spin and treated as immutable for
// the duration of that evaluation.
type WheelConfig struct {
	WheelName     string         `json:"wheel_name"`
	Theme         string         `json:"theme,omitempty"`
	Segments      []PrizeSegment `json:"segments"`
	MaxDailyPlays int            `json:"max_daily_plays"`
	MaxDailyWins  int            `json:"max_daily_wins"`
	WinPercent    float64        `json:"win_percent"`
	Active        bool           `json:"active"`
}

// Validate rejects configurations the spin engine must never see.
func (c *WheelConfig) Validate() error {
	if len(c.Segments) == 0 {
		return ErrNoSegments
	}
	if c.WinPercent < 0 || c.WinPercent > 100 {
		return ErrBadWinPercent
	}
	if c.MaxDailyPlays < 0 || c.MaxDailyWins < 0 {
		return ErrNegativeLimit
	}
	return nil
}

// SegmentCount returns the number of wedges on the wheel.
func (c *WheelConfig) SegmentCount() int {
	return len(c.Segments)
}

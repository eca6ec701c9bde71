package game

import (
	"wheel_backend/internal/domain"
)

// ChosenPrize is the selected segment together with its position on the
// wheel, which the rotation planner needs to aim at.
type ChosenPrize struct {
	Index   int
	Segment domain.PrizeSegment
}

// SelectOutcome decides win/lose for a single spin and picks the
// concrete segment to land on.
//
// The win probability and the daily win cap are independent gates: a
// spin only rolls against WinPercent when canWin is true, and within
// each pool the pick is uniform, never weighted by prize value. Callers
// must validate cfg first; an empty segment list is a precondition
// violation, not a runtime branch here.
func SelectOutcome(cfg *domain.WheelConfig, canWin bool, rng Rand) ChosenPrize {
	var winners, losers []int
	for i, seg := range cfg.Segments {
		if seg.Winning {
			winners = append(winners, i)
		} else {
			losers = append(losers, i)
		}
	}

	if canWin && len(winners) > 0 {
		if rng.Float64() < cfg.WinPercent/100 {
			idx := winners[rng.IntN(len(winners))]
			return ChosenPrize{Index: idx, Segment: cfg.Segments[idx]}
		}
	}

	if len(losers) > 0 {
		idx := losers[rng.IntN(len(losers))]
		return ChosenPrize{Index: idx, Segment: cfg.Segments[idx]}
	}

	// All segments are winning but the spin must lose: fall back to a
	// uniform pick over the whole wheel.
	idx := rng.IntN(len(cfg.Segments))
	return ChosenPrize{Index: idx, Segment: cfg.Segments[idx]}
}

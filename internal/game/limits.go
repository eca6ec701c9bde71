package game

import (
	"wheel_backend/internal/domain"
)

// Limits is the daily-cap snapshot for one spin attempt.
type Limits struct {
	UserPlaysToday  int
	GlobalWinsToday int
	CanPlay         bool
	CanWin          bool
}

// EvaluateLimits counts today's plays for the user and today's wins
// across all users, straight from the full play log. It is a pure
// function and must be re-run for every spin attempt: the log grows
// between requests as other users spin.
//
// today must be formatted YYYY-MM-DD in the same location the play
// records were built with, otherwise the day boundaries disagree.
func EvaluateLimits(userID string, today string, log []domain.PlayLogEntry, cfg *domain.WheelConfig) Limits {
	var userPlays, globalWins int
	for _, entry := range log {
		if entry.Date != today {
			continue
		}
		if entry.User == userID {
			userPlays++
		}
		if entry.IsWin {
			globalWins++
		}
	}

	return Limits{
		UserPlaysToday:  userPlays,
		GlobalWinsToday: globalWins,
		CanPlay:         userPlays < cfg.MaxDailyPlays,
		CanWin:          globalWins < cfg.MaxDailyWins,
	}
}

package game

import (
	"time"

	"wheel_backend/internal/domain"
)

// Win codes are short enough to read out over a counter and avoid
// lowercase to keep them unambiguous when typed.
const (
	winCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	winCodeLength   = 8
)

// BuildRecord assembles the play-log entry for a decided spin. now is
// caller-supplied so the date matches whatever "today" the limit
// evaluator used. Claimed is always false at creation; only an admin
// flips it later.
//
// The win code is drawn from a ~2.8e12 space, so uniqueness is
// best-effort by entropy rather than guaranteed by construction.
func BuildRecord(userID string, prize ChosenPrize, now time.Time, rng Rand) domain.PlayLogEntry {
	entry := domain.PlayLogEntry{
		User:   userID,
		Date:   now.Format("2006-01-02"),
		Time:   now.Format("15:04:05"),
		Result: prize.Segment.Label,
		IsWin:  prize.Segment.Winning,
	}
	if entry.IsWin {
		entry.WinCode = newWinCode(rng)
	}
	return entry
}

func newWinCode(rng Rand) string {
	code := make([]byte, winCodeLength)
	for i := range code {
		code[i] = winCodeAlphabet[rng.IntN(len(winCodeAlphabet))]
	}
	return string(code)
}

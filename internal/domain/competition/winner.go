package competition

import (
	"time"

	"github.com/rutamapas/backend/internal/entity"
)

const (
	MinDurationDays = 1
	MaxDurationDays = 365
)

// ValidDuration reports whether a competition duration in days is allowed.
func ValidDuration(days int) bool {
	return days >= MinDurationDays && days <= MaxDurationDays
}

// Expired reports whether the competition's end has passed. Closing exactly at
// the end instant counts as expired.
func Expired(competition *entity.Competition, now time.Time) bool {
	return competition.Status == entity.CompetitionActive && !competition.EndedAt.After(now)
}

// PickWinner selects the user with the most points; ties are broken by the
// lowest user id so the result never depends on row order. The second return
// is false when no point rows exist, in which case the competition closes
// without a winner.
func PickWinner(points []entity.CompetitionPoint) (string, bool) {
	winner := ""
	best := int64(-1)
	for _, p := range points {
		if p.Points > best || (p.Points == best && p.UserID < winner) {
			winner = p.UserID
			best = p.Points
		}
	}

	if winner == "" {
		return "", false
	}

	return winner, true
}

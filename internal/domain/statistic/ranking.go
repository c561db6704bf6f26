package statistic

import (
	"github.com/rutamapas/backend/internal/repository"
	"golang.org/x/exp/slices"
)

// SortByPointsThenName orders a snapshot by points descending, then display
// name ascending. This is the include-zeros leaderboard order: every member
// appears, and members who never scored sort after scorers but still in a
// stable, predictable place.
func SortByPointsThenName(rows []repository.UserPoints) {
	slices.SortFunc(rows, func(a, b repository.UserPoints) bool {
		if a.Points != b.Points {
			return a.Points > b.Points
		}

		return a.Name < b.Name
	})
}

// SortByPointsThenUserID orders a snapshot by points descending, then user id
// ascending. This matches the winner tie-break, so the top row of the
// scored-only leaderboard is always the would-be winner.
func SortByPointsThenUserID(rows []repository.UserPoints) {
	slices.SortFunc(rows, func(a, b repository.UserPoints) bool {
		if a.Points != b.Points {
			return a.Points > b.Points
		}

		return a.UserID < b.UserID
	})
}

// Truncate limits a sorted snapshot without copying.
func Truncate(rows []repository.UserPoints, limit int) []repository.UserPoints {
	if limit >= 0 && len(rows) > limit {
		return rows[:limit]
	}

	return rows
}

package competition

import (
	"testing"
	"time"

	"github.com/rutamapas/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func Test_PickWinner(t *testing.T) {
	t.Run("no point rows means no winner", func(t *testing.T) {
		_, ok := PickWinner(nil)
		require.False(t, ok)
	})

	t.Run("highest points wins", func(t *testing.T) {
		winner, ok := PickWinner([]entity.CompetitionPoint{
			{UserID: "user1", Points: 5},
			{UserID: "user2", Points: 12},
			{UserID: "user3", Points: 7},
		})
		require.True(t, ok)
		require.Equal(t, "user2", winner)
	})

	t.Run("ties are broken by the lowest user id", func(t *testing.T) {
		winner, ok := PickWinner([]entity.CompetitionPoint{
			{UserID: "user3", Points: 10},
			{UserID: "user1", Points: 10},
			{UserID: "user2", Points: 10},
		})
		require.True(t, ok)
		require.Equal(t, "user1", winner)
	})

	t.Run("a zero score row still wins an otherwise empty competition", func(t *testing.T) {
		winner, ok := PickWinner([]entity.CompetitionPoint{
			{UserID: "user2", Points: 0},
		})
		require.True(t, ok)
		require.Equal(t, "user2", winner)
	})
}

func Test_Expired(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	active := &entity.Competition{Status: entity.CompetitionActive, EndedAt: now.Add(time.Hour)}
	require.False(t, Expired(active, now))

	overdue := &entity.Competition{Status: entity.CompetitionActive, EndedAt: now.Add(-time.Hour)}
	require.True(t, Expired(overdue, now))

	atTheInstant := &entity.Competition{Status: entity.CompetitionActive, EndedAt: now}
	require.True(t, Expired(atTheInstant, now))

	closed := &entity.Competition{Status: entity.CompetitionClosed, EndedAt: now.Add(-time.Hour)}
	require.False(t, Expired(closed, now))
}

func Test_ValidDuration(t *testing.T) {
	require.False(t, ValidDuration(0))
	require.False(t, ValidDuration(-1))
	require.True(t, ValidDuration(1))
	require.True(t, ValidDuration(365))
	require.False(t, ValidDuration(366))
}

package statistic

import (
	"testing"

	"github.com/rutamapas/backend/internal/repository"
	"github.com/stretchr/testify/require"
)

func Test_SortByPointsThenName(t *testing.T) {
	rows := []repository.UserPoints{
		{UserID: "user3", Name: "carol", Points: 5},
		{UserID: "user1", Name: "alice", Points: 0},
		{UserID: "user2", Name: "bob", Points: 5},
	}

	SortByPointsThenName(rows)
	require.Equal(t, []repository.UserPoints{
		{UserID: "user2", Name: "bob", Points: 5},
		{UserID: "user3", Name: "carol", Points: 5},
		{UserID: "user1", Name: "alice", Points: 0},
	}, rows)
}

func Test_SortByPointsThenUserID(t *testing.T) {
	rows := []repository.UserPoints{
		{UserID: "user3", Name: "carol", Points: 5},
		{UserID: "user2", Name: "bob", Points: 5},
		{UserID: "user1", Name: "alice", Points: 9},
	}

	SortByPointsThenUserID(rows)
	require.Equal(t, []repository.UserPoints{
		{UserID: "user1", Name: "alice", Points: 9},
		{UserID: "user2", Name: "bob", Points: 5},
		{UserID: "user3", Name: "carol", Points: 5},
	}, rows)
}

func Test_Truncate(t *testing.T) {
	rows := []repository.UserPoints{
		{UserID: "user1"}, {UserID: "user2"}, {UserID: "user3"},
	}

	require.Len(t, Truncate(rows, 2), 2)
	require.Len(t, Truncate(rows, 3), 3)
	require.Len(t, Truncate(rows, 10), 3)
	require.Len(t, Truncate(rows, 0), 0)
}

package statistic

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rutamapas/backend/internal/model"
	"github.com/rutamapas/backend/internal/repository"
	"github.com/rutamapas/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_reporter_CurrentRanking_cacheHit(t *testing.T) {
	ctx := testutil.MockContext()

	cached := []model.UserPoints{
		{UserID: "user1", Name: "alice", Points: 12},
		{UserID: "user2", Name: "bob", Points: 7},
	}

	reporter := NewReporter(
		repository.NewCompetitionPointRepository(),
		&testutil.MockRedisClient{
			ExistFunc: func(ctx context.Context, key string) (bool, error) {
				return true, nil
			},
			GetObjFunc: func(ctx context.Context, key string, v any) error {
				b, err := json.Marshal(cached)
				if err != nil {
					return err
				}

				return json.Unmarshal(b, v)
			},
		},
	)

	ranking, err := reporter.CurrentRanking(ctx, "community1", "competition1", false, 10)
	require.NoError(t, err)
	require.Equal(t, cached, ranking)
}

func Test_reporter_Invalidate(t *testing.T) {
	ctx := testutil.MockContext()

	var deleted []string
	reporter := NewReporter(
		repository.NewCompetitionPointRepository(),
		&testutil.MockRedisClient{
			KeysFunc: func(ctx context.Context, pattern string) ([]string, error) {
				require.Equal(t, "ranking:competition1:*", pattern)
				return []string{
					"ranking:competition1:scored:10",
					"ranking:competition1:zeros:10",
				}, nil
			},
			DelFunc: func(ctx context.Context, keys ...string) error {
				deleted = keys
				return nil
			},
		},
	)

	require.NoError(t, reporter.Invalidate(ctx, "competition1"))
	require.Len(t, deleted, 2)
}

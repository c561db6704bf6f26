package statistic

import (
	"context"

	"github.com/rutamapas/backend/internal/model"
	"github.com/rutamapas/backend/internal/repository"
	"github.com/rutamapas/backend/pkg/errorx"
	"github.com/rutamapas/backend/pkg/xcontext"
	"github.com/rutamapas/backend/pkg/xredis"
)

// Reporter produces ordered leaderboard snapshots for one competition and
// caches them in redis for the configured TTL. The cache is an optimization
// only: every entry is rebuilt from the ledger on a miss, and score changes
// invalidate all entries of the affected competition.
type Reporter interface {
	CurrentRanking(
		ctx context.Context,
		communityID, competitionID string,
		includeZeros bool,
		limit int,
	) ([]model.UserPoints, error)

	Invalidate(ctx context.Context, competitionID string) error
}

type reporter struct {
	pointRepo   repository.CompetitionPointRepository
	redisClient xredis.Client
}

func NewReporter(
	pointRepo repository.CompetitionPointRepository,
	redisClient xredis.Client,
) *reporter {
	return &reporter{pointRepo: pointRepo, redisClient: redisClient}
}

func (r *reporter) CurrentRanking(
	ctx context.Context, communityID, competitionID string, includeZeros bool, limit int,
) ([]model.UserPoints, error) {
	key := redisKeyRanking(competitionID, includeZeros, limit)
	ok, err := r.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot call exist redis: %v", err)
	}

	if ok {
		var cached []model.UserPoints
		if err := r.redisClient.GetObj(ctx, key, &cached); err == nil {
			return cached, nil
		} else {
			xcontext.Logger(ctx).Warnf("Cannot get cached ranking: %v", err)
		}
	}

	var rows []repository.UserPoints
	if includeZeros {
		rows, err = r.pointRepo.GetMemberPoints(ctx, communityID, competitionID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get member points: %v", err)
			return nil, errorx.Unknown
		}

		SortByPointsThenName(rows)
		rows = Truncate(rows, limit)
	} else {
		rows, err = r.pointRepo.GetRanking(ctx, competitionID, limit)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get ranking: %v", err)
			return nil, errorx.Unknown
		}
	}

	ranking := []model.UserPoints{}
	for _, row := range rows {
		ranking = append(ranking, model.UserPoints{
			UserID: row.UserID,
			Name:   row.Name,
			Points: row.Points,
		})
	}

	ttl := xcontext.Configs(ctx).Competition.RankingCacheTTL
	if ttl > 0 {
		if err := r.redisClient.SetObj(ctx, key, ranking, ttl); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot cache ranking: %v", err)
		}
	}

	return ranking, nil
}

func (r *reporter) Invalidate(ctx context.Context, competitionID string) error {
	keys, err := r.redisClient.Keys(ctx, redisKeyRankingPattern(competitionID))
	if err != nil {
		return err
	}

	return r.redisClient.Del(ctx, keys...)
}

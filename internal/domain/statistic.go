package domain

import (
	"context"
	"errors"

	"github.com/pkg/math"
	"github.com/rutamapas/backend/internal/domain/competition"
	"github.com/rutamapas/backend/internal/domain/statistic"
	"github.com/rutamapas/backend/internal/entity"
	"github.com/rutamapas/backend/internal/model"
	"github.com/rutamapas/backend/internal/repository"
	"github.com/rutamapas/backend/pkg/errorx"
	"github.com/rutamapas/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const defaultHistoryPerPage = 10

type StatisticDomain interface {
	GetRanking(context.Context, *model.GetRankingRequest) (*model.GetRankingResponse, error)
	GetHistory(context.Context, *model.GetCompetitionHistoryRequest) (*model.GetCompetitionHistoryResponse, error)
}

type statisticDomain struct {
	communityRepo   repository.CommunityRepository
	memberRepo      repository.MemberRepository
	userRepo        repository.UserRepository
	competitionRepo repository.CompetitionRepository
	pointRepo       repository.CompetitionPointRepository
	lifecycle       competition.Lifecycle
	reporter        statistic.Reporter
}

func NewStatisticDomain(
	communityRepo repository.CommunityRepository,
	memberRepo repository.MemberRepository,
	userRepo repository.UserRepository,
	competitionRepo repository.CompetitionRepository,
	pointRepo repository.CompetitionPointRepository,
	lifecycle competition.Lifecycle,
	reporter statistic.Reporter,
) *statisticDomain {
	return &statisticDomain{
		communityRepo:   communityRepo,
		memberRepo:      memberRepo,
		userRepo:        userRepo,
		competitionRepo: competitionRepo,
		pointRepo:       pointRepo,
		lifecycle:       lifecycle,
		reporter:        reporter,
	}
}

// GetRanking returns the current leaderboard of the community's active
// competition. With include_zeros every member appears, ordered by points then
// name; without it only scorers appear, ordered by points then user id so the
// top row matches the would-be winner.
func (d *statisticDomain) GetRanking(
	ctx context.Context, req *model.GetRankingRequest,
) (*model.GetRankingResponse, error) {
	cfg := xcontext.Configs(ctx)

	limit := req.Limit
	if limit == 0 {
		limit = cfg.ApiServer.DefaultLimit
	}

	if limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Not allow negative limit")
	}

	limit = math.MinInt(limit, cfg.ApiServer.MaxLimit)

	durationDays := req.DurationDays
	if durationDays == 0 {
		durationDays = cfg.Competition.DefaultDurationDays
	}

	if !competition.ValidDuration(durationDays) {
		return nil, errorx.New(errorx.BadRequest,
			"Duration must be between %d and %d days",
			competition.MinDurationDays, competition.MaxDurationDays)
	}

	community, err := getCommunityByHandle(ctx, d.communityRepo, req.CommunityHandle)
	if err != nil {
		return nil, err
	}

	userID := xcontext.RequestUserID(ctx)
	if err := requireMember(ctx, d.memberRepo, userID, community.ID); err != nil {
		return nil, err
	}

	active, err := d.lifecycle.GetOrCreateActive(ctx, community.ID, durationDays, "")
	if err != nil {
		return nil, err
	}

	ranking, err := d.reporter.CurrentRanking(ctx, community.ID, active.ID, req.IncludeZeros, limit)
	if err != nil {
		return nil, err
	}

	return &model.GetRankingResponse{Ranking: ranking}, nil
}

// GetHistory pages through the community's closed competitions, most recently
// ended first, with the winner's name and final score resolved per entry.
func (d *statisticDomain) GetHistory(
	ctx context.Context, req *model.GetCompetitionHistoryRequest,
) (*model.GetCompetitionHistoryResponse, error) {
	page := req.Page
	if page == 0 {
		page = 1
	}

	if page < 1 {
		return nil, errorx.New(errorx.BadRequest, "Not allow page under 1")
	}

	perPage := req.PerPage
	if perPage == 0 {
		perPage = defaultHistoryPerPage
	}

	if perPage < 1 {
		return nil, errorx.New(errorx.BadRequest, "Not allow page size under 1")
	}

	perPage = math.MinInt(perPage, xcontext.Configs(ctx).ApiServer.MaxLimit)

	community, err := getCommunityByHandle(ctx, d.communityRepo, req.CommunityHandle)
	if err != nil {
		return nil, err
	}

	userID := xcontext.RequestUserID(ctx)
	if err := requireMember(ctx, d.memberRepo, userID, community.ID); err != nil {
		return nil, err
	}

	closed, err := d.competitionRepo.GetClosedByCommunityID(ctx, community.ID, (page-1)*perPage, perPage)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get closed competitions: %v", err)
		return nil, errorx.Unknown
	}

	total, err := d.competitionRepo.CountClosedByCommunityID(ctx, community.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count closed competitions: %v", err)
		return nil, errorx.Unknown
	}

	winnerNames, err := d.getWinnerNames(ctx, closed)
	if err != nil {
		return nil, err
	}

	summaries := []model.CompetitionSummary{}
	for _, c := range closed {
		summary := model.CompetitionSummary{
			ID:           c.ID,
			StartedAt:    c.StartedAt,
			EndedAt:      c.EndedAt,
			DurationDays: c.DurationDays,
		}

		if c.WinnerID.Valid {
			summary.WinnerID = c.WinnerID.String
			summary.WinnerName = winnerNames[c.WinnerID.String]

			points, err := d.getWinnerPoints(ctx, c.ID, c.WinnerID.String)
			if err != nil {
				return nil, err
			}

			summary.WinnerPoints = points
		} else {
			// No recorded winner; fall back to the highest score if any point
			// row survived.
			top, err := d.pointRepo.GetTop(ctx, c.ID)
			if err == nil {
				summary.WinnerPoints = top.Points
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				xcontext.Logger(ctx).Errorf("Cannot get top points: %v", err)
				return nil, errorx.Unknown
			}
		}

		summaries = append(summaries, summary)
	}

	return &model.GetCompetitionHistoryResponse{
		Competitions: summaries,
		Total:        total,
	}, nil
}

func (d *statisticDomain) getWinnerNames(
	ctx context.Context, competitions []entity.Competition,
) (map[string]string, error) {
	ids := []string{}
	for _, c := range competitions {
		if c.WinnerID.Valid {
			ids = append(ids, c.WinnerID.String)
		}
	}

	names := map[string]string{}
	if len(ids) == 0 {
		return names, nil
	}

	users, err := d.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get winners: %v", err)
		return nil, errorx.Unknown
	}

	for _, u := range users {
		names[u.ID] = u.Name
	}

	return names, nil
}

func (d *statisticDomain) getWinnerPoints(
	ctx context.Context, competitionID, winnerID string,
) (int64, error) {
	point, err := d.pointRepo.Get(ctx, competitionID, winnerID)
	if err != nil {
		// The winner row may have been removed since the close; report zero
		// rather than failing the whole page.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get winner points: %v", err)
		return 0, errorx.Unknown
	}

	return point.Points, nil
}

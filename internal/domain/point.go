package domain

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/rutamapas/backend/internal/domain/competition"
	"github.com/rutamapas/backend/internal/domain/statistic"
	"github.com/rutamapas/backend/internal/entity"
	"github.com/rutamapas/backend/internal/model"
	"github.com/rutamapas/backend/internal/repository"
	"github.com/rutamapas/backend/pkg/errorx"
	"github.com/rutamapas/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const maxMotiveLength = 255

type PointDomain interface {
	Change(context.Context, *model.ChangePointsRequest) (*model.ChangePointsResponse, error)
	ChangeGlobal(context.Context, *model.ChangeGlobalPointsRequest) (*model.ChangeGlobalPointsResponse, error)
	ChangeStreak(context.Context, *model.ChangeStreakRequest) (*model.ChangeStreakResponse, error)
	GetStatistics(context.Context, *model.GetUserStatisticsRequest) (*model.GetUserStatisticsResponse, error)
}

type pointDomain struct {
	communityRepo repository.CommunityRepository
	memberRepo    repository.MemberRepository
	userRepo      repository.UserRepository
	pointRepo     repository.CompetitionPointRepository
	rankTierRepo  repository.RankTierRepository
	lifecycle     competition.Lifecycle
	reporter      statistic.Reporter
}

func NewPointDomain(
	communityRepo repository.CommunityRepository,
	memberRepo repository.MemberRepository,
	userRepo repository.UserRepository,
	pointRepo repository.CompetitionPointRepository,
	rankTierRepo repository.RankTierRepository,
	lifecycle competition.Lifecycle,
	reporter statistic.Reporter,
) *pointDomain {
	return &pointDomain{
		communityRepo: communityRepo,
		memberRepo:    memberRepo,
		userRepo:      userRepo,
		pointRepo:     pointRepo,
		rankTierRepo:  rankTierRepo,
		lifecycle:     lifecycle,
		reporter:      reporter,
	}
}

// Change applies a delta to the caller's score in the community's active
// competition and to the caller's global score, both clamped at zero. The
// competition is lazily created when none is running. Everything runs in one
// transaction so a partial application is never visible.
func (d *pointDomain) Change(
	ctx context.Context, req *model.ChangePointsRequest,
) (*model.ChangePointsResponse, error) {
	if req.Points == 0 {
		return nil, errorx.New(errorx.BadRequest, "Not allow zero points delta")
	}

	if len(req.Motive) > maxMotiveLength {
		return nil, errorx.New(errorx.BadRequest,
			"Not allow motive longer than %d characters", maxMotiveLength)
	}

	durationDays := req.DurationDays
	if durationDays == 0 {
		durationDays = xcontext.Configs(ctx).Competition.DefaultDurationDays
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

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	active, err := d.lifecycle.GetOrCreateActive(ctx, community.ID, durationDays, "")
	if err != nil {
		return nil, err
	}

	err = d.pointRepo.Upsert(ctx, &entity.CompetitionPoint{
		Base:          entity.Base{ID: uuid.NewString()},
		CompetitionID: active.ID,
		UserID:        userID,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert competition point: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.pointRepo.ChangePoints(ctx, active.ID, userID, req.Points); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot change competition points: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.userRepo.ChangePoints(ctx, userID, req.Points); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot change global points: %v", err)
		return nil, errorx.Unknown
	}

	if _, err := d.syncRankTier(ctx, userID); err != nil {
		return nil, err
	}

	xcontext.WithCommitDBTransaction(ctx)

	if err := d.reporter.Invalidate(ctx, active.ID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate ranking cache: %v", err)
	}

	xcontext.Logger(ctx).Infof("User %s changed %d points in community %s: %s",
		userID, req.Points, community.Handle, req.Motive)

	return &model.ChangePointsResponse{}, nil
}

// ChangeGlobal applies a delta to the caller's global score only, outside any
// competition. Used for adjustments that should not affect a running
// leaderboard.
func (d *pointDomain) ChangeGlobal(
	ctx context.Context, req *model.ChangeGlobalPointsRequest,
) (*model.ChangeGlobalPointsResponse, error) {
	if req.Points == 0 {
		return nil, errorx.New(errorx.BadRequest, "Not allow zero points delta")
	}

	userID := xcontext.RequestUserID(ctx)
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.userRepo.ChangePoints(ctx, userID, req.Points); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot change global points: %v", err)
		return nil, errorx.Unknown
	}

	tier, err := d.syncRankTier(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get updated user: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	xcontext.Logger(ctx).Infof("User %s changed %d global points: %s",
		userID, req.Points, req.Motive)

	return &model.ChangeGlobalPointsResponse{
		PreviousPoints: user.Points,
		Change:         updated.Points - user.Points,
		CurrentPoints:  updated.Points,
		RankTier:       model.ConvertRankTier(tier),
	}, nil
}

// ChangeStreak manages the caller's consecutive-activity counter. Increase
// adds one, reset drops it to zero, and set stores an explicit value.
func (d *pointDomain) ChangeStreak(
	ctx context.Context, req *model.ChangeStreakRequest,
) (*model.ChangeStreakResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	current := user.Streak
	switch req.Action {
	case model.StreakActionIncrease:
		if err := d.userRepo.ChangeStreak(ctx, userID, 1); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot increase streak: %v", err)
			return nil, errorx.Unknown
		}

		current = user.Streak + 1

	case model.StreakActionReset:
		if err := d.userRepo.SetStreak(ctx, userID, 0); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot reset streak: %v", err)
			return nil, errorx.Unknown
		}

		current = 0

	case model.StreakActionSet:
		if req.Streak < 0 {
			return nil, errorx.New(errorx.BadRequest, "Not allow negative streak")
		}

		if err := d.userRepo.SetStreak(ctx, userID, req.Streak); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot set streak: %v", err)
			return nil, errorx.Unknown
		}

		current = req.Streak

	default:
		return nil, errorx.New(errorx.BadRequest, "Invalid streak action %s", req.Action)
	}

	return &model.ChangeStreakResponse{
		PreviousStreak: user.Streak,
		CurrentStreak:  current,
		Action:         req.Action,
	}, nil
}

// GetStatistics returns the caller's global score, streak, current tier, and
// the next tier to reach.
func (d *pointDomain) GetStatistics(
	ctx context.Context, req *model.GetUserStatisticsRequest,
) (*model.GetUserStatisticsResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetUserStatisticsResponse{
		ID:     user.ID,
		Name:   user.Name,
		Points: user.Points,
		Streak: user.Streak,
	}

	tier, err := d.rankTierRepo.GetByPoints(ctx, user.Points)
	if err == nil {
		resp.RankTier = model.ConvertRankTier(tier)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get rank tier: %v", err)
		return nil, errorx.Unknown
	}

	next, err := d.rankTierRepo.GetNext(ctx, user.Points)
	if err == nil {
		resp.NextRankTier = model.ConvertRankTier(next)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get next rank tier: %v", err)
		return nil, errorx.Unknown
	}

	return resp, nil
}

// syncRankTier re-derives the user's tier from the freshly clamped global
// score. A score outside every bracket clears the tier.
func (d *pointDomain) syncRankTier(ctx context.Context, userID string) (*entity.RankTier, error) {
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user for tier sync: %v", err)
		return nil, errorx.Unknown
	}

	tierID := sql.NullString{}
	var tier *entity.RankTier
	tier, err = d.rankTierRepo.GetByPoints(ctx, user.Points)
	if err == nil {
		tierID = sql.NullString{String: tier.ID, Valid: true}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get rank tier: %v", err)
		return nil, errorx.Unknown
	} else {
		tier = nil
	}

	if tierID != user.RankTierID {
		if err := d.userRepo.UpdateRankTier(ctx, userID, tierID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update rank tier: %v", err)
			return nil, errorx.Unknown
		}
	}

	return tier, nil
}

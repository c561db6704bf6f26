package domain

import (
	"context"

	"github.com/rutamapas/backend/internal/common"
	"github.com/rutamapas/backend/internal/domain/competition"
	"github.com/rutamapas/backend/internal/model"
	"github.com/rutamapas/backend/internal/repository"
	"github.com/rutamapas/backend/pkg/errorx"
	"github.com/rutamapas/backend/pkg/xcontext"
)

type CompetitionDomain interface {
	Configure(context.Context, *model.ConfigureCompetitionRequest) (*model.ConfigureCompetitionResponse, error)
	Update(context.Context, *model.UpdateCompetitionRequest) (*model.UpdateCompetitionResponse, error)
}

type competitionDomain struct {
	communityRepo repository.CommunityRepository
	lifecycle     competition.Lifecycle
	adminVerifier *common.CommunityAdminVerifier
}

func NewCompetitionDomain(
	communityRepo repository.CommunityRepository,
	lifecycle competition.Lifecycle,
	adminVerifier *common.CommunityAdminVerifier,
) *competitionDomain {
	return &competitionDomain{
		communityRepo: communityRepo,
		lifecycle:     lifecycle,
		adminVerifier: adminVerifier,
	}
}

// Configure ensures the community has an active competition with the given
// duration as creation default. An already-running competition is returned
// unchanged; Update is the operation that modifies a running window.
func (d *competitionDomain) Configure(
	ctx context.Context, req *model.ConfigureCompetitionRequest,
) (*model.ConfigureCompetitionResponse, error) {
	if !competition.ValidDuration(req.DurationDays) {
		return nil, errorx.New(errorx.BadRequest,
			"Duration must be between %d and %d days",
			competition.MinDurationDays, competition.MaxDurationDays)
	}

	community, err := getCommunityByHandle(ctx, d.communityRepo, req.CommunityHandle)
	if err != nil {
		return nil, err
	}

	if err := d.adminVerifier.Verify(ctx, community); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when configuring competition: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Only the community administrator can configure competitions")
	}

	active, err := d.lifecycle.GetOrCreateActive(
		ctx, community.ID, req.DurationDays, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	return &model.ConfigureCompetitionResponse{
		Competition: model.ConvertCompetition(active, community.Handle),
	}, nil
}

// Update reconfigures the duration of the running competition. The start is
// never changed; if the recomputed end is already in the past, the
// competition closes within this call.
func (d *competitionDomain) Update(
	ctx context.Context, req *model.UpdateCompetitionRequest,
) (*model.UpdateCompetitionResponse, error) {
	if !competition.ValidDuration(req.DurationDays) {
		return nil, errorx.New(errorx.BadRequest,
			"Duration must be between %d and %d days",
			competition.MinDurationDays, competition.MaxDurationDays)
	}

	community, err := getCommunityByHandle(ctx, d.communityRepo, req.CommunityHandle)
	if err != nil {
		return nil, err
	}

	if err := d.adminVerifier.Verify(ctx, community); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when updating competition: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Only the community administrator can configure competitions")
	}

	updated, err := d.lifecycle.Reconfigure(ctx, community.ID, req.DurationDays)
	if err != nil {
		return nil, err
	}

	return &model.UpdateCompetitionResponse{
		Competition: model.ConvertCompetition(updated, community.Handle),
	}, nil
}

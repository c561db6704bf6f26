package domain

import (
	"testing"
	"time"

	"github.com/rutamapas/backend/internal/common"
	"github.com/rutamapas/backend/internal/domain/competition"
	"github.com/rutamapas/backend/internal/model"
	"github.com/rutamapas/backend/internal/repository"
	"github.com/rutamapas/backend/pkg/clock"
	"github.com/rutamapas/backend/pkg/testutil"
	"github.com/rutamapas/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestCompetitionDomain() *competitionDomain {
	return NewCompetitionDomain(
		repository.NewCommunityRepository(),
		competition.NewLifecycle(
			repository.NewCompetitionRepository(),
			repository.NewCompetitionPointRepository(),
		),
		common.NewCommunityAdminVerifier(repository.NewUserRepository()),
	)
}

func Test_competitionDomain_Configure(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithClock(ctx, clock.NewFake(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))

	domain := newTestCompetitionDomain()

	resp, err := domain.Configure(ctx, &model.ConfigureCompetitionRequest{
		CommunityHandle: testutil.Community1.Handle,
		DurationDays:    14,
	})
	require.NoError(t, err)
	require.Equal(t, testutil.Community1.Handle, resp.Competition.CommunityHandle)
	require.Equal(t, 14, resp.Competition.DurationDays)
	require.Equal(t, "active", resp.Competition.Status)
	require.Equal(t, testutil.User1.ID, resp.Competition.CreatedBy)

	// Configuring again returns the running competition unchanged.
	again, err := domain.Configure(ctx, &model.ConfigureCompetitionRequest{
		CommunityHandle: testutil.Community1.Handle,
		DurationDays:    3,
	})
	require.NoError(t, err)
	require.Equal(t, resp.Competition.ID, again.Competition.ID)
	require.Equal(t, 14, again.Competition.DurationDays)
}

func Test_competitionDomain_Configure_notAdmin(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)

	domain := newTestCompetitionDomain()

	_, err := domain.Configure(ctx, &model.ConfigureCompetitionRequest{
		CommunityHandle: testutil.Community1.Handle,
		DurationDays:    7,
	})
	require.Error(t, err)
	require.Equal(t, "Only the community administrator can configure competitions", err.Error())
}

func Test_competitionDomain_Configure_globalAdmin(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User4.ID)
	testutil.CreateFixtureDb(ctx)

	domain := newTestCompetitionDomain()

	_, err := domain.Configure(ctx, &model.ConfigureCompetitionRequest{
		CommunityHandle: testutil.Community1.Handle,
		DurationDays:    7,
	})
	require.NoError(t, err)
}

func Test_competitionDomain_Configure_invalidInput(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)

	domain := newTestCompetitionDomain()

	_, err := domain.Configure(ctx, &model.ConfigureCompetitionRequest{
		CommunityHandle: testutil.Community1.Handle,
		DurationDays:    0,
	})
	require.Error(t, err)

	_, err = domain.Configure(ctx, &model.ConfigureCompetitionRequest{
		CommunityHandle: "does-not-exist",
		DurationDays:    7,
	})
	require.Error(t, err)
	require.Equal(t, "Not found community", err.Error())
}

func Test_competitionDomain_Update(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithClock(ctx, clock.NewFake(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))

	domain := newTestCompetitionDomain()

	created, err := domain.Configure(ctx, &model.ConfigureCompetitionRequest{
		CommunityHandle: testutil.Community1.Handle,
		DurationDays:    7,
	})
	require.NoError(t, err)

	updated, err := domain.Update(ctx, &model.UpdateCompetitionRequest{
		CommunityHandle: testutil.Community1.Handle,
		DurationDays:    30,
	})
	require.NoError(t, err)
	require.Equal(t, created.Competition.ID, updated.Competition.ID)
	require.Equal(t, 30, updated.Competition.DurationDays)
	require.Equal(t, created.Competition.StartedAt, updated.Competition.StartedAt)
	require.Equal(t, created.Competition.StartedAt.AddDate(0, 0, 30), updated.Competition.EndedAt)
}

func Test_competitionDomain_Update_noActive(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)

	domain := newTestCompetitionDomain()

	_, err := domain.Update(ctx, &model.UpdateCompetitionRequest{
		CommunityHandle: testutil.Community1.Handle,
		DurationDays:    30,
	})
	require.Error(t, err)
	require.Equal(t, "No active competition to update", err.Error())
}

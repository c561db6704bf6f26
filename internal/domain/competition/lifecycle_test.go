package competition

import (
	"database/sql"
	"testing"
	"time"

	"github.com/rutamapas/backend/internal/entity"
	"github.com/rutamapas/backend/internal/repository"
	"github.com/rutamapas/backend/pkg/clock"
	"github.com/rutamapas/backend/pkg/testutil"
	"github.com/rutamapas/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_lifecycle_GetOrCreateActive(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	fakeClock := clock.NewFake(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	ctx = xcontext.WithClock(ctx, fakeClock)

	lifecycle := NewLifecycle(
		repository.NewCompetitionRepository(),
		repository.NewCompetitionPointRepository(),
	)

	first, err := lifecycle.GetOrCreateActive(ctx, testutil.Community1.ID, 7, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, entity.CompetitionActive, first.Status)
	require.Equal(t, 7, first.DurationDays)
	require.Equal(t, fakeClock.Current, first.StartedAt)
	require.Equal(t, fakeClock.Current.AddDate(0, 0, 7), first.EndedAt)
	require.Equal(t, testutil.User1.ID, first.CreatedBy.String)

	// A second call returns the same competition, ignoring the new duration.
	second, err := lifecycle.GetOrCreateActive(ctx, testutil.Community1.ID, 30, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 7, second.DurationDays)
}

func Test_lifecycle_GetOrCreateActive_lazyExpiry(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	fakeClock := clock.NewFake(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	ctx = xcontext.WithClock(ctx, fakeClock)

	competitionRepo := repository.NewCompetitionRepository()
	pointRepo := repository.NewCompetitionPointRepository()
	lifecycle := NewLifecycle(competitionRepo, pointRepo)

	first, err := lifecycle.GetOrCreateActive(ctx, testutil.Community1.ID, 7, "")
	require.NoError(t, err)

	err = pointRepo.Upsert(ctx, &entity.CompetitionPoint{
		Base:          entity.Base{ID: "point1"},
		CompetitionID: first.ID,
		UserID:        testutil.User2.ID,
	})
	require.NoError(t, err)
	require.NoError(t, pointRepo.ChangePoints(ctx, first.ID, testutil.User2.ID, 15))

	// Past the end, the next access closes the old competition with its winner
	// and starts a fresh one.
	fakeClock.Advance(8 * 24 * time.Hour)

	second, err := lifecycle.GetOrCreateActive(ctx, testutil.Community1.ID, 7, "")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, entity.CompetitionActive, second.Status)

	closed, err := competitionRepo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, entity.CompetitionClosed, closed.Status)
	require.Equal(t, testutil.User2.ID, closed.WinnerID.String)
	require.False(t, closed.ActiveKey.Valid)
}

func Test_lifecycle_CloseIfExpired_idempotent(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	fakeClock := clock.NewFake(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	ctx = xcontext.WithClock(ctx, fakeClock)

	competitionRepo := repository.NewCompetitionRepository()
	lifecycle := NewLifecycle(competitionRepo, repository.NewCompetitionPointRepository())

	active, err := lifecycle.GetOrCreateActive(ctx, testutil.Community1.ID, 1, "")
	require.NoError(t, err)

	fakeClock.Advance(48 * time.Hour)

	require.NoError(t, lifecycle.CloseIfExpired(ctx, active))
	require.Equal(t, entity.CompetitionClosed, active.Status)
	require.False(t, active.WinnerID.Valid)

	// Closing again changes nothing.
	require.NoError(t, lifecycle.CloseIfExpired(ctx, active))

	stored, err := competitionRepo.GetByID(ctx, active.ID)
	require.NoError(t, err)
	require.Equal(t, entity.CompetitionClosed, stored.Status)
	require.False(t, stored.WinnerID.Valid)
}

func Test_lifecycle_SweepExpired(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	fakeClock := clock.NewFake(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	ctx = xcontext.WithClock(ctx, fakeClock)

	competitionRepo := repository.NewCompetitionRepository()
	lifecycle := NewLifecycle(competitionRepo, repository.NewCompetitionPointRepository())

	active, err := lifecycle.GetOrCreateActive(ctx, testutil.Community1.ID, 3, "")
	require.NoError(t, err)

	count, err := lifecycle.SweepExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	fakeClock.Advance(4 * 24 * time.Hour)

	count, err = lifecycle.SweepExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	stored, err := competitionRepo.GetByID(ctx, active.ID)
	require.NoError(t, err)
	require.Equal(t, entity.CompetitionClosed, stored.Status)
}

func Test_lifecycle_Reconfigure(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	fakeClock := clock.NewFake(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	ctx = xcontext.WithClock(ctx, fakeClock)

	lifecycle := NewLifecycle(
		repository.NewCompetitionRepository(),
		repository.NewCompetitionPointRepository(),
	)

	active, err := lifecycle.GetOrCreateActive(ctx, testutil.Community1.ID, 7, "")
	require.NoError(t, err)

	// Extending keeps the start and recomputes the end.
	updated, err := lifecycle.Reconfigure(ctx, testutil.Community1.ID, 30)
	require.NoError(t, err)
	require.Equal(t, active.ID, updated.ID)
	require.Equal(t, active.StartedAt, updated.StartedAt)
	require.Equal(t, active.StartedAt.AddDate(0, 0, 30), updated.EndedAt)
	require.Equal(t, entity.CompetitionActive, updated.Status)
}

func Test_lifecycle_Reconfigure_intoThePast(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	fakeClock := clock.NewFake(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	ctx = xcontext.WithClock(ctx, fakeClock)

	pointRepo := repository.NewCompetitionPointRepository()
	lifecycle := NewLifecycle(repository.NewCompetitionRepository(), pointRepo)

	active, err := lifecycle.GetOrCreateActive(ctx, testutil.Community1.ID, 30, "")
	require.NoError(t, err)

	err = pointRepo.Upsert(ctx, &entity.CompetitionPoint{
		Base:          entity.Base{ID: "point1"},
		CompetitionID: active.ID,
		UserID:        testutil.User3.ID,
	})
	require.NoError(t, err)
	require.NoError(t, pointRepo.ChangePoints(ctx, active.ID, testutil.User3.ID, 9))

	// Shrinking the window behind the current time closes immediately.
	fakeClock.Advance(5 * 24 * time.Hour)

	updated, err := lifecycle.Reconfigure(ctx, testutil.Community1.ID, 2)
	require.NoError(t, err)
	require.Equal(t, entity.CompetitionClosed, updated.Status)
	require.Equal(t, testutil.User3.ID, updated.WinnerID.String)
}

func Test_lifecycle_activeKeyUniqueness(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	fakeClock := clock.NewFake(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	ctx = xcontext.WithClock(ctx, fakeClock)

	competitionRepo := repository.NewCompetitionRepository()
	lifecycle := NewLifecycle(competitionRepo, repository.NewCompetitionPointRepository())

	active, err := lifecycle.GetOrCreateActive(ctx, testutil.Community1.ID, 7, "")
	require.NoError(t, err)

	// A second active row for the same community violates the active_key
	// unique index, which is what the conflict retry keys off.
	err = competitionRepo.Create(ctx, &entity.Competition{
		Base:         entity.Base{ID: "competition-dup"},
		CommunityID:  testutil.Community1.ID,
		DurationDays: 7,
		StartedAt:    fakeClock.Current,
		EndedAt:      fakeClock.Current.AddDate(0, 0, 7),
		Status:       entity.CompetitionActive,
		ActiveKey:    sql.NullString{String: testutil.Community1.ID, Valid: true},
	})
	require.Error(t, err)
	require.True(t, isDuplicateKeyError(err))

	// Closed rows carry a NULL key, so any number of them may coexist.
	for _, id := range []string{"competition-closed1", "competition-closed2"} {
		err := competitionRepo.Create(ctx, &entity.Competition{
			Base:         entity.Base{ID: id},
			CommunityID:  testutil.Community1.ID,
			DurationDays: 7,
			StartedAt:    fakeClock.Current.AddDate(0, 0, -14),
			EndedAt:      fakeClock.Current.AddDate(0, 0, -7),
			Status:       entity.CompetitionClosed,
		})
		require.NoError(t, err)
	}

	current, err := competitionRepo.GetActiveByCommunityID(ctx, testutil.Community1.ID)
	require.NoError(t, err)
	require.Equal(t, active.ID, current.ID)
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/harmonialabs/harmonia/internal/domain"
	"github.com/harmonialabs/harmonia/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAppointmentRepo(database)
	ctx := context.Background()

	a := testutil.NewAppointment(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), 60,
		testutil.WithClient("M. Laurent"))
	require.NoError(t, repo.Create(ctx, &a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.True(t, got.Start.Equal(a.Start))
	assert.True(t, got.End.Equal(a.End))
	assert.Equal(t, domain.TypeAppointment, got.Type)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	assert.Equal(t, "M. Laurent", got.ClientName)
}

func TestAppointmentRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAppointmentRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAppointmentRepo_ListOrdersByStart(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAppointmentRepo(database)
	ctx := context.Background()

	later := testutil.NewAppointment(time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC), 60)
	earlier := testutil.NewAppointment(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), 60)
	require.NoError(t, repo.Create(ctx, &later))
	require.NoError(t, repo.Create(ctx, &earlier))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, earlier.ID, got[0].ID)
	assert.Equal(t, later.ID, got[1].ID)
}

func TestAppointmentRepo_ListByRange(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAppointmentRepo(database)
	ctx := context.Background()

	inside := testutil.NewAppointment(time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC), 60)
	outside := testutil.NewAppointment(time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC), 60)
	require.NoError(t, repo.Create(ctx, &inside))
	require.NoError(t, repo.Create(ctx, &outside))

	got, err := repo.ListByRange(ctx,
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 8, 23, 59, 59, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inside.ID, got[0].ID)
}

func TestAppointmentRepo_UpdateStatus(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAppointmentRepo(database)
	ctx := context.Background()

	a := testutil.NewAppointment(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), 60)
	require.NoError(t, repo.Create(ctx, &a))
	require.NoError(t, repo.UpdateStatus(ctx, a.ID, domain.StatusCancelled))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)

	err = repo.UpdateStatus(ctx, "nope", domain.StatusCancelled)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSettingsRepo_SeededDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(database)

	s, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)
}

func TestSettingsRepo_SaveRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(database)
	ctx := context.Background()

	want := domain.Settings{
		WorkDayStartHour:     9,
		WorkDayEndHour:       19,
		BreakDurationMin:     30,
		MaxDailyAppointments: 6,
		MaxWeeklyHours:       35,
	}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

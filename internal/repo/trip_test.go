package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyunwoo-ji/tabiori/internal/domain"
	"github.com/hyunwoo-ji/tabiori/internal/repo"
	"github.com/hyunwoo-ji/tabiori/testutil"
)

// newTxRepo returns a TripRepo bound to a transaction that is rolled back
// when the test finishes, so tests never see each other's rows.
func newTxRepo(t *testing.T) repo.TripRepo {
	t.Helper()

	pool := testutil.NewPool(t)
	tx, err := pool.Begin(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })

	return repo.NewTripRepo(tx)
}

func storedTrip(id string) domain.Trip {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	return domain.Trip{
		ID:        id,
		Title:     "Tokyo Long Weekend",
		CityID:    "tokyo",
		StartDate: "2026-03-15",
		Days: []domain.DaySchedule{
			{
				ID: id + "-day-1", DayNumber: 1,
				Items: []domain.ScheduleItem{
					{ID: id + "-item-1", PlaceID: "tokyo-sensoji", StartTime: "09:00", Memo: "go early"},
					{ID: id + "-item-2", PlaceID: "tokyo-skytree"},
				},
			},
			{ID: id + "-day-2", DayNumber: 2, Items: []domain.ScheduleItem{}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTripRepo_SaveAndGet_RoundTripsDocument(t *testing.T) {
	r := newTxRepo(t)
	ctx := context.Background()

	want := storedTrip("trip-rt-1")
	require.NoError(t, r.Save(ctx, want))

	got, err := r.Get(ctx, "trip-rt-1")
	require.NoError(t, err)

	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.CityID, got.CityID)
	require.Len(t, got.Days, 2)
	assert.Equal(t, want.Days[0].Items, got.Days[0].Items)
	assert.Equal(t, 2, got.Days[1].DayNumber)
}

func TestTripRepo_Save_UpsertsOnSameID(t *testing.T) {
	r := newTxRepo(t)
	ctx := context.Background()

	trip := storedTrip("trip-up-1")
	require.NoError(t, r.Save(ctx, trip))

	trip.Title = "Renamed"
	trip.UpdatedAt = trip.UpdatedAt.Add(time.Hour)
	require.NoError(t, r.Save(ctx, trip))

	got, err := r.Get(ctx, "trip-up-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)

	all, err := r.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "upsert must not create a second row")
}

func TestTripRepo_Get_Missing_ErrNotFound(t *testing.T) {
	r := newTxRepo(t)

	_, err := r.Get(context.Background(), "trip-missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	r := newTxRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, storedTrip("trip-del-1")))
	require.NoError(t, r.Delete(ctx, "trip-del-1"))

	_, err := r.Get(ctx, "trip-del-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete_Missing_ErrNotFound(t *testing.T) {
	r := newTxRepo(t)

	err := r.Delete(context.Background(), "trip-never-existed")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_LoadAll_OldestFirst(t *testing.T) {
	r := newTxRepo(t)
	ctx := context.Background()

	older := storedTrip("trip-a")
	newer := storedTrip("trip-b")
	newer.CreatedAt = older.CreatedAt.Add(time.Hour)
	newer.UpdatedAt = newer.CreatedAt

	// Insert newest first to prove ordering comes from created_at.
	require.NoError(t, r.Save(ctx, newer))
	require.NoError(t, r.Save(ctx, older))

	all, err := r.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "trip-a", all[0].ID)
	assert.Equal(t, "trip-b", all[1].ID)
}

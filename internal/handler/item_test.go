package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyunwoo-ji/tabiori/internal/domain"
)

// ---- days ------------------------------------------------------------------

func TestAddDay(t *testing.T) {
	e := newEnv(t)
	trip := e.createTrip(t, "tokyo", "")

	rec := e.do(t, http.MethodPost, "/trips/"+trip.ID+"/days", nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	var day domain.DaySchedule
	decode(t, rec, &day)
	assert.Equal(t, 2, day.DayNumber)

	got := e.getTrip(t, trip.ID)
	require.Len(t, got.Days, 2)
}

func TestAddDay_unknownTrip(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/trips/nope/days", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveDay_renumbers(t *testing.T) {
	e := newEnv(t)
	trip := e.createTrip(t, "tokyo", "")
	e.do(t, http.MethodPost, "/trips/"+trip.ID+"/days", nil)
	e.do(t, http.MethodPost, "/trips/"+trip.ID+"/days", nil)

	got := e.getTrip(t, trip.ID)
	require.Len(t, got.Days, 3)

	rec := e.do(t, http.MethodDelete, "/trips/"+trip.ID+"/days/"+got.Days[1].ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	got = e.getTrip(t, trip.ID)
	require.Len(t, got.Days, 2)
	assert.Equal(t, 1, got.Days[0].DayNumber)
	assert.Equal(t, 2, got.Days[1].DayNumber, "days renumber after removal")
}

func TestRemoveDay_lastDayRefused(t *testing.T) {
	e := newEnv(t)
	trip := e.createTrip(t, "tokyo", "")

	rec := e.do(t, http.MethodDelete, "/trips/"+trip.ID+"/days/"+trip.Days[0].ID, nil)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "conflict", errorCode(t, rec))

	got := e.getTrip(t, trip.ID)
	assert.Len(t, got.Days, 1, "the only day survives")
}

func TestRemoveDay_unknownDay(t *testing.T) {
	e := newEnv(t)
	trip := e.createTrip(t, "tokyo", "")

	rec := e.do(t, http.MethodDelete, "/trips/"+trip.ID+"/days/nope", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- items -----------------------------------------------------------------

func TestAddItem(t *testing.T) {
	e := newEnv(t)
	trip := e.createTrip(t, "tokyo", "")

	item := e.addItem(t, trip.ID, trip.Days[0].ID, "p-tower")

	assert.Equal(t, "p-tower", item.PlaceID)
	assert.NotEmpty(t, item.ID)
}

func TestAddItem_missingPlace(t *testing.T) {
	e := newEnv(t)
	trip := e.createTrip(t, "tokyo", "")

	rec := e.do(t, http.MethodPost, "/trips/"+trip.ID+"/days/"+trip.Days[0].ID+"/items", map[string]string{})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAddItem_duplicatePlaceAllowed(t *testing.T) {
	e := newEnv(t)
	trip := e.createTrip(t, "tokyo", "")
	dayID := trip.Days[0].ID

	first := e.addItem(t, trip.ID, dayID, "p-tower")
	second := e.addItem(t, trip.ID, dayID, "p-tower")

	assert.NotEqual(t, first.ID, second.ID, "same place, distinct items")
	got := e.getTrip(t, trip.ID)
	assert.Len(t, got.Days[0].Items, 2)
}

func TestUpdateItem(t *testing.T) {
	e := newEnv(t)
	trip := e.createTrip(t, "tokyo", "")
	dayID := trip.Days[0].ID
	item := e.addItem(t, trip.ID, dayID, "p-tower")

	rec := e.do(t, http.MethodPatch, "/trips/"+trip.ID+"/days/"+dayID+"/items/"+item.ID, map[string]string{
		"startTime": "10:30",
		"memo":      "buy tickets online",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var updated domain.ScheduleItem
	decode(t, rec, &updated)
	assert.Equal(t, "10:30", updated.StartTime)
	assert.Equal(t, "buy tickets online", updated.Memo)
	assert.Equal(t, item.ID, updated.ID, "identity survives the update")
}

func TestRemoveItem(t *testing.T) {
	e := newEnv(t)
	trip := e.createTrip(t, "tokyo", "")
	dayID := trip.Days[0].ID
	item := e.addItem(t, trip.ID, dayID, "p-tower")

	rec := e.do(t, http.MethodDelete, "/trips/"+trip.ID+"/days/"+dayID+"/items/"+item.ID, nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	got := e.getTrip(t, trip.ID)
	assert.Empty(t, got.Days[0].Items)
}

func TestRemoveItem_unknown(t *testing.T) {
	e := newEnv(t)
	trip := e.createTrip(t, "tokyo", "")

	rec := e.do(t, http.MethodDelete, "/trips/"+trip.ID+"/days/"+trip.Days[0].ID+"/items/nope", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- moves -----------------------------------------------------------------

func TestMoveItem_reorderWithinDay(t *testing.T) {
	e := newEnv(t)
	trip := e.createTrip(t, "tokyo", "")
	dayID := trip.Days[0].ID
	a := e.addItem(t, trip.ID, dayID, "p-tower")
	b := e.addItem(t, trip.ID, dayID, "p-shrine")
	c := e.addItem(t, trip.ID, dayID, "p-garden")

	rec := e.do(t, http.MethodPost, "/trips/"+trip.ID+"/items/move", map[string]any{
		"sourceDayId": dayID,
		"targetDayId": dayID,
		"itemId":      a.ID,
		"newIndex":    2,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Trip
	decode(t, rec, &got)
	require.Len(t, got.Days[0].Items, 3)
	assert.Equal(t, []string{b.ID, c.ID, a.ID}, itemIDs(got.Days[0].Items))
}

func TestMoveItem_acrossDays(t *testing.T) {
	e := newEnv(t)
	trip := e.createTrip(t, "tokyo", "")
	day1 := trip.Days[0].ID
	rec := e.do(t, http.MethodPost, "/trips/"+trip.ID+"/days", nil)
	var day2 domain.DaySchedule
	decode(t, rec, &day2)

	item := e.addItem(t, trip.ID, day1, "p-tower")

	rec = e.do(t, http.MethodPost, "/trips/"+trip.ID+"/items/move", map[string]any{
		"sourceDayId": day1,
		"targetDayId": day2.ID,
		"itemId":      item.ID,
		"newIndex":    0,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Trip
	decode(t, rec, &got)
	assert.Empty(t, got.Days[0].Items)
	require.Len(t, got.Days[1].Items, 1)
	assert.Equal(t, item.ID, got.Days[1].Items[0].ID, "identity survives the transfer")
}

func TestMoveItem_indexClamped(t *testing.T) {
	e := newEnv(t)
	trip := e.createTrip(t, "tokyo", "")
	dayID := trip.Days[0].ID
	a := e.addItem(t, trip.ID, dayID, "p-tower")
	b := e.addItem(t, trip.ID, dayID, "p-shrine")

	rec := e.do(t, http.MethodPost, "/trips/"+trip.ID+"/items/move", map[string]any{
		"sourceDayId": dayID,
		"targetDayId": dayID,
		"itemId":      a.ID,
		"newIndex":    99,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Trip
	decode(t, rec, &got)
	assert.Equal(t, []string{b.ID, a.ID}, itemIDs(got.Days[0].Items), "out-of-range index appends")
}

func TestMoveItem_missingFields(t *testing.T) {
	e := newEnv(t)
	trip := e.createTrip(t, "tokyo", "")

	rec := e.do(t, http.MethodPost, "/trips/"+trip.ID+"/items/move", map[string]any{
		"itemId": "x",
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMoveItem_unknownTrip(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/trips/nope/items/move", map[string]any{
		"sourceDayId": "d", "targetDayId": "d", "itemId": "i", "newIndex": 0,
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func itemIDs(items []domain.ScheduleItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

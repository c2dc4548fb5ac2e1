package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyunwoo-ji/tabiori/internal/catalog"
	"github.com/hyunwoo-ji/tabiori/internal/domain"
	"github.com/hyunwoo-ji/tabiori/internal/handler"
	"github.com/hyunwoo-ji/tabiori/internal/idgen"
	"github.com/hyunwoo-ji/tabiori/internal/schedule"
	"github.com/hyunwoo-ji/tabiori/internal/share"
	"github.com/hyunwoo-ji/tabiori/internal/wizard"
)

// ---- test doubles ----------------------------------------------------------

// saverMock records persistence calls; function fields default to success.
type saverMock struct {
	saved   []string
	deleted []string
}

var _ handler.Saver = (*saverMock)(nil)

func (m *saverMock) Save(_ context.Context, trip domain.Trip) error {
	m.saved = append(m.saved, trip.ID)
	return nil
}

func (m *saverMock) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

// ---- fixtures --------------------------------------------------------------

// testCatalog builds a small in-memory catalog around Tokyo Station.
// Coordinates are chosen so neighbouring places sit a short walk apart.
func testCatalog() *catalog.Catalog {
	cities := []domain.City{
		{ID: "tokyo", Name: "東京", NameEn: "Tokyo", Center: domain.Coordinates{Lat: 35.6812, Lng: 139.7671}},
	}
	places := []domain.Place{
		{ID: "p-tower", Name: "Tower", Category: domain.CategoryAttraction, CityID: "tokyo",
			Location: domain.Coordinates{Lat: 35.6812, Lng: 139.7671}, Rating: 4.5},
		{ID: "p-shrine", Name: "Shrine", Category: domain.CategoryAttraction, CityID: "tokyo",
			Location: domain.Coordinates{Lat: 35.6842, Lng: 139.7671}, Rating: 4.7},
		{ID: "p-garden", Name: "Garden", Category: domain.CategoryAttraction, CityID: "tokyo",
			Location: domain.Coordinates{Lat: 35.6870, Lng: 139.7671}, Rating: 4.2},
		{ID: "p-arcade", Name: "Arcade", Category: domain.CategoryShopping, CityID: "tokyo",
			Location: domain.Coordinates{Lat: 35.6900, Lng: 139.7700}, Rating: 4.0},
		{ID: "p-sushi", Name: "Sushi", Category: domain.CategoryRestaurant, CityID: "tokyo",
			Location: domain.Coordinates{Lat: 35.6820, Lng: 139.7660}, Rating: 4.6},
		{ID: "p-ramen", Name: "Ramen", Category: domain.CategoryRestaurant, CityID: "tokyo",
			Location: domain.Coordinates{Lat: 35.6830, Lng: 139.7680}, Rating: 4.3},
		{ID: "p-kissa", Name: "Kissaten", Category: domain.CategoryCafe, CityID: "tokyo",
			Location: domain.Coordinates{Lat: 35.6825, Lng: 139.7690}, Rating: 4.1},
	}
	return catalog.New(cities, places)
}

// env bundles a fully wired server with direct access to its parts.
type env struct {
	router http.Handler
	store  *schedule.Store
	saver  *saverMock
}

func newEnv(t *testing.T) *env {
	t.Helper()

	ids := &idgen.Sequential{}
	cat := testCatalog()
	engine := wizard.NewEngine(cat, rand.New(rand.NewSource(1)))
	saver := &saverMock{}
	store := schedule.NewStore(ids)

	srv := handler.NewServer(handler.Deps{
		Store:   store,
		Catalog: cat,
		Codec:   share.NewCodec(ids),
		Wizard:  engine,
		Builder: wizard.NewBuilder(engine, ids),
		Saver:   saver,
		BaseURL: "http://api.test",
	})

	return &env{router: srv.Router(), store: store, saver: saver}
}

// ---- request helpers -------------------------------------------------------

// do performs a request against the router. A non-nil body is JSON-encoded.
func (e *env) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorded response body into dst.
func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

// errorCode extracts the code from the error envelope.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decode(t, rec, &body)
	return body.Error.Code
}

// createTrip creates a trip over HTTP and returns it.
func (e *env) createTrip(t *testing.T, cityID, title string) domain.Trip {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/trips", map[string]string{"cityId": cityID, "title": title})
	require.Equal(t, http.StatusCreated, rec.Code)
	var trip domain.Trip
	decode(t, rec, &trip)
	return trip
}

// addItem adds an item to a day over HTTP and returns it.
func (e *env) addItem(t *testing.T, tripID, dayID, placeID string) domain.ScheduleItem {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/trips/"+tripID+"/days/"+dayID+"/items", map[string]string{"placeId": placeID})
	require.Equal(t, http.StatusCreated, rec.Code)
	var item domain.ScheduleItem
	decode(t, rec, &item)
	return item
}

// getTrip fetches the trip over HTTP.
func (e *env) getTrip(t *testing.T, tripID string) domain.Trip {
	t.Helper()
	rec := e.do(t, http.MethodGet, "/trips/"+tripID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var trip domain.Trip
	decode(t, rec, &trip)
	return trip
}

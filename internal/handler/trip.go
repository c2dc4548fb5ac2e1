package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hyunwoo-ji/tabiori/internal/schedule"
)

type createTripRequest struct {
	CityID string `json:"cityId"`
	Title  string `json:"title"`
}

type updateTripRequest struct {
	Title     *string `json:"title"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

// CreateTrip handles POST /trips.
// Returns HTTP 201 with the created trip, or 422 when cityId is missing.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	if req.CityID == "" {
		validationError(w, "cityId is required")
		return
	}

	trip := s.store.CreateTrip(req.CityID, req.Title)
	s.persist(r.Context(), trip.ID)
	writeJSON(w, http.StatusCreated, trip)
}

// ListTrips handles GET /trips.
// Returns HTTP 200 with every trip, oldest first.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListTrips())
}

// GetTrip handles GET /trips/{tripID}.
// Returns HTTP 200 with the trip, or 404 when it does not exist.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, ok := s.store.GetTrip(chi.URLParam(r, "tripID"))
	if !ok {
		notFound(w, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PATCH /trips/{tripID}.
// Only fields present in the body are changed. Returns HTTP 200 with the
// updated trip, or 404 when it does not exist.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req updateTripRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	tripID := chi.URLParam(r, "tripID")
	trip, ok := s.store.UpdateTrip(tripID, schedule.TripUpdate{
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if !ok {
		notFound(w, "trip not found")
		return
	}
	s.persist(r.Context(), tripID)
	writeJSON(w, http.StatusOK, trip)
}

// DeleteTrip handles DELETE /trips/{tripID}.
// Returns HTTP 204, or 404 when the trip does not exist.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")
	if _, ok := s.store.GetTrip(tripID); !ok {
		notFound(w, "trip not found")
		return
	}

	s.store.DeleteTrip(tripID)
	s.persistDelete(r.Context(), tripID)
	w.WriteHeader(http.StatusNoContent)
}

// ActivateTrip handles POST /trips/{tripID}/activate.
// Always returns HTTP 204: the active pointer is allowed to reference a trip
// that does not exist yet, so an unknown id is not an error.
func (s *Server) ActivateTrip(w http.ResponseWriter, r *http.Request) {
	s.store.SetActiveTrip(chi.URLParam(r, "tripID"))
	w.WriteHeader(http.StatusNoContent)
}

// GetActiveTrip handles GET /trips/active.
// Returns HTTP 200 with the active trip, or 404 when no trip is active or
// the active pointer is dangling.
func (s *Server) GetActiveTrip(w http.ResponseWriter, r *http.Request) {
	trip, ok := s.store.ActiveTrip()
	if !ok {
		notFound(w, "no active trip")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

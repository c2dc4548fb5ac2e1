package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AddDay handles POST /trips/{tripID}/days.
// Returns HTTP 201 with the new day, or 404 when the trip does not exist.
func (s *Server) AddDay(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")
	day, ok := s.store.AddDay(tripID)
	if !ok {
		notFound(w, "trip not found")
		return
	}
	s.persist(r.Context(), tripID)
	writeJSON(w, http.StatusCreated, day)
}

// RemoveDay handles DELETE /trips/{tripID}/days/{dayID}.
// Returns HTTP 204 on success, 404 when the trip or day does not exist, and
// 409 when the day is the trip's last one: a trip always keeps at least one
// day, so the engine refuses the removal.
func (s *Server) RemoveDay(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")
	dayID := chi.URLParam(r, "dayID")

	trip, ok := s.store.GetTrip(tripID)
	if !ok {
		notFound(w, "trip not found")
		return
	}
	found := false
	for _, d := range trip.Days {
		if d.ID == dayID {
			found = true
			break
		}
	}
	if !found {
		notFound(w, "day not found")
		return
	}
	if len(trip.Days) == 1 {
		conflict(w, "cannot remove the only day of a trip")
		return
	}

	s.store.RemoveDay(tripID, dayID)
	s.persist(r.Context(), tripID)
	w.WriteHeader(http.StatusNoContent)
}

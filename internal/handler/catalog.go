package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListCities handles GET /cities.
// Returns HTTP 200 with every city in the catalog.
func (s *Server) ListCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Cities())
}

// ListCityPlaces handles GET /cities/{cityID}/places.
// Returns HTTP 200 with the city's places, or 404 for an unknown city.
func (s *Server) ListCityPlaces(w http.ResponseWriter, r *http.Request) {
	cityID := chi.URLParam(r, "cityID")
	if _, ok := s.catalog.City(cityID); !ok {
		notFound(w, "city not found")
		return
	}
	writeJSON(w, http.StatusOK, s.catalog.PlacesByCity(cityID))
}

// GetPlace handles GET /places/{placeID}.
// Returns HTTP 200 with the place, or 404 when it is not in the catalog.
func (s *Server) GetPlace(w http.ResponseWriter, r *http.Request) {
	place, ok := s.catalog.Lookup(chi.URLParam(r, "placeID"))
	if !ok {
		notFound(w, "place not found")
		return
	}
	writeJSON(w, http.StatusOK, place)
}

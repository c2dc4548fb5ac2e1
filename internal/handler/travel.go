package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hyunwoo-ji/tabiori/internal/travel"
)

type travelLegResponse struct {
	FromPlaceID string  `json:"fromPlaceId"`
	ToPlaceID   string  `json:"toPlaceId"`
	Mode        string  `json:"mode"`
	Minutes     int     `json:"minutes"`
	DistanceKm  float64 `json:"distanceKm"`
	Formatted   string  `json:"formatted"`
}

type dayTravelResponse struct {
	Legs           []travelLegResponse `json:"legs"`
	TotalMinutes   int                 `json:"totalMinutes"`
	TotalFormatted string              `json:"totalFormatted"`
}

// DayTravel handles GET /trips/{tripID}/days/{dayID}/travel.
// Returns HTTP 200 with a travel leg per pair of consecutive resolvable
// items, or 404 when the trip or day does not exist. Items whose place is
// not in the catalog are skipped, and their neighbours connect directly.
func (s *Server) DayTravel(w http.ResponseWriter, r *http.Request) {
	trip, ok := s.store.GetTrip(chi.URLParam(r, "tripID"))
	if !ok {
		notFound(w, "trip not found")
		return
	}

	dayID := chi.URLParam(r, "dayID")
	for _, d := range trip.Days {
		if d.ID != dayID {
			continue
		}

		legs := travel.DayLegs(d.Items, s.catalog.Lookup)
		resp := dayTravelResponse{
			Legs:         make([]travelLegResponse, 0, len(legs)),
			TotalMinutes: travel.TotalMinutes(legs),
		}
		for _, leg := range legs {
			resp.Legs = append(resp.Legs, travelLegResponse{
				FromPlaceID: leg.FromPlaceID,
				ToPlaceID:   leg.ToPlaceID,
				Mode:        string(leg.Mode),
				Minutes:     leg.Minutes,
				DistanceKm:  leg.DistanceKm,
				Formatted:   travel.FormatMinutes(leg.Minutes),
			})
		}
		resp.TotalFormatted = travel.FormatMinutes(resp.TotalMinutes)
		writeJSON(w, http.StatusOK, resp)
		return
	}

	notFound(w, "day not found")
}

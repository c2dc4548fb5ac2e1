package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type shareResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// ShareTrip handles GET /trips/{tripID}/share.
// Returns HTTP 200 with a URL-safe token and a shareable link, or 404 when
// the trip does not exist. The token carries the itinerary content only;
// ids and timestamps are minted fresh on open.
func (s *Server) ShareTrip(w http.ResponseWriter, r *http.Request) {
	trip, ok := s.store.GetTrip(chi.URLParam(r, "tripID"))
	if !ok {
		notFound(w, "trip not found")
		return
	}

	token := s.codec.Encode(trip)
	writeJSON(w, http.StatusOK, shareResponse{
		Token: token,
		URL:   s.baseURL + "/share/" + token,
	})
}

// OpenShare handles GET /share/{token}.
// Decodes the token, imports the itinerary as a new trip with fresh ids,
// makes it active, and returns HTTP 201 with the imported trip. A token
// that does not decode to a valid itinerary yields 400.
func (s *Server) OpenShare(w http.ResponseWriter, r *http.Request) {
	decoded := s.codec.Decode(chi.URLParam(r, "token"))
	if decoded == nil {
		badRequest(w, "share token is not valid")
		return
	}

	trip := s.store.AdoptTrip(*decoded)
	s.persist(r.Context(), trip.ID)
	writeJSON(w, http.StatusCreated, trip)
}

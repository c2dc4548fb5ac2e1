package handler

import (
	"net/http"

	"github.com/hyunwoo-ji/tabiori/internal/wizard"
)

// WizardNext handles POST /wizard/next.
// The client posts its selections so far and receives the next step to
// render, including the options to offer. The engine is stateless: the
// same selections always produce the same step. Returns HTTP 200.
func (s *Server) WizardNext(w http.ResponseWriter, r *http.Request) {
	var sel wizard.Selections
	if err := decodeBody(r, &sel); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.wizard.NextStep(sel))
}

// WizardBuild handles POST /wizard/build.
// Builds a trip from completed selections, imports it into the store as the
// active trip, and returns HTTP 201 with it. Incomplete selections yield 422.
func (s *Server) WizardBuild(w http.ResponseWriter, r *http.Request) {
	var sel wizard.Selections
	if err := decodeBody(r, &sel); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	draft := s.builder.Build(sel)
	if draft == nil {
		validationError(w, "selections are incomplete")
		return
	}

	trip := s.store.AdoptTrip(*draft)
	s.persist(r.Context(), trip.ID)
	writeJSON(w, http.StatusCreated, trip)
}

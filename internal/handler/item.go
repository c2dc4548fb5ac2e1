package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hyunwoo-ji/tabiori/internal/schedule"
)

type addItemRequest struct {
	PlaceID string `json:"placeId"`
}

type updateItemRequest struct {
	StartTime *string `json:"startTime"`
	Memo      *string `json:"memo"`
}

type moveItemRequest struct {
	SourceDayID string `json:"sourceDayId"`
	TargetDayID string `json:"targetDayId"`
	ItemID      string `json:"itemId"`
	NewIndex    int    `json:"newIndex"`
}

// AddItem handles POST /trips/{tripID}/days/{dayID}/items.
// Returns HTTP 201 with the new item, 422 when placeId is missing, or 404
// when the trip or day does not exist. The same place may appear on a day
// any number of times.
func (s *Server) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	if req.PlaceID == "" {
		validationError(w, "placeId is required")
		return
	}

	tripID := chi.URLParam(r, "tripID")
	item, ok := s.store.AddItem(tripID, chi.URLParam(r, "dayID"), req.PlaceID)
	if !ok {
		notFound(w, "trip or day not found")
		return
	}
	s.persist(r.Context(), tripID)
	writeJSON(w, http.StatusCreated, item)
}

// UpdateItem handles PATCH /trips/{tripID}/days/{dayID}/items/{itemID}.
// Only fields present in the body are changed. Returns HTTP 200 with the
// updated item, or 404 when any part of the path does not resolve.
func (s *Server) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	tripID := chi.URLParam(r, "tripID")
	item, ok := s.store.UpdateItem(tripID, chi.URLParam(r, "dayID"), chi.URLParam(r, "itemID"), schedule.ItemUpdate{
		StartTime: req.StartTime,
		Memo:      req.Memo,
	})
	if !ok {
		notFound(w, "item not found")
		return
	}
	s.persist(r.Context(), tripID)
	writeJSON(w, http.StatusOK, item)
}

// RemoveItem handles DELETE /trips/{tripID}/days/{dayID}/items/{itemID}.
// Returns HTTP 204, or 404 when any part of the path does not resolve.
func (s *Server) RemoveItem(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")
	dayID := chi.URLParam(r, "dayID")
	itemID := chi.URLParam(r, "itemID")

	trip, ok := s.store.GetTrip(tripID)
	if !ok {
		notFound(w, "trip not found")
		return
	}
	found := false
	for _, d := range trip.Days {
		if d.ID != dayID {
			continue
		}
		for _, it := range d.Items {
			if it.ID == itemID {
				found = true
				break
			}
		}
	}
	if !found {
		notFound(w, "item not found")
		return
	}

	s.store.RemoveItem(tripID, dayID, itemID)
	s.persist(r.Context(), tripID)
	w.WriteHeader(http.StatusNoContent)
}

// MoveItem handles POST /trips/{tripID}/items/move.
// Moves an item within a day or across days of the same trip, clamping the
// requested index into the valid range. Returns HTTP 200 with the whole
// updated trip (both days may have changed), 422 when a required field is
// missing, or 404 when the trip does not exist. A move whose source day or
// item does not resolve leaves the trip untouched and still returns 200.
func (s *Server) MoveItem(w http.ResponseWriter, r *http.Request) {
	var req moveItemRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	if req.SourceDayID == "" || req.TargetDayID == "" || req.ItemID == "" {
		validationError(w, "sourceDayId, targetDayId and itemId are required")
		return
	}

	tripID := chi.URLParam(r, "tripID")
	if _, ok := s.store.GetTrip(tripID); !ok {
		notFound(w, "trip not found")
		return
	}

	s.store.MoveItem(tripID, req.SourceDayID, req.TargetDayID, req.ItemID, req.NewIndex)
	s.persist(r.Context(), tripID)

	trip, _ := s.store.GetTrip(tripID)
	writeJSON(w, http.StatusOK, trip)
}

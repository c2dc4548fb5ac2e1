// Package domain contains the core data types for the itinerary planner.
// This package has zero external dependencies and is imported by every other
// internal package (schedule, share, wizard, repo, handler).
package domain

import "time"

// ScheduleItem is one scheduled visit to a place within a day.
// Its ID is globally unique and stable across moves: reordering an item or
// transferring it to another day never changes its identity.
//
// PlaceID references a catalog place but is not validated by the core —
// a dangling reference is tolerated and simply fails to resolve upstream.
type ScheduleItem struct {
	ID      string `json:"id"`
	PlaceID string `json:"placeId"`
	// StartTime is "HH:mm" (e.g. "09:00") or empty when unscheduled.
	StartTime string `json:"startTime,omitempty"`
	Memo      string `json:"memo,omitempty"`
}

// DaySchedule is one calendar day of a trip.
//
// DayNumber is positional, not a free attribute: it always equals the day's
// 1-based index within the trip's day sequence, and is recomputed after every
// structural mutation. Item order within Items is the canonical schedule
// order for the day — absent explicit start times, display order is the
// source of truth.
type DaySchedule struct {
	ID        string `json:"id"`
	DayNumber int    `json:"dayNumber"`
	// Date is an ISO date ("2006-01-02") or empty when the trip is undated.
	Date  string         `json:"date,omitempty"`
	Items []ScheduleItem `json:"items"`
}

// Trip is the top-level itinerary aggregate for one city visit.
// A trip always has at least one day; removal of the last day is refused.
// UpdatedAt is refreshed on every mutation.
type Trip struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	CityID    string        `json:"cityId"`
	StartDate string        `json:"startDate,omitempty"`
	EndDate   string        `json:"endDate,omitempty"`
	Days      []DaySchedule `json:"days"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Clone returns a deep copy of the trip. The schedule store hands out clones
// so callers can never alias its internal state.
func (t Trip) Clone() Trip {
	out := t
	out.Days = make([]DaySchedule, len(t.Days))
	for i, d := range t.Days {
		day := d
		day.Items = make([]ScheduleItem, len(d.Items))
		copy(day.Items, d.Items)
		out.Days[i] = day
	}
	return out
}

// ItemCount returns the total number of items across all days.
func (t Trip) ItemCount() int {
	n := 0
	for _, d := range t.Days {
		n += len(d.Items)
	}
	return n
}

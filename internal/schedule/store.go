// Package schedule owns the Trip/Day/Item aggregate and every mutation on it.
// All ordering and identity invariants are enforced here and nowhere else:
//
//   - a trip always has at least one day;
//   - DayNumber always equals the day's 1-based position (renumbered after
//     every structural change, never stored independently);
//   - item ids are stable across reorders and cross-day moves.
//
// The store never returns errors. Lookups on unknown trip/day/item ids
// degrade to silent no-ops (mutations) or ok=false (reads) — it is driven by
// UI state that may race with renders, so idempotent resilience beats
// strictness. Callers that need "does this exist" semantics check first with
// GetTrip.
package schedule

import (
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/hyunwoo-ji/tabiori/internal/domain"
	"github.com/hyunwoo-ji/tabiori/internal/idgen"
)

// TripUpdate carries a partial update for UpdateTrip.
// Nil fields are left unchanged.
type TripUpdate struct {
	Title     *string
	StartDate *string
	EndDate   *string
}

// ItemUpdate carries a partial update for UpdateItem.
// Nil fields are left unchanged.
type ItemUpdate struct {
	StartTime *string
	Memo      *string
}

// Store holds the trip collection and the active-trip pointer.
// All operations are synchronous and guarded by one mutex: the model assumes
// a single logical writer, and the lock is what that assumption costs inside
// a concurrent HTTP server.
//
// Tests construct a fresh Store per case; nothing here is global.
type Store struct {
	mu     sync.Mutex
	ids    idgen.Generator
	now    func() time.Time
	trips  []*domain.Trip
	active string // id of the active trip, "" when unset
}

// NewStore constructs an empty Store using the given id generator.
func NewStore(ids idgen.Generator) *Store {
	return &Store{ids: ids, now: time.Now}
}

// ---- Trip operations -------------------------------------------------------

// CreateTrip builds a trip with one empty day (dayNumber=1), appends it to
// the collection, and makes it the active trip.
// When title is empty a city-derived label ("Tokyo Trip") is used.
func (s *Store) CreateTrip(cityID, title string) domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	if title == "" {
		title = defaultTitle(cityID)
	}
	now := s.now()
	trip := &domain.Trip{
		ID:     s.ids.NewID("trip"),
		Title:  title,
		CityID: cityID,
		Days: []domain.DaySchedule{{
			ID:        s.ids.NewID("day"),
			DayNumber: 1,
			Items:     []domain.ScheduleItem{},
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.trips = append(s.trips, trip)
	s.active = trip.ID
	return trip.Clone()
}

// DeleteTrip removes the trip from the collection. If it was active, the
// active pointer becomes unset — it is never auto-reassigned. Unknown ids
// are a no-op.
func (s *Store) DeleteTrip(tripID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.trips[:0]
	for _, t := range s.trips {
		if t.ID != tripID {
			kept = append(kept, t)
		}
	}
	s.trips = kept
	if s.active == tripID {
		s.active = ""
	}
}

// SetActiveTrip swaps the active pointer. The id is not validated — setting
// a dangling id is accepted and simply makes ActiveTrip return ok=false.
// Pass "" to clear.
func (s *Store) SetActiveTrip(tripID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = tripID
}

// ActiveTrip returns a clone of the trip the active pointer names,
// or ok=false when the pointer is unset or dangling.
func (s *Store) ActiveTrip() (domain.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(s.active)
	if t == nil {
		return domain.Trip{}, false
	}
	return t.Clone(), true
}

// GetTrip returns a clone of the named trip, or ok=false when unknown.
func (s *Store) GetTrip(tripID string) (domain.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(tripID)
	if t == nil {
		return domain.Trip{}, false
	}
	return t.Clone(), true
}

// ListTrips returns clones of all trips in creation order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *Store) ListTrips() []domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Trip, len(s.trips))
	for i, t := range s.trips {
		out[i] = t.Clone()
	}
	return out
}

// UpdateTrip merges the non-nil fields of upd onto the trip and bumps
// UpdatedAt. Unknown ids return ok=false without touching anything.
func (s *Store) UpdateTrip(tripID string, upd TripUpdate) (domain.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(tripID)
	if t == nil {
		return domain.Trip{}, false
	}
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.StartDate != nil {
		t.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		t.EndDate = *upd.EndDate
	}
	t.UpdatedAt = s.now()
	return t.Clone(), true
}

// ---- Day operations --------------------------------------------------------

// AddDay appends an empty day numbered len(days)+1.
func (s *Store) AddDay(tripID string) (domain.DaySchedule, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(tripID)
	if t == nil {
		return domain.DaySchedule{}, false
	}
	day := domain.DaySchedule{
		ID:        s.ids.NewID("day"),
		DayNumber: len(t.Days) + 1,
		Items:     []domain.ScheduleItem{},
	}
	t.Days = append(t.Days, day)
	t.UpdatedAt = s.now()
	return day, true
}

// RemoveDay removes the named day and renumbers the remaining days
// contiguously from 1, preserving relative order.
// Refused as a no-op when the trip has exactly one day — a trip can never
// end up with zero days.
func (s *Store) RemoveDay(tripID, dayID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(tripID)
	if t == nil || len(t.Days) <= 1 {
		return
	}
	kept := make([]domain.DaySchedule, 0, len(t.Days))
	for _, d := range t.Days {
		if d.ID != dayID {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(t.Days) {
		return // unknown day id
	}
	t.Days = kept
	renumber(t)
	t.UpdatedAt = s.now()
}

// ---- Item operations -------------------------------------------------------

// AddItem appends a new item for placeID to the end of the named day.
// No deduplication: adding the same place twice produces two distinct items.
func (s *Store) AddItem(tripID, dayID, placeID string) (domain.ScheduleItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(tripID)
	if t == nil {
		return domain.ScheduleItem{}, false
	}
	d := findDay(t, dayID)
	if d == nil {
		return domain.ScheduleItem{}, false
	}
	item := domain.ScheduleItem{
		ID:      s.ids.NewID("item"),
		PlaceID: placeID,
	}
	d.Items = append(d.Items, item)
	t.UpdatedAt = s.now()
	return item, true
}

// RemoveItem removes the item by id from the named day. No-op if absent.
func (s *Store) RemoveItem(tripID, dayID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(tripID)
	if t == nil {
		return
	}
	d := findDay(t, dayID)
	if d == nil {
		return
	}
	for i, it := range d.Items {
		if it.ID == itemID {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			t.UpdatedAt = s.now()
			return
		}
	}
}

// UpdateItem merges the non-nil fields of upd onto the matching item.
func (s *Store) UpdateItem(tripID, dayID, itemID string, upd ItemUpdate) (domain.ScheduleItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(tripID)
	if t == nil {
		return domain.ScheduleItem{}, false
	}
	d := findDay(t, dayID)
	if d == nil {
		return domain.ScheduleItem{}, false
	}
	for i := range d.Items {
		if d.Items[i].ID != itemID {
			continue
		}
		if upd.StartTime != nil {
			d.Items[i].StartTime = *upd.StartTime
		}
		if upd.Memo != nil {
			d.Items[i].Memo = *upd.Memo
		}
		t.UpdatedAt = s.now()
		return d.Items[i], true
	}
	return domain.ScheduleItem{}, false
}

// MoveItem relocates the item to position newIndex (0-based, clamped to the
// target's length) within the target day. Same-day reordering and cross-day
// transfer are the same operation; the item's id is preserved either way.
//
// Implemented as remove-then-insert computed from one consistent snapshot:
// the item is located and detached from the source first, then inserted into
// the target, so target indices are never computed against a list that is
// being mutated underneath them. If the item is not in the source day, or
// either day is unknown, the call is a no-op.
func (s *Store) MoveItem(tripID, sourceDayID, targetDayID, itemID string, newIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.find(tripID)
	if t == nil {
		return
	}
	src := findDay(t, sourceDayID)
	dst := findDay(t, targetDayID)
	if src == nil || dst == nil {
		return
	}

	idx := -1
	for i, it := range src.Items {
		if it.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	item := src.Items[idx]
	src.Items = append(src.Items[:idx], src.Items[idx+1:]...)

	// After a same-day removal src and dst alias the same slice header via
	// the day pointer, so len(dst.Items) is already the post-removal length.
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(dst.Items) {
		newIndex = len(dst.Items)
	}
	dst.Items = append(dst.Items[:newIndex], append([]domain.ScheduleItem{item}, dst.Items[newIndex:]...)...)
	t.UpdatedAt = s.now()
}

// ---- Import / persistence boundary -----------------------------------------

// AdoptTrip materializes an externally built trip (a decoded share token or
// a wizard-built draft) into the store and makes it active. Missing ids are
// minted, days are renumbered, and a trip arriving with zero days gets one
// empty day so the ≥1-day invariant holds from the first moment.
func (s *Store) AdoptTrip(t domain.Trip) domain.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	adopted := t.Clone()
	if adopted.ID == "" {
		adopted.ID = s.ids.NewID("trip")
	}
	if len(adopted.Days) == 0 {
		adopted.Days = []domain.DaySchedule{{Items: []domain.ScheduleItem{}}}
	}
	for i := range adopted.Days {
		if adopted.Days[i].ID == "" {
			adopted.Days[i].ID = s.ids.NewID("day")
		}
		if adopted.Days[i].Items == nil {
			adopted.Days[i].Items = []domain.ScheduleItem{}
		}
		for j := range adopted.Days[i].Items {
			if adopted.Days[i].Items[j].ID == "" {
				adopted.Days[i].Items[j].ID = s.ids.NewID("item")
			}
		}
	}
	renumber(&adopted)

	now := s.now()
	if adopted.CreatedAt.IsZero() {
		adopted.CreatedAt = now
	}
	adopted.UpdatedAt = now

	s.trips = append(s.trips, &adopted)
	s.active = adopted.ID
	return adopted.Clone()
}

// Snapshot returns clones of all trips plus the active trip id.
// This is the save half of the load/save boundary used by persistence.
func (s *Store) Snapshot() ([]domain.Trip, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Trip, len(s.trips))
	for i, t := range s.trips {
		out[i] = t.Clone()
	}
	return out, s.active
}

// ReplaceAll swaps the whole collection for trips loaded from storage,
// clearing the active pointer. Each loaded trip is renumbered defensively so
// a hand-edited or older document cannot smuggle in a dayNumber gap.
func (s *Store) ReplaceAll(trips []domain.Trip) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trips = make([]*domain.Trip, 0, len(trips))
	for _, t := range trips {
		loaded := t.Clone()
		if len(loaded.Days) == 0 {
			loaded.Days = []domain.DaySchedule{{ID: s.ids.NewID("day"), Items: []domain.ScheduleItem{}}}
		}
		renumber(&loaded)
		s.trips = append(s.trips, &loaded)
	}
	s.active = ""
}

// ---- internals -------------------------------------------------------------

// find returns the trip pointer for id, or nil. Callers hold s.mu.
func (s *Store) find(id string) *domain.Trip {
	if id == "" {
		return nil
	}
	for _, t := range s.trips {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// findDay returns a pointer into t.Days for dayID, or nil.
func findDay(t *domain.Trip, dayID string) *domain.DaySchedule {
	for i := range t.Days {
		if t.Days[i].ID == dayID {
			return &t.Days[i]
		}
	}
	return nil
}

// renumber restores the positional invariant: days[i].DayNumber == i+1.
func renumber(t *domain.Trip) {
	for i := range t.Days {
		t.Days[i].DayNumber = i + 1
	}
}

// defaultTitle derives a trip title from the city id: "tokyo" → "Tokyo Trip".
func defaultTitle(cityID string) string {
	name := strings.TrimSpace(cityID)
	if name == "" {
		return "Untitled Trip"
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes) + " Trip"
}

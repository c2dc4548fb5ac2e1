// Package share turns a trip into a compact URL-safe token and back.
//
// The token is lossy by design: ids and timestamps are dropped, only content
// survives. Two shapes exist on purpose — the live domain.Trip (ids,
// timestamps, active-pointer semantics) and the portable compact shape below
// (content only) — and Encode/Decode are the sole crossing between them. The
// portable shape never leaks into live-store invariant checks.
package share

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/hyunwoo-ji/tabiori/internal/domain"
	"github.com/hyunwoo-ji/tabiori/internal/idgen"
)

// Compact wire shape. Single-letter keys keep tokens short enough for URLs;
// a three-day itinerary with a dozen items fits comfortably under 500 chars.
type compactTrip struct {
	Title     string       `json:"t"`
	CityID    string       `json:"c"`
	StartDate string       `json:"sd,omitempty"`
	EndDate   string       `json:"ed,omitempty"`
	Days      []compactDay `json:"d"`
}

type compactDay struct {
	Number int           `json:"n"`
	Date   string        `json:"dt,omitempty"`
	Items  []compactItem `json:"i"`
}

type compactItem struct {
	PlaceID   string `json:"p"`
	StartTime string `json:"s,omitempty"`
	Memo      string `json:"m,omitempty"`
}

// Codec encodes and decodes share tokens. Decoding mints fresh ids for the
// trip, every day, and every item, so it needs a generator: ids are not
// stable across the share boundary, only content is.
type Codec struct {
	ids idgen.Generator
}

// NewCodec constructs a Codec using the given id generator.
func NewCodec(ids idgen.Generator) *Codec {
	return &Codec{ids: ids}
}

// Encode serializes the trip's content into a URL-safe token: compact JSON,
// base64 with the URL alphabet (- and _ instead of + and /), no padding.
// The result never contains '+', '/', or '='.
func (c *Codec) Encode(t domain.Trip) string {
	compact := compactTrip{
		Title:     t.Title,
		CityID:    t.CityID,
		StartDate: t.StartDate,
		EndDate:   t.EndDate,
		Days:      make([]compactDay, len(t.Days)),
	}
	for i, d := range t.Days {
		day := compactDay{
			Number: d.DayNumber,
			Date:   d.Date,
			Items:  make([]compactItem, len(d.Items)),
		}
		for j, it := range d.Items {
			day.Items[j] = compactItem{PlaceID: it.PlaceID, StartTime: it.StartTime, Memo: it.Memo}
		}
		compact.Days[i] = day
	}

	// Marshal cannot fail here: the compact shape is plain strings and ints.
	raw, _ := json.Marshal(compact)
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Decode reconstructs a trip from a token, or returns nil on any parse
// failure — malformed base64, invalid JSON, missing required fields. It
// never panics or returns an error: an undecodable token just isn't a
// shared trip.
//
// The returned trip carries fresh ids and zero timestamps; callers
// materialize it into the store (which stamps times) before use.
func (c *Codec) Decode(token string) *domain.Trip {
	if token == "" {
		return nil
	}
	// Tolerate tokens that picked up '=' padding in transit.
	token = strings.TrimRight(token, "=")

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil
	}

	var compact compactTrip
	if err := json.Unmarshal(raw, &compact); err != nil {
		return nil
	}
	if compact.Title == "" || compact.CityID == "" || compact.Days == nil {
		return nil
	}

	trip := &domain.Trip{
		ID:        c.ids.NewID("trip"),
		Title:     compact.Title,
		CityID:    compact.CityID,
		StartDate: compact.StartDate,
		EndDate:   compact.EndDate,
		Days:      make([]domain.DaySchedule, len(compact.Days)),
	}
	for i, d := range compact.Days {
		if d.Items == nil {
			return nil // a day without an item list is not a valid token
		}
		day := domain.DaySchedule{
			ID:        c.ids.NewID("day"),
			DayNumber: d.Number,
			Date:      d.Date,
			Items:     make([]domain.ScheduleItem, len(d.Items)),
		}
		for j, it := range d.Items {
			if it.PlaceID == "" {
				return nil
			}
			day.Items[j] = domain.ScheduleItem{
				ID:        c.ids.NewID("item"),
				PlaceID:   it.PlaceID,
				StartTime: it.StartTime,
				Memo:      it.Memo,
			}
		}
		trip.Days[i] = day
	}
	return trip
}

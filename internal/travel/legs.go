package travel

import "github.com/hyunwoo-ji/tabiori/internal/domain"

// Leg is an estimate between two consecutive resolvable items of a day.
type Leg struct {
	FromPlaceID string `json:"fromPlaceId"`
	ToPlaceID   string `json:"toPlaceId"`
	Estimate
}

// Lookup resolves a place id to its catalog entry.
// Matches catalog.Catalog.Lookup; declared here so the package depends on a
// function shape, not the catalog itself.
type Lookup func(placeID string) (domain.Place, bool)

// DayLegs walks the day's items in schedule order and estimates each
// adjacent pair. Items whose place cannot be resolved are skipped: the legs
// connect the surviving neighbors, mirroring how an unresolvable item is
// simply omitted from rendering. The first resolvable item has no
// predecessor and contributes no leg.
func DayLegs(items []domain.ScheduleItem, lookup Lookup) []Leg {
	legs := []Leg{}
	var prev *domain.Place
	for _, it := range items {
		place, ok := lookup(it.PlaceID)
		if !ok {
			continue
		}
		if prev != nil {
			est := EstimateLeg(prev.Location.Lat, prev.Location.Lng, place.Location.Lat, place.Location.Lng)
			legs = append(legs, Leg{FromPlaceID: prev.ID, ToPlaceID: place.ID, Estimate: est})
		}
		p := place
		prev = &p
	}
	return legs
}

// TotalMinutes sums the minutes of all legs — the per-day travel total.
func TotalMinutes(legs []Leg) int {
	total := 0
	for _, l := range legs {
		total += l.Minutes
	}
	return total
}

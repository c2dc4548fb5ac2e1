package wizard

import (
	"fmt"

	"github.com/hyunwoo-ji/tabiori/internal/domain"
	"github.com/hyunwoo-ji/tabiori/internal/idgen"
)

// Canonical start times for wizard-built days: two theme stops framing the
// two meals.
const (
	morningSlot = "09:00"
	lunchSlot   = "12:00"
	afternoon   = "14:00"
	dinnerSlot  = "18:00"
)

// Builder converts completed wizard selections into an initial trip.
// The result carries ids but no timestamps; the schedule store stamps those
// when the trip is adopted.
type Builder struct {
	engine *Engine
	ids    idgen.Generator
}

// NewBuilder constructs a Builder over the engine's catalog view.
func NewBuilder(engine *Engine, ids idgen.Generator) *Builder {
	return &Builder{engine: engine, ids: ids}
}

// Build places each day's best two theme-matched stops at 09:00 and 14:00
// and the chosen meals at 12:00 and 18:00, skipping meals marked Skipped.
// Days whose theme was never chosen are left out entirely.
//
// Returns nil when city, duration, or all day themes are missing — the
// selections aren't a buildable itinerary yet.
func (b *Builder) Build(sel Selections) *domain.Trip {
	if sel.CityID == "" || sel.Duration <= 0 || len(sel.DayThemes) == 0 {
		return nil
	}

	var days []domain.DaySchedule
	for dayNum := 1; dayNum <= sel.Duration; dayNum++ {
		theme, ok := sel.DayThemes[dayNum]
		if !ok {
			continue
		}

		items := []domain.ScheduleItem{}
		themePlaces := b.engine.PlacesForTheme(sel.CityID, theme, 2)

		if len(themePlaces) > 0 {
			items = append(items, b.item(themePlaces[0], morningSlot))
		}
		if lunch, ok := sel.Meals[MealKey(dayNum, MealLunch)]; ok && lunch != Skipped {
			items = append(items, b.item(lunch, lunchSlot))
		}
		if len(themePlaces) > 1 {
			items = append(items, b.item(themePlaces[1], afternoon))
		}
		if dinner, ok := sel.Meals[MealKey(dayNum, MealDinner)]; ok && dinner != Skipped {
			items = append(items, b.item(dinner, dinnerSlot))
		}

		days = append(days, domain.DaySchedule{
			ID:        b.ids.NewID("day"),
			DayNumber: dayNum,
			Items:     items,
		})
	}
	if len(days) == 0 {
		return nil
	}

	return &domain.Trip{
		ID:     b.ids.NewID("trip"),
		Title:  b.title(sel),
		CityID: sel.CityID,
		Days:   days,
	}
}

func (b *Builder) item(placeID, startTime string) domain.ScheduleItem {
	return domain.ScheduleItem{
		ID:        b.ids.NewID("item"),
		PlaceID:   placeID,
		StartTime: startTime,
	}
}

// title derives "Tokyo 3-Day Trip" style titles, falling back to the raw
// city id when the catalog doesn't know the city.
func (b *Builder) title(sel Selections) string {
	name := sel.CityID
	for _, c := range b.engine.catalog.Cities() {
		if c.ID == sel.CityID {
			name = c.NameEn
			break
		}
	}
	return fmt.Sprintf("%s %d-Day Trip", name, sel.Duration)
}

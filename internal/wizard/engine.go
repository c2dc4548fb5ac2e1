package wizard

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/hyunwoo-ji/tabiori/internal/domain"
)

// themeCategories maps a day theme to the place categories it draws from.
var themeCategories = map[ThemeID][]domain.PlaceCategory{
	ThemeLandmark:   {domain.CategoryAttraction},
	ThemeLocalFood:  {domain.CategoryRestaurant, domain.CategoryCafe},
	ThemeShopping:   {domain.CategoryShopping},
	ThemeTemplePark: {domain.CategoryAttraction, domain.CategoryOther},
}

// mealOptionCount is how many restaurant suggestions a meal step offers.
const mealOptionCount = 4

// Catalog is the read-only place source the engine consumes.
// *catalog.Catalog satisfies it.
type Catalog interface {
	Cities() []domain.City
	PlacesByCity(cityID string) []domain.Place
}

// Engine computes wizard steps. It holds no per-conversation state.
type Engine struct {
	catalog Catalog
	rng     *rand.Rand
}

// NewEngine constructs an Engine over the given catalog. rng shuffles meal
// suggestions; pass nil for a time-seeded source, or a seeded one in tests.
func NewEngine(cat Catalog, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{catalog: cat, rng: rng}
}

// NextStep returns the next question for the given selections, recomputed
// from scratch on every call. Once everything is answered it returns the
// terminal summary step; it never returns nil.
func (e *Engine) NextStep(sel Selections) *StepInfo {
	if sel.CityID == "" {
		opts := make([]Option, 0, 4)
		for _, c := range e.catalog.Cities() {
			opts = append(opts, Option{ID: c.ID, Label: c.NameEn, Description: c.Description})
		}
		return &StepInfo{
			Type:     StepCity,
			Question: "Where do you want to go?",
			Options:  opts,
		}
	}

	if sel.Duration == 0 {
		return &StepInfo{
			Type:     StepDuration,
			Question: "How many days?",
			Options: []Option{
				{ID: "2", Label: "2 days, 1 night"},
				{ID: "3", Label: "3 days, 2 nights"},
				{ID: "4", Label: "4 days, 3 nights"},
			},
		}
	}

	if len(sel.Styles) == 0 {
		opts := make([]Option, len(TravelStyles))
		for i, s := range TravelStyles {
			opts[i] = Option{ID: s.ID, Label: s.Label}
		}
		return &StepInfo{
			Type:        StepStyle,
			Question:    "What kind of trip do you like? (pick any)",
			Options:     opts,
			MultiSelect: true,
		}
	}

	for day := 1; day <= sel.Duration; day++ {
		if _, ok := sel.DayThemes[day]; !ok {
			opts := make([]Option, len(DayThemes))
			for i, th := range DayThemes {
				opts[i] = Option{ID: string(th.ID), Label: th.Label, Description: th.Description}
			}
			return &StepInfo{
				Type:      StepDayTheme,
				Question:  fmt.Sprintf("What's the theme for day %d?", day),
				Options:   opts,
				DayNumber: day,
			}
		}
		if _, ok := sel.Meals[MealKey(day, MealLunch)]; !ok {
			return &StepInfo{
				Type:      StepMeal,
				Question:  fmt.Sprintf("Where for lunch on day %d?", day),
				Options:   e.mealOptions(sel.CityID),
				DayNumber: day,
				MealType:  MealLunch,
				Skippable: true,
			}
		}
		if _, ok := sel.Meals[MealKey(day, MealDinner)]; !ok {
			return &StepInfo{
				Type:      StepMeal,
				Question:  fmt.Sprintf("Where for dinner on day %d?", day),
				Options:   e.mealOptions(sel.CityID),
				DayNumber: day,
				MealType:  MealDinner,
				Skippable: true,
			}
		}
	}

	return &StepInfo{
		Type:     StepSummary,
		Question: "Your itinerary is ready — take a look!",
	}
}

// Complete reports whether every required selection is answered, i.e.
// whether NextStep would return the summary step.
func (e *Engine) Complete(sel Selections) bool {
	return e.NextStep(sel).Type == StepSummary
}

// PlacesForTheme returns up to count place ids matching the theme's
// categories in the city, best-rated first.
func (e *Engine) PlacesForTheme(cityID string, theme ThemeID, count int) []string {
	cats, ok := themeCategories[theme]
	if !ok {
		cats = []domain.PlaceCategory{domain.CategoryAttraction}
	}

	var matched []domain.Place
	for _, p := range e.catalog.PlacesByCity(cityID) {
		for _, c := range cats {
			if p.Category == c {
				matched = append(matched, p)
				break
			}
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rating > matched[j].Rating
	})

	if count > len(matched) {
		count = len(matched)
	}
	out := make([]string, count)
	for i := 0; i < count; i++ {
		out[i] = matched[i].ID
	}
	return out
}

// mealOptions picks up to mealOptionCount eateries in the city, shuffled so
// repeat questions don't always suggest the same four.
func (e *Engine) mealOptions(cityID string) []Option {
	var eateries []domain.Place
	for _, p := range e.catalog.PlacesByCity(cityID) {
		if p.Category == domain.CategoryRestaurant || p.Category == domain.CategoryCafe {
			eateries = append(eateries, p)
		}
	}
	e.rng.Shuffle(len(eateries), func(i, j int) {
		eateries[i], eateries[j] = eateries[j], eateries[i]
	})

	n := mealOptionCount
	if n > len(eateries) {
		n = len(eateries)
	}
	opts := make([]Option, n)
	for i := 0; i < n; i++ {
		p := eateries[i]
		opts[i] = Option{ID: p.ID, Label: p.NameEn, Description: p.Description, Rating: p.Rating}
	}
	return opts
}

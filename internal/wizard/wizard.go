// Package wizard drives the chat-style itinerary assembly flow.
//
// The engine is a pure step-sequencer: given the selections accumulated so
// far it recomputes, from scratch, the next question to ask. Because nothing
// is stored between calls the flow is trivially resumable and safe to
// re-ask. The fixed order is city → duration → styles → per day (theme,
// lunch, dinner) → summary.
//
// A companion Builder turns a completed Selections into an initial trip;
// the caller materializes that trip into the schedule store.
package wizard

import "fmt"

// StepType identifies the kind of question a step asks.
type StepType string

// Wizard steps in flow order. StepSummary is the terminal step: once it is
// returned every required selection is filled or explicitly skipped.
const (
	StepCity     StepType = "city"
	StepDuration StepType = "duration"
	StepStyle    StepType = "style"
	StepDayTheme StepType = "dayTheme"
	StepMeal     StepType = "meal"
	StepSummary  StepType = "summary"
)

// MealType distinguishes the two meal questions asked per day.
type MealType string

// Meal slots.
const (
	MealLunch  MealType = "lunch"
	MealDinner MealType = "dinner"
)

// Skipped marks a meal the user explicitly declined. A skipped meal counts
// as answered — the engine moves on — but the builder places nothing for it.
const Skipped = "__skipped__"

// ThemeID identifies a per-day theme.
type ThemeID string

// Day themes.
const (
	ThemeLandmark   ThemeID = "landmark"
	ThemeLocalFood  ThemeID = "local-food"
	ThemeShopping   ThemeID = "shopping"
	ThemeTemplePark ThemeID = "temple-park"
)

// Theme is a selectable day theme.
type Theme struct {
	ID          ThemeID `json:"id"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
}

// DayThemes lists the selectable themes in presentation order.
var DayThemes = []Theme{
	{ID: ThemeLandmark, Label: "Famous landmarks", Description: "The must-see spots"},
	{ID: ThemeLocalFood, Label: "Local food tour", Description: "Where the locals actually eat"},
	{ID: ThemeShopping, Label: "Shopping spots", Description: "Arcades and department stores"},
	{ID: ThemeTemplePark, Label: "Temples and parks", Description: "Nature and tradition"},
}

// Style is a selectable travel style (multi-select).
type Style struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// TravelStyles lists the selectable styles in presentation order.
var TravelStyles = []Style{
	{ID: "foodie", Label: "Food first"},
	{ID: "sightseeing", Label: "Sightseeing"},
	{ID: "shopping", Label: "Shopping"},
	{ID: "cafe", Label: "Cafes and vibes"},
	{ID: "nature", Label: "Nature and calm"},
}

// Selections accumulates the user's answers. Zero values mean "not answered
// yet"; the engine inspects them in flow order.
type Selections struct {
	CityID string `json:"cityId,omitempty"`
	// Duration is the trip length in days (2 = one night, two days).
	Duration int      `json:"duration,omitempty"`
	Styles   []string `json:"styles,omitempty"`
	// DayThemes maps day number (1-based) to the chosen theme.
	DayThemes map[int]ThemeID `json:"dayThemes,omitempty"`
	// Meals maps "dayNumber-mealType" (e.g. "1-lunch") to a place id, or
	// to Skipped when the user declined the question.
	Meals map[string]string `json:"meals,omitempty"`
}

// MealKey builds the Meals map key for a day and slot.
func MealKey(day int, meal MealType) string {
	return fmt.Sprintf("%d-%s", day, meal)
}

// Option is one selectable answer presented to the user.
type Option struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Description string  `json:"description,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}

// StepInfo describes the next question: what to ask and what can be chosen.
type StepInfo struct {
	Type        StepType `json:"type"`
	Question    string   `json:"question"`
	Options     []Option `json:"options"`
	MultiSelect bool     `json:"multiSelect,omitempty"`
	// DayNumber is set for dayTheme and meal steps.
	DayNumber int `json:"dayNumber,omitempty"`
	// MealType is set for meal steps.
	MealType MealType `json:"mealType,omitempty"`
	// Skippable steps accept Skipped instead of an option id.
	Skippable bool `json:"skippable,omitempty"`
}

// Package catalog provides the read-only place catalog: curated cities and
// places with category, coordinates, and rating. The scheduling core never
// touches it — items reference places by id only, and a dangling reference
// is legal — but the wizard, the travel endpoints, and rendering resolve
// through it.
//
// The data ships embedded in the binary; there is no I/O after init.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/hyunwoo-ji/tabiori/internal/domain"
)

//go:embed data/catalog.json
var rawCatalog []byte

type catalogDoc struct {
	Cities []domain.City  `json:"cities"`
	Places []domain.Place `json:"places"`
}

// Catalog is an indexed, immutable view over the curated data.
// Safe for concurrent use: nothing mutates after construction.
type Catalog struct {
	cities []domain.City
	places []domain.Place
	byID   map[string]domain.Place
	byCity map[string][]domain.Place
}

// Load parses the embedded catalog data.
func Load() (*Catalog, error) {
	var doc catalogDoc
	if err := json.Unmarshal(rawCatalog, &doc); err != nil {
		return nil, fmt.Errorf("catalog.Load: parse embedded data: %w", err)
	}
	return New(doc.Cities, doc.Places), nil
}

// New builds a Catalog from explicit data. Tests use this to run against a
// tiny fixture instead of the full embedded set.
func New(cities []domain.City, places []domain.Place) *Catalog {
	c := &Catalog{
		cities: cities,
		places: places,
		byID:   make(map[string]domain.Place, len(places)),
		byCity: make(map[string][]domain.Place),
	}
	for _, p := range places {
		c.byID[p.ID] = p
		c.byCity[p.CityID] = append(c.byCity[p.CityID], p)
	}
	return c
}

// Lookup resolves a place id. ok is false for unknown ids — never an error,
// because dangling references are an expected state.
func (c *Catalog) Lookup(placeID string) (domain.Place, bool) {
	p, ok := c.byID[placeID]
	return p, ok
}

// Cities returns all curated cities in catalog order.
func (c *Catalog) Cities() []domain.City {
	out := make([]domain.City, len(c.cities))
	copy(out, c.cities)
	return out
}

// City returns one city by id.
func (c *Catalog) City(cityID string) (domain.City, bool) {
	for _, city := range c.cities {
		if city.ID == cityID {
			return city, true
		}
	}
	return domain.City{}, false
}

// PlacesByCity returns the curated places for a city in catalog order.
// Unknown cities yield an empty, non-nil slice.
func (c *Catalog) PlacesByCity(cityID string) []domain.Place {
	src := c.byCity[cityID]
	out := make([]domain.Place, len(src))
	copy(out, src)
	return out
}

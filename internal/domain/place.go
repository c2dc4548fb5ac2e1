package domain

// PlaceCategory classifies a catalog place.
type PlaceCategory string

// Place categories, mirroring the curated catalog data.
const (
	CategoryRestaurant    PlaceCategory = "restaurant"
	CategoryAttraction    PlaceCategory = "attraction"
	CategoryShopping      PlaceCategory = "shopping"
	CategoryAccommodation PlaceCategory = "accommodation"
	CategoryCafe          PlaceCategory = "cafe"
	CategoryTransport     PlaceCategory = "transport"
	CategoryOther         PlaceCategory = "other"
)

// Coordinates is a WGS84 lat/lng pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a read-only catalog entry (attraction, restaurant, ...).
// Immutable once loaded; the scheduling core references places by id only.
type Place struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	NameEn      string        `json:"nameEn,omitempty"`
	Category    PlaceCategory `json:"category"`
	CityID      string        `json:"cityId"`
	Location    Coordinates   `json:"location"`
	Rating      float64       `json:"rating,omitempty"`
	Description string        `json:"description,omitempty"`
	Address     string        `json:"address,omitempty"`
}

// City is a destination the catalog curates places for.
type City struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	NameEn      string      `json:"nameEn"`
	Description string      `json:"description,omitempty"`
	Center      Coordinates `json:"center"`
	Zoom        int         `json:"zoom,omitempty"`
}

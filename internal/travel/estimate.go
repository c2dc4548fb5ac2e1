// Package travel estimates inter-stop travel time from coordinates alone.
// The estimator is a heuristic tuned for dense urban transit, not a routing
// call: great-circle distance is classified into walk/metro/train tiers, each
// with a route-inflation multiplier (streets and rail lines are not straight
// lines), an average speed, and a fixed wait/transfer overhead.
package travel

import "math"

// Mode is the transport mode an estimate recommends.
type Mode string

// Transport modes.
const (
	ModeWalk  Mode = "walk"
	ModeMetro Mode = "metro"
	ModeTrain Mode = "train"
	ModeBus   Mode = "bus"
)

// Estimate is a heuristic travel prediction between two coordinates.
// DistanceKm is the effective (route-inflated) distance, not the raw
// great-circle distance.
type Estimate struct {
	Minutes    int     `json:"minutes"`
	Mode       Mode    `json:"mode"`
	DistanceKm float64 `json:"distanceKm"`
}

const earthRadiusKm = 6371

// Haversine returns the great-circle distance in km between two points.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// EstimateLeg predicts mode, minutes, and effective distance between two
// coordinates. Deterministic and pure.
//
// Tiers by great-circle distance d:
//
//	d ≤ 0.8 km   walk   ×1.3 detour,  5 km/h, no overhead, minimum 1 min
//	d ≤ 5 km     metro  ×1.4 detour, 30 km/h, +7 min wait/boarding
//	d ≤ 20 km    train  ×1.3 detour, 40 km/h, +10 min transfer/wait
//	d > 20 km    train  ×1.2 detour, 80 km/h, +15 min (express/long-distance)
func EstimateLeg(lat1, lng1, lat2, lng2 float64) Estimate {
	d := Haversine(lat1, lng1, lat2, lng2)

	if d <= 0.8 {
		walkDist := d * 1.3
		minutes := int(math.Round(walkDist / 5 * 60))
		if minutes < 1 {
			minutes = 1
		}
		return Estimate{Minutes: minutes, Mode: ModeWalk, DistanceKm: walkDist}
	}

	if d <= 5 {
		transitDist := d * 1.4
		minutes := int(math.Round(transitDist/30*60 + 7))
		return Estimate{Minutes: minutes, Mode: ModeMetro, DistanceKm: transitDist}
	}

	if d <= 20 {
		transitDist := d * 1.3
		minutes := int(math.Round(transitDist/40*60 + 10))
		return Estimate{Minutes: minutes, Mode: ModeTrain, DistanceKm: transitDist}
	}

	transitDist := d * 1.2
	minutes := int(math.Round(transitDist/80*60 + 15))
	return Estimate{Minutes: minutes, Mode: ModeTrain, DistanceKm: transitDist}
}

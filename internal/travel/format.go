package travel

import "fmt"

// FormatMinutes renders a travel duration for display: "1 min", "45 min",
// "2 h", "1 h 30 min".
func FormatMinutes(minutes int) string {
	if minutes < 1 {
		return "1 min"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%d h", h)
	}
	return fmt.Sprintf("%d h %d min", h, m)
}

// FormatDistance renders a distance for display: "350 m" below one km,
// "1.2 km" above.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%.0f m", km*1000)
	}
	return fmt.Sprintf("%.1f km", km)
}

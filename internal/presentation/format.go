package presentation

import (
	"fmt"

	"mission-route-service/internal/domain"
)

// FormatDuration renders minutes as "45 min", "1h" or "1h 30min".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}

	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dmin", h, m)
}

// FormatCost renders euros with two decimals, or "free" for zero.
func FormatCost(euros float64) string {
	if euros == 0 {
		return "free"
	}
	return fmt.Sprintf("%.2f €", euros)
}

// FormatLegCost prices a leg by mode: driving legs always show an amount,
// even at zero distance, and every other mode is free.
func FormatLegCost(mode domain.TransportMode, distanceKm float64) string {
	if !mode.Motorized() {
		return "free"
	}
	return formatAmount(mode.LegCost(distanceKm))
}

func FormatDistance(km float64) string {
	return fmt.Sprintf("%.1f km", km)
}

func formatAmount(euros float64) string {
	return fmt.Sprintf("%.2f €", euros)
}

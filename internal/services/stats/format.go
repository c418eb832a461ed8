package stats

import (
	"fmt"
	"math"
)

// ticksPerSecond is the Minecraft game tick rate
const ticksPerSecond = 20

// FormatPlayTime renders a play-time tick count as a short duration
// string: "3d 4h", "4h 52m" or "12m" depending on magnitude. Negative
// input is clamped to zero.
func FormatPlayTime(ticks float64) string {
	totalSeconds := math.Max(0, ticks) / ticksPerSecond
	hours := int(totalSeconds / 3600)
	days := hours / 24

	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours%24)
	}
	if hours > 0 {
		minutes := int((totalSeconds - float64(hours)*3600) / 60)
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", int(totalSeconds/60))
}

// FormatDistance renders a centimeter distance as meters or kilometers:
// "42 m", "158 m" or "1.5 km". Negative input is clamped to zero.
func FormatDistance(cm float64) string {
	meters := math.Max(0, cm) / 100
	if meters >= 1000 {
		return fmt.Sprintf("%.1f km", meters/1000)
	}
	if meters >= 100 {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.0f m", meters)
}

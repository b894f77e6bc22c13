// Badge color bands used by the dashboard.

package stats

// Bootstrap badge classes.
const (
	BadgeSuccess = "success"
	BadgeWarning = "warning"
	BadgeDanger  = "danger"
)

// SafetyBadgeColor maps a driver score to a badge class.
// Bands: >= 8.0 success, >= 6.0 warning, below that danger.
func SafetyBadgeColor(score float64) string {
	switch {
	case score >= 8.0:
		return BadgeSuccess
	case score >= 6.0:
		return BadgeWarning
	default:
		return BadgeDanger
	}
}

// FuelLevelColor maps a fuel level percentage to a badge class.
// Bands: >= 70 success, >= 30 warning, below that danger.
func FuelLevelColor(level float64) string {
	switch {
	case level >= 70:
		return BadgeSuccess
	case level >= 30:
		return BadgeWarning
	default:
		return BadgeDanger
	}
}

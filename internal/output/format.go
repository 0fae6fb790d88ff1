package output

import "fmt"

// FormatDuration renders a nanosecond duration as a human-readable string
// for logs and console display. The persisted ledger does not use this; it
// stores plain seconds with two decimals.
func FormatDuration(ns int64) string {
	switch {
	case ns < 1_000_000: // less than 1 millisecond
		return fmt.Sprintf("%d ns", ns)
	case ns < 1_000_000_000: // less than 1 second
		return fmt.Sprintf("%.2f ms", float64(ns)/1_000_000)
	case ns < 60_000_000_000: // less than 1 minute
		return fmt.Sprintf("%.2f s", float64(ns)/1_000_000_000)
	default:
		return fmt.Sprintf("%.2f min", float64(ns)/60_000_000_000)
	}
}

package status

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a raw counter violates a precondition,
// e.g. negative uptime or free memory above total.
var ErrInvalidArgument = errors.New("invalid argument")

// byteUnits are the unit letters for 1024-based sizes. The labels intentionally
// stay "KB".."EB" (no "i") to keep the output format stable.
const byteUnits = "KMGTPE"

// FormatUptime converts a millisecond duration to a coarse human string using
// the two largest non-zero units, e.g. "1 days, 1 hours" or "5 minutes, 12 seconds".
func FormatUptime(uptimeMillis int64) (string, error) {
	if uptimeMillis < 0 {
		return "", fmt.Errorf("%w: negative uptime %dms", ErrInvalidArgument, uptimeMillis)
	}

	seconds := uptimeMillis / 1000
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return fmt.Sprintf("%d days, %d hours", days, hours%24), nil
	case hours > 0:
		return fmt.Sprintf("%d hours, %d minutes", hours, minutes%60), nil
	case minutes > 0:
		return fmt.Sprintf("%d minutes, %d seconds", minutes, seconds%60), nil
	default:
		return fmt.Sprintf("%d seconds", seconds), nil
	}
}

// FormatBytes renders a byte count with one decimal and a 1024-based unit,
// e.g. "512 B", "1.5 KB", "1.0 GB". The exponent is found by repeated integer
// division so exact powers of 1024 never fall into the wrong bucket. A uint64
// tops out in the EB range, so the unit table cannot be exceeded.
func FormatBytes(bytes uint64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(1024), 0
	for n := bytes / 1024; n >= 1024; n /= 1024 {
		div *= 1024
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), byteUnits[exp])
}

//go:build unit || e2e

package builder

import "time"

// RefTime is the fixed "now" used by builders and mock clocks.
var RefTime = time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC)

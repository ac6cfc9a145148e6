package booking

import "time"

// IsExpired reports whether a HOLD or PENDING booking has run past its
// deadline. A missing deadline counts as expired.
func IsExpired(status Status, expiresAt *time.Time, now time.Time) bool {
	if !status.Expires() {
		return false
	}
	return expiresAt == nil || !now.Before(*expiresAt)
}

// IsLive reports whether a booking in this state still occupies inventory at
// now. Read paths use it to treat stale holds as vacant before they are
// flipped to EXPIRED in storage.
func IsLive(status Status, expiresAt *time.Time, now time.Time) bool {
	if !status.BlocksInventory() {
		return false
	}
	return !IsExpired(status, expiresAt, now)
}

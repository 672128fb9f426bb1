package domain

import "time"

// BlacklistedToken records a token revoked before its natural expiry.
// Entries are never evicted; membership is an existence check, so
// duplicate rows for the same token are harmless.
type BlacklistedToken struct {
	ID            int64
	Token         string
	BlacklistedOn time.Time
}

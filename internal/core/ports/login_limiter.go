package ports

import "context"

// LoginLimiter throttles repeated failed login attempts per account.
// Implementations must fail open: a limiter backend outage never blocks login.
type LoginLimiter interface {
	// Allow reports whether another attempt for the account is permitted.
	Allow(ctx context.Context, email string) bool
	// RecordFailure counts one failed attempt against the account.
	RecordFailure(ctx context.Context, email string)
	// Reset clears the account's failure counter after a successful login.
	Reset(ctx context.Context, email string)
}

package ports

import "context"

// LoginLimiter throttles credential-guessing. Allow is consulted before the
// directory lookup; RecordFailure after a credential mismatch; Reset after a
// successful login.
type LoginLimiter interface {
	Allow(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

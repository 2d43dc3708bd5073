package service

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/walletbase/account-api/internal/api/metrics"
	"github.com/walletbase/account-api/internal/core/domain"
)

// Hasher wraps bcrypt with a fixed work factor. Verification is
// constant-time; output is salted, so hashing the same plaintext twice yields
// different digests.
type Hasher struct {
	cost int
}

// NewHasher clamps the cost into bcrypt's supported range and falls back to
// cost 10 for a zero value.
func NewHasher(cost int) *Hasher {
	if cost == 0 {
		cost = 10
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt digest of the plaintext. Failures here are
// system-level (entropy exhaustion, over-long input) and surface as
// domain.ErrHashing.
func (h *Hasher) Hash(plaintext string) (string, error) {
	defer observe("hash", time.Now())
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", domain.ErrHashing
	}
	return string(digest), nil
}

// Verify reports whether the plaintext matches the digest. A mismatch is a
// plain false; only a malformed digest is an error.
func (h *Hasher) Verify(plaintext, digest string) (bool, error) {
	defer observe("verify", time.Now())
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, domain.ErrHashing
	}
}

// observe records hash/verify latency; with an adaptive work factor this is
// the dominant cost of every credential operation.
func observe(op string, start time.Time) {
	metrics.HashingDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

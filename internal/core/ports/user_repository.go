package ports

import (
	"context"

	"github.com/walletbase/account-api/internal/core/domain"
)

// UserRepository is the user directory: the single source of truth for
// mutable account state. Email uniqueness is enforced here at creation time;
// callers rely on ErrEmailExists being authoritative under concurrent
// registrations.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Create assigns the id and timestamps. Returns domain.ErrEmailExists
	// when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update applies the non-nil fields and refreshes updated_at. Returns
	// domain.ErrUserNotFound for an unknown id.
	Update(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	FindAll(ctx context.Context, opts domain.PaginationOptions) (*domain.PaginatedUsers, error)
}

package ports

import (
	"context"

	"github.com/walletbase/account-api/internal/core/domain"
)

// UserInput carries the fields accepted when an administrator creates a user
// directly (as opposed to self-registration).
type UserInput struct {
	Name     string
	Email    string
	Password string
	Age      int
	Role     domain.Role
	IsActive *bool
}

// UserUpdateInput is the admin-facing partial update; a supplied password is
// re-hashed before it reaches the directory.
type UserUpdateInput struct {
	Name     *string
	Email    *string
	Password *string
	Age      *int
	Role     *domain.Role
	IsActive *bool
}

// UserService covers directory CRUD, profile access and per-user wallet
// bookkeeping.
type UserService interface {
	Create(ctx context.Context, input UserInput) (*domain.User, error)
	FindAll(ctx context.Context, opts domain.PaginationOptions) (*domain.PaginatedUsers, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, input UserUpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	AddWallet(ctx context.Context, userID int64, address, network string) (*domain.User, error)
	UpdateWallet(ctx context.Context, userID int64, index int, address, network string) (*domain.User, error)
	RemoveWallet(ctx context.Context, userID int64, index int) (*domain.User, error)
}

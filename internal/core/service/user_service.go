package service

import (
	"context"

	"github.com/walletbase/account-api/internal/core/domain"
	"github.com/walletbase/account-api/internal/core/ports"
)

// UserService implements directory CRUD and per-user wallet bookkeeping on
// top of the repository.
type UserService struct {
	repo   ports.UserRepository
	hasher *Hasher
}

func NewUserService(repo ports.UserRepository, hasher *Hasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

// Create adds a user directly (admin flow). Unlike self-registration the
// caller may pick role and active flag; omitted values default to role=user,
// active=true.
func (s *UserService) Create(ctx context.Context, input ports.UserInput) (*domain.User, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.DefaultRole
	}
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Age:          input.Age,
		Role:         role,
		IsActive:     active,
	})
	if err != nil {
		return nil, err
	}
	return created.Public(), nil
}

func (s *UserService) FindAll(ctx context.Context, opts domain.PaginationOptions) (*domain.PaginatedUsers, error) {
	page, err := s.repo.FindAll(ctx, opts.Normalize())
	if err != nil {
		return nil, err
	}
	for i, u := range page.Items {
		page.Items[i] = u.Public()
	}
	return page, nil
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// Update applies a partial mutation. A supplied password is re-hashed before
// it reaches the directory; plaintext never persists past this call.
func (s *UserService) Update(ctx context.Context, id int64, input ports.UserUpdateInput) (*domain.User, error) {
	update := domain.UserUpdate{
		Name:     input.Name,
		Email:    input.Email,
		Age:      input.Age,
		Role:     input.Role,
		IsActive: input.IsActive,
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return updated.Public(), nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// AddWallet validates and appends a wallet address to the user. Duplicate
// address+network pairs are rejected as invalid input.
func (s *UserService) AddWallet(ctx context.Context, userID int64, address, network string) (*domain.User, error) {
	wallet, err := domain.NewWalletAddress(address, network)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, existing := range user.Wallets {
		if existing.Equals(wallet) {
			return nil, domain.ErrInvalidWallet
		}
	}

	wallets := append(append([]domain.WalletAddress{}, user.Wallets...), wallet)
	return s.saveWallets(ctx, userID, wallets)
}

// UpdateWallet replaces the wallet at index with a re-validated address.
func (s *UserService) UpdateWallet(ctx context.Context, userID int64, index int, address, network string) (*domain.User, error) {
	wallet, err := domain.NewWalletAddress(address, network)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(user.Wallets) {
		return nil, domain.ErrInvalidWallet
	}

	wallets := append([]domain.WalletAddress{}, user.Wallets...)
	wallets[index] = wallet
	return s.saveWallets(ctx, userID, wallets)
}

// RemoveWallet drops the wallet at index.
func (s *UserService) RemoveWallet(ctx context.Context, userID int64, index int) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(user.Wallets) {
		return nil, domain.ErrInvalidWallet
	}

	wallets := append([]domain.WalletAddress{}, user.Wallets...)
	wallets = append(wallets[:index], wallets[index+1:]...)
	return s.saveWallets(ctx, userID, wallets)
}

func (s *UserService) saveWallets(ctx context.Context, userID int64, wallets []domain.WalletAddress) (*domain.User, error) {
	updated, err := s.repo.Update(ctx, userID, domain.UserUpdate{Wallets: &wallets})
	if err != nil {
		return nil, err
	}
	return updated.Public(), nil
}

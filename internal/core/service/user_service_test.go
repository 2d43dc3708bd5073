package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/walletbase/account-api/internal/core/domain"
	"github.com/walletbase/account-api/internal/core/ports"
)

func newTestUserService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, NewHasher(bcrypt.MinCost))
}

func TestUserService_Create_Defaults(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	user, err := svc.Create(context.Background(), ports.UserInput{
		Name:     "Kim",
		Email:    "kim@test.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("expected active by default")
	}
	if user.PasswordHash != "" {
		t.Fatalf("returned user must not carry the hash")
	}

	stored, _ := repo.FindByEmail(context.Background(), "kim@test.com")
	if stored.PasswordHash == "" || stored.PasswordHash == "secret123" {
		t.Fatalf("stored password must be hashed, got %q", stored.PasswordHash)
	}
}

func TestUserService_Create_ExplicitRoleAndFlag(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	inactive := false
	user, err := svc.Create(context.Background(), ports.UserInput{
		Name:     "Root",
		Email:    "root@test.com",
		Password: "secret123",
		Role:     domain.RoleAdmin,
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.Role != domain.RoleAdmin || user.IsActive {
		t.Fatalf("explicit role/flag not honored: %+v", user)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	user, err := svc.Create(context.Background(), ports.UserInput{
		Name: "Kim", Email: "kim@test.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	before, _ := repo.FindByID(context.Background(), user.ID)

	newPass := "changed-pass"
	if _, err := svc.Update(context.Background(), user.ID, ports.UserUpdateInput{Password: &newPass}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	after, _ := repo.FindByID(context.Background(), user.ID)
	if after.PasswordHash == before.PasswordHash {
		t.Fatalf("expected password hash to change")
	}
	if after.PasswordHash == newPass {
		t.Fatalf("plaintext must never be stored")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte(newPass)); err != nil {
		t.Fatalf("new hash does not match new password: %v", err)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())

	name := "Nobody"
	if _, err := svc.Update(context.Background(), 999, ports.UserUpdateInput{Name: &name}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_WalletLifecycle(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	user, err := svc.Create(context.Background(), ports.UserInput{
		Name: "Kim", Email: "kim@test.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	const ethAddr = "0x52908400098527886E0F7030069857D2E4169EE7"
	updated, err := svc.AddWallet(context.Background(), user.ID, ethAddr, "ethereum")
	if err != nil {
		t.Fatalf("AddWallet: %v", err)
	}
	if len(updated.Wallets) != 1 || updated.Wallets[0].Address != ethAddr {
		t.Fatalf("unexpected wallets: %+v", updated.Wallets)
	}

	// Duplicates are rejected.
	if _, err := svc.AddWallet(context.Background(), user.ID, ethAddr, "ethereum"); !errors.Is(err, domain.ErrInvalidWallet) {
		t.Fatalf("expected ErrInvalidWallet for duplicate, got %v", err)
	}

	const btcAddr = "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2"
	updated, err = svc.UpdateWallet(context.Background(), user.ID, 0, btcAddr, "bitcoin")
	if err != nil {
		t.Fatalf("UpdateWallet: %v", err)
	}
	if updated.Wallets[0].Network != domain.NetworkBitcoin {
		t.Fatalf("expected bitcoin wallet, got %+v", updated.Wallets[0])
	}

	if _, err := svc.UpdateWallet(context.Background(), user.ID, 5, btcAddr, "bitcoin"); !errors.Is(err, domain.ErrInvalidWallet) {
		t.Fatalf("expected ErrInvalidWallet for out-of-range index, got %v", err)
	}

	updated, err = svc.RemoveWallet(context.Background(), user.ID, 0)
	if err != nil {
		t.Fatalf("RemoveWallet: %v", err)
	}
	if len(updated.Wallets) != 0 {
		t.Fatalf("expected empty wallets, got %+v", updated.Wallets)
	}
}

func TestUserService_AddWallet_InvalidAddress(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	user, err := svc.Create(context.Background(), ports.UserInput{
		Name: "Kim", Email: "kim@test.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.AddWallet(context.Background(), user.ID, "not-an-address", "ethereum"); !errors.Is(err, domain.ErrInvalidWallet) {
		t.Fatalf("expected ErrInvalidWallet, got %v", err)
	}
	if _, err := svc.AddWallet(context.Background(), user.ID, "0x52908400098527886E0F7030069857D2E4169EE7", "dogecoin"); !errors.Is(err, domain.ErrInvalidWallet) {
		t.Fatalf("expected ErrInvalidWallet for unknown network, got %v", err)
	}
}

func TestUserService_FindAll_StripsHashes(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	for _, email := range []string{"a@test.com", "b@test.com"} {
		if _, err := svc.Create(context.Background(), ports.UserInput{Name: "u", Email: email, Password: "secret123"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	page, err := svc.FindAll(context.Background(), domain.PaginationOptions{})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if page.Total != 2 || len(page.Items) != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
	for _, u := range page.Items {
		if u.PasswordHash != "" {
			t.Fatalf("listing must not leak hashes")
		}
	}
}

package domain

import "time"

// User models an account in the directory. PasswordHash is never serialized;
// handlers additionally return the Public projection so the hash cannot leak
// through callers that bypass JSON marshalling.
type User struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Age          int             `json:"age,omitempty"`
	Role         Role            `json:"role"`
	IsActive     bool            `json:"isActive"`
	Wallets      []WalletAddress `json:"wallets,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Public returns a copy with the credential hash stripped.
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// EligibleForLogin reports whether the account may authenticate. Deactivated
// accounts keep their credentials but are blocked from every token-issuing
// flow.
func (u *User) EligibleForLogin() bool {
	return u.IsActive
}

// UserUpdate carries a partial mutation applied by the directory. Nil fields
// are left untouched.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Age          *int
	Role         *Role
	IsActive     *bool
	Wallets      *[]WalletAddress
}

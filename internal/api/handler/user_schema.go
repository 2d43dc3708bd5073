package handler

import (
	"github.com/walletbase/account-api/internal/core/domain"
	"github.com/walletbase/account-api/internal/core/ports"
)

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Age      int    `json:"age,omitempty" validate:"omitempty,gte=0"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
	IsActive *bool  `json:"isActive,omitempty"`
}

type updateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
	Age      *int    `json:"age,omitempty" validate:"omitempty,gte=0"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type walletRequest struct {
	Address string `json:"address" validate:"required"`
	Network string `json:"network,omitempty" validate:"omitempty,oneof=ethereum bitcoin bsc"`
}

func (r createUserRequest) toInput() ports.UserInput {
	return ports.UserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Age:      r.Age,
		Role:     domain.Role(r.Role),
		IsActive: r.IsActive,
	}
}

func (r updateUserRequest) toInput() ports.UserUpdateInput {
	input := ports.UserUpdateInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Age:      r.Age,
		IsActive: r.IsActive,
	}
	if r.Role != nil {
		role := domain.Role(*r.Role)
		input.Role = &role
	}
	return input
}

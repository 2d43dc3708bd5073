package handler

import "github.com/walletbase/account-api/internal/core/domain"

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Age      int    `json:"age,omitempty" validate:"omitempty,gte=0"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// userResponse is the cookie-flow body: tokens travel in cookies, only the
// public user is returned.
type userResponse struct {
	User *domain.User `json:"user"`
}

// tokenResponse is the body-token flow response for non-browser clients.
type tokenResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Package usecase defines the application-level interfaces and their
// input/output DTOs.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterInput is the payload for user registration. Validation tags are
// enforced at the delivery boundary before the usecase runs; every failing
// field is reported, not just the first.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email,endswith=.com"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"required,tendigits"`
	Address  string `json:"address" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// RegisterOutput carries the created user's public projection.
type RegisterOutput struct {
	User *entity.PublicUser `json:"user"`
}

// LoginInput is the payload for login. Presence is checked by the usecase
// itself because absence maps to a dedicated failure contract, not a
// validation error list.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput carries the logged-in user's public projection and the session token.
type LoginOutput struct {
	User  *entity.PublicUser `json:"user"`
	Token string             `json:"token"`
}

// ForgotPasswordInput is the payload for the direct password reset flow.
type ForgotPasswordInput struct {
	Email       string `json:"email"`
	Answer      string `json:"answer"`
	NewPassword string `json:"newPassword"`
}

// UpdateProfileInput carries the authenticated user's id plus the fields to
// change. Empty fields keep their stored values.
type UpdateProfileInput struct {
	UserID   string `json:"-"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// UpdateProfileOutput carries the updated user's public projection.
type UpdateProfileOutput struct {
	User *entity.PublicUser `json:"updatedUser"`
}

// AuthUsecase orchestrates registration, login, password recovery and profile
// updates.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error)
}

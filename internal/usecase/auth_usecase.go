package usecase

import (
	"context"

	"vendorhub/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required to sign in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// ChangePasswordInput defines the data required to rotate a password.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// ChangeNumberInput defines the data required to change the phone number.
type ChangeNumberInput struct {
	Phone string `json:"phone" validate:"required"`
}

// AuthUsecase covers the account endpoints. Login stores the returned
// identity in the session; the other operations act on the signed-in
// account.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*entity.User, error)
	Register(ctx context.Context, input RegisterInput) error
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	ChangeNumber(ctx context.Context, input ChangeNumberInput) error
}

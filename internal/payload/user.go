package payload

import "time"

type RegisterRequest struct {
	Name     string     `json:"name"     validate:"required"`
	Email    string     `json:"email"    validate:"required,email"`
	Password string     `json:"password" validate:"required"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code"  validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

type WishlistAddRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type UserResponse struct {
	ID         string     `json:"_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	IsAdmin    bool       `json:"isAdmin"`
	IsVerified bool       `json:"isVerified"`
	Birthday   *time.Time `json:"birthday,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

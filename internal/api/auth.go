// File: internal/api/auth.go
package api

import (
	"time"

	"mockmate/internal/model"
)

type RegisterRequest struct {
	FirstName  string  `json:"first_name" validate:"required" example:"Ada"`
	LastName   string  `json:"last_name" validate:"required" example:"Lovelace"`
	Email      string  `json:"email" validate:"required,email" example:"ada@example.com"`
	Password   string  `json:"password" validate:"required,min=8" example:"s3cret-pass"`
	University *string `json:"university,omitempty" example:"NTU"`
	StudyField *string `json:"study_field,omitempty" example:"Computer Science"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ada@example.com"`
	Password string `json:"password" validate:"required" example:"s3cret-pass"`
}

type UpdateProfileRequest struct {
	FirstName  string  `json:"first_name" validate:"required" example:"Ada"`
	LastName   string  `json:"last_name" validate:"required" example:"King"`
	University *string `json:"university,omitempty" example:"NTU"`
	StudyField *string `json:"study_field,omitempty" example:"Computer Science"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type UserResponse struct {
	ID         int       `json:"id" example:"7"`
	FirstName  string    `json:"first_name" example:"Ada"`
	LastName   string    `json:"last_name" example:"Lovelace"`
	Email      string    `json:"email" example:"ada@example.com"`
	University *string   `json:"university,omitempty"`
	StudyField *string   `json:"study_field,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuthResponse 註冊與登入共用的回應，附上存取令牌
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ValidateResponse struct {
	Valid bool `json:"valid" example:"true"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		University: u.University,
		StudyField: u.StudyField,
		CreatedAt:  u.CreatedAt,
	}
}

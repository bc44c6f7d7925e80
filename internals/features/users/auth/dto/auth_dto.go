// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "practicals_backend/internals/features/users/auth/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type UserProfile struct {
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	SchoolID uuid.UUID `json:"school_id"`
}

func NewUserProfile(u *model.UserModel) UserProfile {
	return UserProfile{
		UserID:   u.UserID,
		FullName: u.UserFullName,
		Email:    u.UserEmail,
		Role:     u.UserRole,
		SchoolID: u.UserSchoolID,
	}
}

type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         UserProfile `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

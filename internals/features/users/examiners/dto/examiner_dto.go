// file: internals/features/users/examiners/dto/examiner_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	userModel "practicals_backend/internals/features/users/auth/model"
)

/* ==============================
   CRUD requests
============================== */

type CreateExaminerRequest struct {
	FullName string `json:"full_name" validate:"required,max=180"`
	Email    string `json:"email" validate:"required,email,max=190"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r *CreateExaminerRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type UpdateExaminerRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=180"`
	Email    *string `json:"email" validate:"omitempty,email,max=190"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
}

func (r *UpdateExaminerRequest) Normalize() {
	if r.FullName != nil {
		v := strings.TrimSpace(*r.FullName)
		r.FullName = &v
	}
	if r.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &v
	}
}

/* ==============================
   Responses
============================== */

type ExaminerItem struct {
	ExaminerID uuid.UUID `json:"examiner_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewExaminerItem(u userModel.UserModel) ExaminerItem {
	return ExaminerItem{
		ExaminerID: u.UserID,
		FullName:   u.UserFullName,
		Email:      u.UserEmail,
		IsActive:   u.UserIsActive,
		CreatedAt:  u.UserCreatedAt,
	}
}

type ImportResult struct {
	ImportLogID uuid.UUID `json:"import_log_id"`
	TotalRows   int       `json:"total_rows"`
	Created     int       `json:"created"`
	Failed      int       `json:"failed"`
	Errors      any       `json:"errors,omitempty"`
}

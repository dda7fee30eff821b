package dto

import (
	"time"

	"relationnel_backend/internals/features/questionnaire/users/model"
)

type UserDTO struct {
	UserID        string    `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	UserName      *string   `json:"user_name,omitempty"`
	UserCreatedAt time.Time `json:"user_created_at"`
	UserUpdatedAt time.Time `json:"user_updated_at"`
}

// Email capture after the questionnaire: find-or-create keyed on email.
type FindOrCreateUserRequest struct {
	UserEmail string  `json:"user_email" validate:"required,email"`
	UserName  *string `json:"user_name" validate:"omitempty,min=2"`
}

func ToUserDTO(u model.UserModel) UserDTO {
	return UserDTO{
		UserID:        u.UserID.String(),
		UserEmail:     u.UserEmail,
		UserName:      u.UserName,
		UserCreatedAt: u.UserCreatedAt,
		UserUpdatedAt: u.UserUpdatedAt,
	}
}

package dto

import (
	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/models"
)

type RegisterRequest struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uuid.UUID     `json:"id"`
	FullName string        `json:"full_name"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Roles    []models.Role `json:"roles"`
}

func NewUserResponse(u *models.User) UserResponse {
	roles := u.RoleSet()
	if roles == nil {
		roles = []models.Role{}
	}
	return UserResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Username: u.Username,
		Email:    u.Email,
		Roles:    roles,
	}
}

// UserCreateRequest is the admin variant of registration: roles are
// assignable.
type UserCreateRequest struct {
	FullName string        `json:"full_name"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Roles    []models.Role `json:"roles"`
}

type UserUpdateRequest struct {
	FullName *string        `json:"full_name"`
	Email    *string        `json:"email"`
	Password *string        `json:"password"`
	Roles    *[]models.Role `json:"roles"`
}

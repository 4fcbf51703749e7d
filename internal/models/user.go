package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Role string

const (
	RoleOwner Role = "OWNER"
	RoleVet   Role = "VET"
	RoleAdmin Role = "ADMIN"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleOwner, RoleVet, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FullName     string         `gorm:"size:120;not null" json:"full_name"`
	Username     string         `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email        string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Roles        datatypes.JSON `gorm:"not null" json:"roles"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// RoleSet decodes the roles column. A corrupt column reads as no roles.
func (u *User) RoleSet() []Role {
	var roles []Role
	if err := json.Unmarshal(u.Roles, &roles); err != nil {
		return nil
	}
	return roles
}

func (u *User) SetRoles(roles []Role) {
	b, _ := json.Marshal(roles)
	u.Roles = datatypes.JSON(b)
}

func (u *User) HasRole(role Role) bool {
	for _, r := range u.RoleSet() {
		if r == role {
			return true
		}
	}
	return false
}

func (u *User) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if u.HasRole(r) {
			return true
		}
	}
	return false
}

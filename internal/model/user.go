package model

import (
	"strings"
	"time"
)

// Role is an access level granted to a member.
type Role string

// Access levels known to the application.
const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// RoleAssignment is one row of the user_roles side table.
type RoleAssignment struct {
	UserID uint `json:"-" gorm:"primaryKey;autoIncrement:false"`
	Role   Role `json:"role" gorm:"primaryKey;size:32"`
}

// TableName maps the assignment rows to the user_roles table.
func (RoleAssignment) TableName() string { return "user_roles" }

// User represents a club member. Each user owns exactly one UserDetail;
// deleting the user removes its detail.
type User struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Username       string `json:"username" gorm:"uniqueIndex;size:255;not null"`
	FirstName      string `json:"first_name" gorm:"size:255;not null"`
	LastName       string `json:"last_name" gorm:"size:255;not null"`
	Email          string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	HashedPassword string `json:"-" gorm:"size:255;not null"` // Never expose in JSON

	Roles  []RoleAssignment `json:"roles" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Detail UserDetail       `json:"detail" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName maps users to the application_user table.
func (User) TableName() string { return "application_user" }

// FullName returns first and last name separated by a space.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// RoleSet returns the assigned roles as a plain slice.
func (u *User) RoleSet() []Role {
	roles := make([]Role, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, r.Role)
	}
	return roles
}

// SetRoleSet replaces the assigned roles. Duplicates are collapsed.
func (u *User) SetRoleSet(roles ...Role) {
	seen := make(map[Role]struct{}, len(roles))
	u.Roles = u.Roles[:0]
	for _, r := range roles {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		u.Roles = append(u.Roles, RoleAssignment{UserID: u.ID, Role: r})
	}
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r.Role == role {
			return true
		}
	}
	return false
}

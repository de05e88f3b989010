package models

import "time"

// Role is a named permission that can be granted to users.
type Role struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Code      string    `json:"code" gorm:"uniqueIndex;type:varchar(64);not null"`
	Name      string    `json:"name" gorm:"type:varchar(128);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// UserRole is the join row between users and roles.
type UserRole struct {
	UserID int `gorm:"primaryKey"`
	RoleID int `gorm:"primaryKey"`
}

// Role codes seeded on an empty database.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// DefaultRoles returns the roles inserted when the roles table is empty.
func DefaultRoles() []Role {
	return []Role{
		{Code: RoleAdmin, Name: "Admin"},
		{Code: RoleEditor, Name: "Editor"},
		{Code: RoleViewer, Name: "Viewer"},
	}
}

package models

import "time"

// User is an operator account managed from the CLI.
type User struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(64);not null"`
	Password  string    `json:"-" gorm:"type:varchar(128);not null"` // argon2id PHC string, never serialized
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	Roles     []Role    `json:"roles,omitempty" gorm:"many2many:user_roles;constraint:OnDelete:CASCADE"`
}

// NewUser carries the fields needed to insert a user. Password must already be hashed.
type NewUser struct {
	Username string `validate:"required,min=1,max=64"`
	Password string `validate:"required"`
}

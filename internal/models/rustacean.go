package models

import "time"

// Rustacean is a person owning zero or more crates.
type Rustacean struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null" validate:"required,max=255"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null" validate:"required,max=255"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;not null"`
}

// NewRustacean is the request body for creating a rustacean.
type NewRustacean struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,max=255"`
}

package models

import "time"

// Crate is an item owned by exactly one rustacean at a time.
type Crate struct {
	ID          int        `json:"id" gorm:"primaryKey"`
	RustaceanID int        `json:"rustacean_id" gorm:"not null;index" validate:"required,gt=0"`
	Rustacean   *Rustacean `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Code        string     `json:"code" gorm:"type:varchar(64);not null" validate:"required,max=64"`
	Name        string     `json:"name" gorm:"type:varchar(128);not null" validate:"required,max=128"`
	Version     string     `json:"version" gorm:"type:varchar(64);not null" validate:"required,max=64"`
	Description *string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime;not null"`
}

// NewCrate is the request body for creating a crate.
type NewCrate struct {
	RustaceanID int     `json:"rustacean_id" validate:"required,gt=0"`
	Code        string  `json:"code" validate:"required,max=64"`
	Name        string  `json:"name" validate:"required,max=128"`
	Version     string  `json:"version" validate:"required,max=64"`
	Description *string `json:"description"`
}

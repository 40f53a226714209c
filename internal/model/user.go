package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Role identifies what a user does on the marketplace.
type Role string

const (
	// RoleArtisan is a service provider who bids on jobs.
	RoleArtisan Role = "ARTISAN"
	// RoleOwner is a job poster.
	RoleOwner Role = "OWNER"
)

// User represents a marketplace account, either an owner or an artisan.
type User struct {
	ID           uuid.UUID                  `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string                     `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Email        string                     `json:"email" gorm:"size:255"`
	PasswordHash string                     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName     string                     `json:"fullName" gorm:"size:255"`
	Phone        string                     `json:"phone" gorm:"size:20"`
	Role         Role                       `json:"role" gorm:"type:varchar(10);not null;default:'OWNER';index"`
	LGA          string                     `json:"lga" gorm:"size:100"`
	Bio          string                     `json:"bio" gorm:"type:text"`
	Skills       datatypes.JSONSlice[string] `json:"skills"`
	IsVerified   bool                       `json:"is_verified" gorm:"default:false"`
	Avatar       string                     `json:"avatar" gorm:"size:512"`
	CreatedAt    time.Time                  `json:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleOwner
	}
	if u.Skills == nil {
		u.Skills = datatypes.JSONSlice[string]{}
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// JobStatus represents the status of a job posting.
type JobStatus string

const (
	JobStatusOpen       JobStatus = "OPEN"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusDisputed   JobStatus = "DISPUTED"
)

// Job represents a posting an owner puts up for artisans to bid on.
// Status is a free-form choice among the four values: the owner may move it
// to any value at any time, there is no transition checking.
type Job struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerID     uuid.UUID       `json:"owner" gorm:"type:char(36);not null;index"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Category    string          `json:"category" gorm:"size:100;not null"`
	LGA         string          `json:"lga" gorm:"size:100;not null"`
	Budget      decimal.Decimal `json:"budget" gorm:"type:decimal(20,2);not null"`
	Status      JobStatus       `json:"status" gorm:"type:varchar(20);not null;default:'OPEN';index"`
	ArtisanID   *uuid.UUID      `json:"artisan" gorm:"type:char(36);index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Owner   User  `json:"owner_details" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Artisan *User `json:"artisan_details,omitempty" gorm:"foreignKey:ArtisanID;constraint:OnDelete:SET NULL"`
	Bids    []Bid `json:"bids" gorm:"foreignKey:JobID"`
}

// BeforeCreate sets UUID before creating the record.
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.Status == "" {
		j.Status = JobStatusOpen
	}
	return nil
}

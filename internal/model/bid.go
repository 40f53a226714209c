package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bid is an artisan's priced proposal against a specific job. Bids are
// created once and never edited.
type Bid struct {
	ID        uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	JobID     uuid.UUID       `json:"job" gorm:"type:char(36);not null;index"`
	ArtisanID uuid.UUID       `json:"artisan" gorm:"type:char(36);not null;index"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Proposal  string          `json:"proposal" gorm:"type:text;not null"`
	CreatedAt time.Time       `json:"created_at"`

	// Relations
	Job     Job  `json:"-" gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
	Artisan User `json:"artisan_details" gorm:"foreignKey:ArtisanID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Bid) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

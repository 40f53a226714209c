package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"artisanhub/internal/model"
)

// BidRepository defines bid persistence operations. Bids are write-once:
// there is no update or single-bid delete.
type BidRepository interface {
	Create(ctx context.Context, bid *model.Bid) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Bid, error)
	// ListVisibleTo returns the bids the given user may see: bids on jobs
	// they own plus bids they placed themselves.
	ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]model.Bid, error)
}

type bidRepository struct {
	db *gorm.DB
}

// NewBidRepository creates a new bid repository.
func NewBidRepository(db *gorm.DB) BidRepository {
	return &bidRepository{db: db}
}

// Create creates a new bid.
func (r *bidRepository) Create(ctx context.Context, bid *model.Bid) error {
	return r.db.WithContext(ctx).Create(bid).Error
}

// FindByID finds a bid by ID with its artisan and job loaded.
func (r *bidRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Bid, error) {
	var bid model.Bid
	if err := r.db.WithContext(ctx).
		Preload("Artisan").
		Preload("Job").
		Where("id = ?", id).
		First(&bid).Error; err != nil {
		return nil, err
	}
	return &bid, nil
}

// ListVisibleTo applies the owner-or-bidder visibility filter in SQL.
func (r *bidRepository) ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]model.Bid, error) {
	var bids []model.Bid
	if err := r.db.WithContext(ctx).
		Preload("Artisan").
		Preload("Job").
		Joins("JOIN jobs ON jobs.id = bids.job_id").
		Where("jobs.owner_id = ? OR bids.artisan_id = ?", userID, userID).
		Find(&bids).Error; err != nil {
		return nil, err
	}
	return bids, nil
}

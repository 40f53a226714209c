package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "artisanhub/internal/errors"
	"artisanhub/internal/model"
	"artisanhub/internal/repository"
)

// BidService handles bid placement and the owner-or-bidder read surface.
type BidService interface {
	// PlaceBid creates a bid by actorID on jobID. The job and artisan on the
	// stored bid always come from these arguments, never from client input.
	PlaceBid(ctx context.Context, jobID, actorID uuid.UUID, amount decimal.Decimal, proposal string) (*model.Bid, error)
	ListBids(ctx context.Context, actorID uuid.UUID) ([]model.Bid, error)
	GetBid(ctx context.Context, id, actorID uuid.UUID) (*model.Bid, error)
}

type bidService struct {
	bidRepo  repository.BidRepository
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
}

// NewBidService creates a new bid service.
func NewBidService(bidRepo repository.BidRepository, jobRepo repository.JobRepository, userRepo repository.UserRepository) BidService {
	return &bidService{
		bidRepo:  bidRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// PlaceBid checks the actor's role against the database, not the token, so a
// role change takes effect immediately. Duplicate bids by the same artisan
// and bids on jobs past OPEN are allowed, matching the posting surface.
func (s *bidService) PlaceBid(ctx context.Context, jobID, actorID uuid.UUID, amount decimal.Decimal, proposal string) (*model.Bid, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	actor, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if !CanPlaceBid(actor) {
		return nil, apperrors.ErrArtisanRoleRequired
	}

	bid := &model.Bid{
		JobID:     job.ID,
		ArtisanID: actor.ID,
		Amount:    amount,
		Proposal:  proposal,
	}

	if err := s.bidRepo.Create(ctx, bid); err != nil {
		return nil, fmt.Errorf("create bid: %w", err)
	}

	return s.bidRepo.FindByID(ctx, bid.ID)
}

// ListBids returns the bids visible to the actor.
func (s *bidService) ListBids(ctx context.Context, actorID uuid.UUID) ([]model.Bid, error) {
	return s.bidRepo.ListVisibleTo(ctx, actorID)
}

// GetBid returns a single bid if the actor may see it. An existing but
// invisible bid reads the same as a missing one.
func (s *bidService) GetBid(ctx context.Context, id, actorID uuid.UUID) (*model.Bid, error) {
	bid, err := s.bidRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrBidNotFound
		}
		return nil, err
	}

	if !CanViewBid(actorID, bid) {
		return nil, apperrors.ErrBidNotFound
	}

	return bid, nil
}

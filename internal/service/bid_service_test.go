package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "artisanhub/internal/errors"
	"artisanhub/internal/model"
)

// MockBidRepository is a mock implementation of BidRepository.
type MockBidRepository struct {
	mock.Mock
}

func (m *MockBidRepository) Create(ctx context.Context, bid *model.Bid) error {
	args := m.Called(ctx, bid)
	return args.Error(0)
}

func (m *MockBidRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Bid, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bid), args.Error(1)
}

func (m *MockBidRepository) ListVisibleTo(ctx context.Context, userID uuid.UUID) ([]model.Bid, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Bid), args.Error(1)
}

func TestBidService_PlaceBid(t *testing.T) {
	jobID := uuid.New()
	ownerID := uuid.New()
	artisanID := uuid.New()
	bidID := uuid.New()

	job := &model.Job{ID: jobID, OwnerID: ownerID, Status: model.JobStatusOpen}

	tests := []struct {
		name          string
		actorID       uuid.UUID
		setupMock     func(*MockBidRepository, *MockJobRepository, *MockUserRepository)
		expectedError error
	}{
		{
			name:    "artisan places a bid",
			actorID: artisanID,
			setupMock: func(mBid *MockBidRepository, mJob *MockJobRepository, mUser *MockUserRepository) {
				mJob.On("FindByID", mock.Anything, jobID).Return(job, nil)
				mUser.On("FindByID", mock.Anything, artisanID).Return(&model.User{
					ID:   artisanID,
					Role: model.RoleArtisan,
				}, nil)
				mBid.On("Create", mock.Anything, mock.AnythingOfType("*model.Bid")).
					Run(func(args mock.Arguments) {
						bid := args.Get(1).(*model.Bid)
						bid.ID = bidID
						// Job and artisan always come from the call, never the body.
						assert.Equal(t, jobID, bid.JobID)
						assert.Equal(t, artisanID, bid.ArtisanID)
					}).
					Return(nil)
				mBid.On("FindByID", mock.Anything, bidID).Return(&model.Bid{
					ID:        bidID,
					JobID:     jobID,
					ArtisanID: artisanID,
					Amount:    decimal.NewFromInt(4500),
					Proposal:  "I can fix it",
					Artisan:   model.User{ID: artisanID, Username: "bob", Role: model.RoleArtisan},
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:    "owner may not bid",
			actorID: ownerID,
			setupMock: func(mBid *MockBidRepository, mJob *MockJobRepository, mUser *MockUserRepository) {
				mJob.On("FindByID", mock.Anything, jobID).Return(job, nil)
				mUser.On("FindByID", mock.Anything, ownerID).Return(&model.User{
					ID:   ownerID,
					Role: model.RoleOwner,
				}, nil)
			},
			expectedError: apperrors.ErrArtisanRoleRequired,
		},
		{
			name:    "missing job",
			actorID: artisanID,
			setupMock: func(mBid *MockBidRepository, mJob *MockJobRepository, mUser *MockUserRepository) {
				mJob.On("FindByID", mock.Anything, jobID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrJobNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBidRepo := new(MockBidRepository)
			mockJobRepo := new(MockJobRepository)
			mockUserRepo := new(MockUserRepository)
			tt.setupMock(mockBidRepo, mockJobRepo, mockUserRepo)

			service := NewBidService(mockBidRepo, mockJobRepo, mockUserRepo)
			bid, err := service.PlaceBid(context.Background(), jobID, tt.actorID, decimal.NewFromInt(4500), "I can fix it")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, bid)
				mockBidRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, bid)
				assert.Equal(t, jobID, bid.JobID)
				assert.Equal(t, tt.actorID, bid.ArtisanID)
				assert.Equal(t, "bob", bid.Artisan.Username)
			}

			mockBidRepo.AssertExpectations(t)
			mockJobRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestBidService_GetBid(t *testing.T) {
	jobOwnerID := uuid.New()
	artisanID := uuid.New()
	strangerID := uuid.New()
	bidID := uuid.New()

	bid := &model.Bid{
		ID:        bidID,
		JobID:     uuid.New(),
		ArtisanID: artisanID,
		Job:       model.Job{OwnerID: jobOwnerID},
	}

	tests := []struct {
		name          string
		actorID       uuid.UUID
		expectedError error
	}{
		{name: "job owner sees the bid", actorID: jobOwnerID},
		{name: "bidding artisan sees the bid", actorID: artisanID},
		{name: "anyone else gets not found", actorID: strangerID, expectedError: apperrors.ErrBidNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBidRepo := new(MockBidRepository)
			mockBidRepo.On("FindByID", mock.Anything, bidID).Return(bid, nil)

			service := NewBidService(mockBidRepo, new(MockJobRepository), new(MockUserRepository))
			got, err := service.GetBid(context.Background(), bidID, tt.actorID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, bidID, got.ID)
			}
		})
	}
}

func TestBidService_ListBids(t *testing.T) {
	actorID := uuid.New()
	visible := []model.Bid{{ID: uuid.New(), ArtisanID: actorID}}

	mockBidRepo := new(MockBidRepository)
	mockBidRepo.On("ListVisibleTo", mock.Anything, actorID).Return(visible, nil)

	service := NewBidService(mockBidRepo, new(MockJobRepository), new(MockUserRepository))
	bids, err := service.ListBids(context.Background(), actorID)

	assert.NoError(t, err)
	assert.Equal(t, visible, bids)
	mockBidRepo.AssertExpectations(t)
}

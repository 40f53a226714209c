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

// MockJobRepository is a mock implementation of JobRepository.
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, job *model.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, job *model.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobRepository) List(ctx context.Context) ([]model.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Job), args.Error(1)
}

func TestJobService_CreateJob(t *testing.T) {
	ownerID := uuid.New()
	jobID := uuid.New()

	mockRepo := new(MockJobRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Job")).
		Run(func(args mock.Arguments) {
			job := args.Get(1).(*model.Job)
			// The repository layer assigns the ID on insert.
			job.ID = jobID
			assert.Equal(t, ownerID, job.OwnerID)
			assert.Equal(t, model.JobStatusOpen, job.Status)
		}).
		Return(nil)
	mockRepo.On("FindByID", mock.Anything, jobID).Return(&model.Job{
		ID:      jobID,
		OwnerID: ownerID,
		Title:   "Fix sink",
		Status:  model.JobStatusOpen,
		Owner:   model.User{ID: ownerID, Username: "alice"},
	}, nil)

	service := NewJobService(mockRepo)
	job, err := service.CreateJob(context.Background(), ownerID, JobInput{
		Title:       "Fix sink",
		Description: "Kitchen sink is leaking",
		Category:    "Plumbing",
		LGA:         "Ikeja",
		Budget:      decimal.NewFromInt(5000),
	})

	assert.NoError(t, err)
	assert.NotNil(t, job)
	assert.Equal(t, ownerID, job.OwnerID)
	assert.Equal(t, "alice", job.Owner.Username)
	mockRepo.AssertExpectations(t)
}

func TestJobService_UpdateJob(t *testing.T) {
	jobID := uuid.New()
	artisanID := uuid.New()

	tests := []struct {
		name   string
		update JobUpdate
		check  func(*testing.T, *model.Job)
	}{
		{
			name: "partial update changes only provided fields",
			update: JobUpdate{
				Title: strPtr("New title"),
			},
			check: func(t *testing.T, job *model.Job) {
				assert.Equal(t, "New title", job.Title)
				assert.Equal(t, "Old description", job.Description)
				assert.Equal(t, model.JobStatusOpen, job.Status)
			},
		},
		{
			name: "status moves freely between values",
			update: JobUpdate{
				Status: statusPtr(model.JobStatusCompleted),
			},
			check: func(t *testing.T, job *model.Job) {
				// No transition rules: OPEN straight to COMPLETED is fine.
				assert.Equal(t, model.JobStatusCompleted, job.Status)
			},
		},
		{
			name: "artisan can be assigned",
			update: JobUpdate{
				Artisan: artisanPtr(&artisanID),
			},
			check: func(t *testing.T, job *model.Job) {
				assert.NotNil(t, job.ArtisanID)
				assert.Equal(t, artisanID, *job.ArtisanID)
			},
		},
		{
			name: "artisan can be cleared",
			update: JobUpdate{
				Artisan: artisanPtr(nil),
			},
			check: func(t *testing.T, job *model.Job) {
				assert.Nil(t, job.ArtisanID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := &model.Job{
				ID:          jobID,
				Title:       "Old title",
				Description: "Old description",
				Status:      model.JobStatusOpen,
				ArtisanID:   &artisanID,
			}
			if tt.name == "artisan can be assigned" {
				existing.ArtisanID = nil
			}

			var saved *model.Job
			mockRepo := new(MockJobRepository)
			mockRepo.On("FindByID", mock.Anything, jobID).Return(existing, nil)
			mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Job")).
				Run(func(args mock.Arguments) {
					saved = args.Get(1).(*model.Job)
				}).
				Return(nil)

			service := NewJobService(mockRepo)
			_, err := service.UpdateJob(context.Background(), jobID, tt.update)

			assert.NoError(t, err)
			assert.NotNil(t, saved)
			tt.check(t, saved)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestJobService_GetJob_NotFound(t *testing.T) {
	jobID := uuid.New()

	mockRepo := new(MockJobRepository)
	mockRepo.On("FindByID", mock.Anything, jobID).Return(nil, gorm.ErrRecordNotFound)

	service := NewJobService(mockRepo)
	job, err := service.GetJob(context.Background(), jobID)

	assert.Nil(t, job)
	assert.Equal(t, apperrors.ErrJobNotFound, err)
	mockRepo.AssertExpectations(t)
}

func TestJobService_DeleteJob(t *testing.T) {
	jobID := uuid.New()

	t.Run("deletes existing job", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID}, nil)
		mockRepo.On("Delete", mock.Anything, jobID).Return(nil)

		service := NewJobService(mockRepo)
		assert.NoError(t, service.DeleteJob(context.Background(), jobID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing job is a not-found error", func(t *testing.T) {
		mockRepo := new(MockJobRepository)
		mockRepo.On("FindByID", mock.Anything, jobID).Return(nil, gorm.ErrRecordNotFound)

		service := NewJobService(mockRepo)
		assert.Equal(t, apperrors.ErrJobNotFound, service.DeleteJob(context.Background(), jobID))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func strPtr(s string) *string                      { return &s }
func statusPtr(s model.JobStatus) *model.JobStatus { return &s }
func artisanPtr(id *uuid.UUID) **uuid.UUID         { return &id }

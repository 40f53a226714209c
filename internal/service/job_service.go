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

// JobInput carries the fields a client supplies when creating a job.
// The owner is never part of it: it is always the authenticated actor.
type JobInput struct {
	Title       string
	Description string
	Category    string
	LGA         string
	Budget      decimal.Decimal
}

// JobUpdate carries the writable job fields for update. Nil means unchanged.
// Artisan is a double pointer so that an explicit null clears the assignment.
type JobUpdate struct {
	Title       *string
	Description *string
	Category    *string
	LGA         *string
	Budget      *decimal.Decimal
	Status      *model.JobStatus
	Artisan     **uuid.UUID
}

// JobService handles job posting operations.
type JobService interface {
	ListJobs(ctx context.Context) ([]model.Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (*model.Job, error)
	CreateJob(ctx context.Context, ownerID uuid.UUID, input JobInput) (*model.Job, error)
	UpdateJob(ctx context.Context, id uuid.UUID, update JobUpdate) (*model.Job, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error
}

type jobService struct {
	jobRepo repository.JobRepository
}

// NewJobService creates a new job service.
func NewJobService(jobRepo repository.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

// ListJobs returns all jobs, newest first, with nested details.
func (s *jobService) ListJobs(ctx context.Context) ([]model.Job, error) {
	return s.jobRepo.List(ctx)
}

// GetJob returns a single job with nested details.
func (s *jobService) GetJob(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// CreateJob creates a job owned by ownerID, whatever the request claimed.
func (s *jobService) CreateJob(ctx context.Context, ownerID uuid.UUID, input JobInput) (*model.Job, error) {
	job := &model.Job{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		LGA:         input.LGA,
		Budget:      input.Budget,
		Status:      model.JobStatusOpen,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	return s.GetJob(ctx, job.ID)
}

// UpdateJob applies the writable fields. Status accepts any of the four
// values at any time; there is no transition checking. Any authenticated
// user may call this on any job (see DESIGN.md).
func (s *jobService) UpdateJob(ctx context.Context, id uuid.UUID, update JobUpdate) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	if update.Title != nil {
		job.Title = *update.Title
	}
	if update.Description != nil {
		job.Description = *update.Description
	}
	if update.Category != nil {
		job.Category = *update.Category
	}
	if update.LGA != nil {
		job.LGA = *update.LGA
	}
	if update.Budget != nil {
		job.Budget = *update.Budget
	}
	if update.Status != nil {
		job.Status = *update.Status
	}
	if update.Artisan != nil {
		job.ArtisanID = *update.Artisan
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}

	return s.GetJob(ctx, id)
}

// DeleteJob removes the job and every bid placed on it.
func (s *jobService) DeleteJob(ctx context.Context, id uuid.UUID) error {
	if _, err := s.jobRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrJobNotFound
		}
		return err
	}
	return s.jobRepo.Delete(ctx, id)
}

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type ReviewService struct {
	reviewRepo      ReviewStore
	maintenanceRepo MaintenanceStore
}

func NewReviewService(reviewRepo ReviewStore, maintenanceRepo MaintenanceStore) *ReviewService {
	return &ReviewService{
		reviewRepo:      reviewRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

type ReviewFields struct {
	Type         string `json:"type"`
	CurrentKm    int    `json:"currentKm"`
	NextReviewKm int    `json:"nextReviewKm"`
}

func (in ReviewFields) apply(review *model.Review) error {
	reviewType := strings.TrimSpace(in.Type)
	if reviewType == "" {
		return invalidf("review type is required")
	}
	if in.CurrentKm < 0 || in.NextReviewKm < 0 {
		return invalidf("currentKm and nextReviewKm must not be negative")
	}

	review.Type = reviewType
	review.CurrentKm = in.CurrentKm
	review.NextReviewKm = in.NextReviewKm
	return nil
}

type ReviewInput struct {
	MaintenanceID uuid.UUID `json:"maintenanceId"`
	ReviewFields
}

// UpdateReviewInput carries the fields of a partial review update.
// Omitted fields keep their stored value.
type UpdateReviewInput struct {
	MaintenanceID *uuid.UUID `json:"maintenanceId"`
	Type          *string    `json:"type"`
	CurrentKm     *int       `json:"currentKm"`
	NextReviewKm  *int       `json:"nextReviewKm"`
}

func (in UpdateReviewInput) merge(review *model.Review) ReviewInput {
	merged := ReviewInput{
		MaintenanceID: review.MaintenanceID,
		ReviewFields: ReviewFields{
			Type:         review.Type,
			CurrentKm:    review.CurrentKm,
			NextReviewKm: review.NextReviewKm,
		},
	}
	if in.MaintenanceID != nil {
		merged.MaintenanceID = *in.MaintenanceID
	}
	if in.Type != nil {
		merged.Type = *in.Type
	}
	if in.CurrentKm != nil {
		merged.CurrentKm = *in.CurrentKm
	}
	if in.NextReviewKm != nil {
		merged.NextReviewKm = *in.NextReviewKm
	}
	return merged
}

func (s *ReviewService) Create(ctx context.Context, input ReviewInput) (*model.Review, error) {
	review := &model.Review{}
	if err := input.apply(review); err != nil {
		return nil, err
	}
	if err := s.requireMaintenance(ctx, input.MaintenanceID); err != nil {
		return nil, err
	}
	review.MaintenanceID = input.MaintenanceID

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, storeError(err, "review")
	}
	return review, nil
}

func (s *ReviewService) List(ctx context.Context) ([]model.Review, error) {
	return s.reviewRepo.List(ctx)
}

func (s *ReviewService) ListByMaintenance(ctx context.Context, maintenanceID uuid.UUID) ([]model.Review, error) {
	return s.reviewRepo.ListByMaintenanceID(ctx, maintenanceID)
}

func (s *ReviewService) Get(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "review")
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, id uuid.UUID, input UpdateReviewInput) (*model.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "review")
	}
	merged := input.merge(review)
	if err := merged.apply(review); err != nil {
		return nil, err
	}
	if merged.MaintenanceID != review.MaintenanceID {
		if err := s.requireMaintenance(ctx, merged.MaintenanceID); err != nil {
			return nil, err
		}
		review.MaintenanceID = merged.MaintenanceID
	}
	review.Maintenance = nil

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, storeError(err, "review")
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id uuid.UUID) error {
	return storeError(s.reviewRepo.Delete(ctx, id), "review")
}

func (s *ReviewService) requireMaintenance(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return invalidf("maintenanceId is required")
	}
	if _, err := s.maintenanceRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalidf("maintenance %s does not exist", id)
		}
		return err
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"time"

	"healthtrack/internal/apperr"
	"healthtrack/internal/models"
	"healthtrack/internal/repository"
)

type CreateExerciseParams struct {
	ExerciseDate    time.Time
	ExerciseType    string
	DurationMinutes *int
	CaloriesBurned  *float64
	Description     string
}

func (p CreateExerciseParams) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if p.ExerciseDate.IsZero() {
		errs = append(errs, fieldErr("exerciseDate", "required", "exerciseDate is required"))
	}
	checkEnum(&errs, "exerciseType", p.ExerciseType, models.ValidExerciseType)
	checkNonNegativeInt(&errs, "durationMinutes", p.DurationMinutes)
	checkNonNegative(&errs, "caloriesBurned", p.CaloriesBurned)
	if p.Description != "" {
		checkLenBounds(&errs, "description", p.Description, 3, 0)
	}
	return errs
}

type ListExercisesParams struct {
	Page         int
	Limit        int
	Search       string
	ExerciseType string
	UserID       string
}

type UpdateExerciseParams struct {
	ExerciseDate    *time.Time
	ExerciseType    *string
	DurationMinutes *int
	CaloriesBurned  *float64
	Description     *string
}

func (p UpdateExerciseParams) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if p.ExerciseType != nil {
		checkEnum(&errs, "exerciseType", *p.ExerciseType, models.ValidExerciseType)
	}
	checkNonNegativeInt(&errs, "durationMinutes", p.DurationMinutes)
	checkNonNegative(&errs, "caloriesBurned", p.CaloriesBurned)
	if p.Description != nil && *p.Description != "" {
		checkLenBounds(&errs, "description", *p.Description, 3, 0)
	}
	return errs
}

// ExerciseService manages owner-scoped exercise records.
type ExerciseService struct {
	repo repository.ExerciseRecords
}

func NewExerciseService(repo repository.ExerciseRecords) *ExerciseService {
	return &ExerciseService{repo: repo}
}

func (s *ExerciseService) Create(ctx context.Context, p CreateExerciseParams, ownerID string) (*models.ExerciseRecord, error) {
	if errs := p.validate(); len(errs) > 0 {
		return nil, apperr.Validation(errs...)
	}

	rec := &models.ExerciseRecord{
		UserID:          ownerID,
		ExerciseDate:    p.ExerciseDate,
		ExerciseType:    p.ExerciseType,
		DurationMinutes: p.DurationMinutes,
		CaloriesBurned:  p.CaloriesBurned,
		Description:     p.Description,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, apperr.Internal("Error creating exercise record", err)
	}
	return rec, nil
}

func (s *ExerciseService) List(ctx context.Context, p ListExercisesParams) ([]models.ExerciseRecord, int, error) {
	recs, total, err := s.repo.List(ctx, repository.ExerciseFilter{
		Search:       p.Search,
		ExerciseType: p.ExerciseType,
		UserID:       p.UserID,
		Page:         pageWindow(p.Page, p.Limit),
	})
	if err != nil {
		return nil, 0, apperr.Internal("Error listing exercise records", err)
	}
	return recs, total, nil
}

func (s *ExerciseService) GetByID(ctx context.Context, id, requesterID string) (*models.ExerciseRecord, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Error loading exercise record", err)
	}
	if rec == nil {
		return nil, apperr.NotFound("Exercise record not found")
	}
	if rec.UserID != requesterID {
		return nil, apperr.Forbidden("You are not authorized to access this exercise record")
	}
	return rec, nil
}

func (s *ExerciseService) Update(ctx context.Context, id string, p UpdateExerciseParams, requesterID string) (*models.ExerciseRecord, error) {
	if errs := p.validate(); len(errs) > 0 {
		return nil, apperr.Validation(errs...)
	}

	rec, err := s.GetByID(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	if p.ExerciseDate != nil {
		rec.ExerciseDate = *p.ExerciseDate
	}
	if p.ExerciseType != nil {
		rec.ExerciseType = *p.ExerciseType
	}
	if p.DurationMinutes != nil {
		rec.DurationMinutes = p.DurationMinutes
	}
	if p.CaloriesBurned != nil {
		rec.CaloriesBurned = p.CaloriesBurned
	}
	if p.Description != nil {
		rec.Description = *p.Description
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Exercise record not found")
		}
		return nil, apperr.Internal("Error updating exercise record", err)
	}
	return rec, nil
}

func (s *ExerciseService) Delete(ctx context.Context, id, requesterID string) error {
	if _, err := s.GetByID(ctx, id, requesterID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Exercise record not found")
		}
		return apperr.Internal("Error deleting exercise record", err)
	}
	return nil
}

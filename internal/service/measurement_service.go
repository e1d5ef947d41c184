package service

import (
	"context"
	"errors"
	"time"

	"healthtrack/internal/apperr"
	"healthtrack/internal/models"
	"healthtrack/internal/repository"
)

type CreateMeasurementParams struct {
	MeasurementDate   time.Time
	WeightKg          float64
	BodyFatPercentage *float64
}

func (p CreateMeasurementParams) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if p.MeasurementDate.IsZero() {
		errs = append(errs, fieldErr("measurementDate", "required", "measurementDate is required"))
	}
	if p.WeightKg <= 0 {
		errs = append(errs, fieldErr("weightKg", "min", "weightKg must be a positive number"))
	}
	if p.BodyFatPercentage != nil && (*p.BodyFatPercentage < 0 || *p.BodyFatPercentage > 100) {
		errs = append(errs, fieldErr("bodyFatPercentage", "range", "bodyFatPercentage must be between 0 and 100"))
	}
	return errs
}

type ListMeasurementsParams struct {
	Page   int
	Limit  int
	UserID string
}

type UpdateMeasurementParams struct {
	MeasurementDate   *time.Time
	WeightKg          *float64
	BodyFatPercentage *float64
}

func (p UpdateMeasurementParams) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if p.WeightKg != nil && *p.WeightKg <= 0 {
		errs = append(errs, fieldErr("weightKg", "min", "weightKg must be a positive number"))
	}
	if p.BodyFatPercentage != nil && (*p.BodyFatPercentage < 0 || *p.BodyFatPercentage > 100) {
		errs = append(errs, fieldErr("bodyFatPercentage", "range", "bodyFatPercentage must be between 0 and 100"))
	}
	return errs
}

// MeasurementService manages owner-scoped body measurements and maintains the
// per-user recent-trend cache alongside the measurement rows.
type MeasurementService struct {
	repo  repository.BodyMeasurements
	users repository.Users
}

func NewMeasurementService(repo repository.BodyMeasurements, users repository.Users) *MeasurementService {
	return &MeasurementService{repo: repo, users: users}
}

func (s *MeasurementService) Create(ctx context.Context, p CreateMeasurementParams, ownerID string) (*models.BodyMeasurement, error) {
	if errs := p.validate(); len(errs) > 0 {
		return nil, apperr.Validation(errs...)
	}

	u, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, apperr.Internal("Error loading user", err)
	}
	if u == nil {
		return nil, apperr.BadRequest("User not found")
	}

	m := &models.BodyMeasurement{
		UserID:            ownerID,
		MeasurementDate:   p.MeasurementDate,
		WeightKg:          p.WeightKg,
		BodyFatPercentage: p.BodyFatPercentage,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, apperr.Internal("Error creating body measurement", err)
	}

	recent := u.RecentMeasurements.Append(p.MeasurementDate, p.WeightKg, p.BodyFatPercentage)
	if err := s.users.SaveRecentMeasurements(ctx, ownerID, recent); err != nil {
		return nil, apperr.Internal("Error updating recent measurements", err)
	}
	return m, nil
}

func (s *MeasurementService) List(ctx context.Context, p ListMeasurementsParams) ([]models.BodyMeasurement, int, error) {
	ms, total, err := s.repo.List(ctx, repository.MeasurementFilter{
		UserID: p.UserID,
		Page:   pageWindow(p.Page, p.Limit),
	})
	if err != nil {
		return nil, 0, apperr.Internal("Error listing body measurements", err)
	}
	return ms, total, nil
}

func (s *MeasurementService) GetByID(ctx context.Context, id, requesterID string) (*models.BodyMeasurement, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Error loading body measurement", err)
	}
	if m == nil {
		return nil, apperr.NotFound("Body measurement not found")
	}
	if m.UserID != requesterID {
		return nil, apperr.Forbidden("You are not authorized to access this body measurement")
	}
	return m, nil
}

func (s *MeasurementService) Update(ctx context.Context, id string, p UpdateMeasurementParams, requesterID string) (*models.BodyMeasurement, error) {
	if errs := p.validate(); len(errs) > 0 {
		return nil, apperr.Validation(errs...)
	}

	m, err := s.GetByID(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	if p.MeasurementDate != nil {
		m.MeasurementDate = *p.MeasurementDate
	}
	if p.WeightKg != nil {
		m.WeightKg = *p.WeightKg
	}
	if p.BodyFatPercentage != nil {
		m.BodyFatPercentage = p.BodyFatPercentage
	}

	if err := s.repo.Update(ctx, m); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Body measurement not found")
		}
		return nil, apperr.Internal("Error updating body measurement", err)
	}
	return m, nil
}

func (s *MeasurementService) Delete(ctx context.Context, id, requesterID string) error {
	if _, err := s.GetByID(ctx, id, requesterID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Body measurement not found")
		}
		return apperr.Internal("Error deleting body measurement", err)
	}
	return nil
}

// Recent returns the cached recent-trend list for the given user.
func (s *MeasurementService) Recent(ctx context.Context, userID string) (models.RecentMeasurements, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Error loading user", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	if u.RecentMeasurements == nil {
		return models.RecentMeasurements{}, nil
	}
	return u.RecentMeasurements, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"healthtrack/internal/apperr"
	"healthtrack/internal/models"
	"healthtrack/internal/repository"
)

type CreateMealParams struct {
	MealType      string
	MealDate      time.Time
	ImageURL      string
	Description   string
	Calories      *float64
	Protein       *float64
	Carbohydrates *float64
	Fats          *float64
}

func (p CreateMealParams) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if p.MealType == "" {
		errs = append(errs, fieldErr("mealType", "required", "mealType is required"))
	}
	checkEnum(&errs, "mealType", p.MealType, models.ValidMealType)
	if p.MealDate.IsZero() {
		errs = append(errs, fieldErr("mealDate", "required", "mealDate is required"))
	}
	if p.Description != "" {
		checkLenBounds(&errs, "description", p.Description, 3, 0)
	}
	checkNonNegative(&errs, "calories", p.Calories)
	checkNonNegative(&errs, "protein", p.Protein)
	checkNonNegative(&errs, "carbohydrates", p.Carbohydrates)
	checkNonNegative(&errs, "fats", p.Fats)
	return errs
}

type ListMealsParams struct {
	Page     int
	Limit    int
	Search   string
	MealType string
	UserID   string
}

type UpdateMealParams struct {
	MealType      *string
	MealDate      *time.Time
	ImageURL      *string
	Description   *string
	Calories      *float64
	Protein       *float64
	Carbohydrates *float64
	Fats          *float64
}

func (p UpdateMealParams) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if p.MealType != nil {
		checkEnum(&errs, "mealType", *p.MealType, models.ValidMealType)
	}
	if p.Description != nil && *p.Description != "" {
		checkLenBounds(&errs, "description", *p.Description, 3, 0)
	}
	checkNonNegative(&errs, "calories", p.Calories)
	checkNonNegative(&errs, "protein", p.Protein)
	checkNonNegative(&errs, "carbohydrates", p.Carbohydrates)
	checkNonNegative(&errs, "fats", p.Fats)
	return errs
}

// MealService manages owner-scoped meal entries.
type MealService struct {
	repo repository.Meals
}

func NewMealService(repo repository.Meals) *MealService {
	return &MealService{repo: repo}
}

func (s *MealService) Create(ctx context.Context, p CreateMealParams, ownerID string) (*models.Meal, error) {
	if errs := p.validate(); len(errs) > 0 {
		return nil, apperr.Validation(errs...)
	}

	m := &models.Meal{
		UserID:        ownerID,
		MealType:      p.MealType,
		MealDate:      p.MealDate,
		ImageURL:      p.ImageURL,
		Description:   p.Description,
		Calories:      p.Calories,
		Protein:       p.Protein,
		Carbohydrates: p.Carbohydrates,
		Fats:          p.Fats,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, apperr.Internal("Error creating meal entry", err)
	}
	return m, nil
}

func (s *MealService) List(ctx context.Context, p ListMealsParams) ([]models.Meal, int, error) {
	meals, total, err := s.repo.List(ctx, repository.MealFilter{
		Search:   p.Search,
		MealType: p.MealType,
		UserID:   p.UserID,
		Page:     pageWindow(p.Page, p.Limit),
	})
	if err != nil {
		return nil, 0, apperr.Internal("Error listing meal entries", err)
	}
	return meals, total, nil
}

func (s *MealService) GetByID(ctx context.Context, id, requesterID string) (*models.Meal, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Error loading meal entry", err)
	}
	if m == nil {
		return nil, apperr.NotFound("Meal entry not found")
	}
	if m.UserID != requesterID {
		return nil, apperr.Forbidden("You are not authorized to access this meal entry")
	}
	return m, nil
}

func (s *MealService) Update(ctx context.Context, id string, p UpdateMealParams, requesterID string) (*models.Meal, error) {
	if errs := p.validate(); len(errs) > 0 {
		return nil, apperr.Validation(errs...)
	}

	m, err := s.GetByID(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	if p.MealType != nil {
		m.MealType = *p.MealType
	}
	if p.MealDate != nil {
		m.MealDate = *p.MealDate
	}
	if p.ImageURL != nil {
		m.ImageURL = *p.ImageURL
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Calories != nil {
		m.Calories = p.Calories
	}
	if p.Protein != nil {
		m.Protein = p.Protein
	}
	if p.Carbohydrates != nil {
		m.Carbohydrates = p.Carbohydrates
	}
	if p.Fats != nil {
		m.Fats = p.Fats
	}

	if err := s.repo.Update(ctx, m); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Meal entry not found")
		}
		return nil, apperr.Internal("Error updating meal entry", err)
	}
	return m, nil
}

func (s *MealService) Delete(ctx context.Context, id, requesterID string) error {
	if _, err := s.GetByID(ctx, id, requesterID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Meal entry not found")
		}
		return apperr.Internal("Error deleting meal entry", err)
	}
	return nil
}

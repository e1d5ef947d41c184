package service

import (
	"context"
	"errors"
	"time"

	"healthtrack/internal/apperr"
	"healthtrack/internal/models"
	"healthtrack/internal/repository"
)

type CreateDiaryParams struct {
	EntryDate time.Time
	Title     string
	Content   string
}

func (p CreateDiaryParams) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if p.EntryDate.IsZero() {
		errs = append(errs, fieldErr("entryDate", "required", "entryDate is required"))
	}
	if p.Title != "" {
		checkLenBounds(&errs, "title", p.Title, 1, 0)
	}
	checkLenBounds(&errs, "content", p.Content, 10, 0)
	return errs
}

type ListDiariesParams struct {
	Page   int
	Limit  int
	Search string
	UserID string
}

type UpdateDiaryParams struct {
	EntryDate *time.Time
	Title     *string
	Content   *string
}

func (p UpdateDiaryParams) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if p.Title != nil && *p.Title != "" {
		checkLenBounds(&errs, "title", *p.Title, 1, 0)
	}
	if p.Content != nil {
		checkLenBounds(&errs, "content", *p.Content, 10, 0)
	}
	return errs
}

// DiaryService manages owner-scoped diary entries.
type DiaryService struct {
	repo repository.Diaries
}

func NewDiaryService(repo repository.Diaries) *DiaryService {
	return &DiaryService{repo: repo}
}

func (s *DiaryService) Create(ctx context.Context, p CreateDiaryParams, ownerID string) (*models.Diary, error) {
	if errs := p.validate(); len(errs) > 0 {
		return nil, apperr.Validation(errs...)
	}

	d := &models.Diary{
		UserID:    ownerID,
		EntryDate: p.EntryDate,
		Title:     p.Title,
		Content:   p.Content,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, apperr.Internal("Error creating diary entry", err)
	}
	return d, nil
}

func (s *DiaryService) List(ctx context.Context, p ListDiariesParams) ([]models.Diary, int, error) {
	diaries, total, err := s.repo.List(ctx, repository.DiaryFilter{
		Search: p.Search,
		UserID: p.UserID,
		Page:   pageWindow(p.Page, p.Limit),
	})
	if err != nil {
		return nil, 0, apperr.Internal("Error listing diary entries", err)
	}
	return diaries, total, nil
}

// GetByID loads an entry, checking existence before ownership so a missing
// id never reads as somebody else's entry.
func (s *DiaryService) GetByID(ctx context.Context, id, requesterID string) (*models.Diary, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Error loading diary entry", err)
	}
	if d == nil {
		return nil, apperr.NotFound("Diary entry not found")
	}
	if d.UserID != requesterID {
		return nil, apperr.Forbidden("You are not authorized to access this diary entry")
	}
	return d, nil
}

func (s *DiaryService) Update(ctx context.Context, id string, p UpdateDiaryParams, requesterID string) (*models.Diary, error) {
	if errs := p.validate(); len(errs) > 0 {
		return nil, apperr.Validation(errs...)
	}

	d, err := s.GetByID(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	if p.EntryDate != nil {
		d.EntryDate = *p.EntryDate
	}
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Content != nil {
		d.Content = *p.Content
	}

	if err := s.repo.Update(ctx, d); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Diary entry not found")
		}
		return nil, apperr.Internal("Error updating diary entry", err)
	}
	return d, nil
}

func (s *DiaryService) Delete(ctx context.Context, id, requesterID string) error {
	if _, err := s.GetByID(ctx, id, requesterID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Diary entry not found")
		}
		return apperr.Internal("Error deleting diary entry", err)
	}
	return nil
}

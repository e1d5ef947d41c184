package service

import (
	"context"
	"errors"
	"time"

	"healthtrack/internal/apperr"
	"healthtrack/internal/models"
	"healthtrack/internal/repository"
)

type CreateArticleParams struct {
	Title       string
	Category    string
	PublishDate time.Time
	ImageURL    string
	Content     string
	Author      string
}

func (p CreateArticleParams) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	checkLenBounds(&errs, "title", p.Title, 5, 200)
	checkEnum(&errs, "category", p.Category, models.ValidArticleCategory)
	if p.PublishDate.IsZero() {
		errs = append(errs, fieldErr("publishDate", "required", "publishDate is required"))
	}
	checkURL(&errs, "imageUrl", p.ImageURL)
	checkLenBounds(&errs, "content", p.Content, 10, 0)
	if p.Author != "" {
		checkLenBounds(&errs, "author", p.Author, 0, 100)
	}
	return errs
}

type ListArticlesParams struct {
	Page     int
	Limit    int
	Search   string
	Category string
}

type UpdateArticleParams struct {
	Title       *string
	Category    *string
	PublishDate *time.Time
	ImageURL    *string
	Content     *string
	Author      *string
	ViewsCount  *int
}

func (p UpdateArticleParams) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if p.Title != nil {
		checkLenBounds(&errs, "title", *p.Title, 5, 200)
	}
	if p.Category != nil {
		checkEnum(&errs, "category", *p.Category, models.ValidArticleCategory)
	}
	if p.ImageURL != nil {
		checkURL(&errs, "imageUrl", *p.ImageURL)
	}
	if p.Content != nil {
		checkLenBounds(&errs, "content", *p.Content, 10, 0)
	}
	if p.Author != nil && *p.Author != "" {
		checkLenBounds(&errs, "author", *p.Author, 0, 100)
	}
	checkNonNegativeInt(&errs, "viewsCount", p.ViewsCount)
	return errs
}

// ArticleService manages the global article collection. Articles are not
// owned: reads are public, mutation is gated to admins at the route level.
type ArticleService struct {
	repo repository.Articles
}

func NewArticleService(repo repository.Articles) *ArticleService {
	return &ArticleService{repo: repo}
}

func (s *ArticleService) Create(ctx context.Context, p CreateArticleParams) (*models.Article, error) {
	if errs := p.validate(); len(errs) > 0 {
		return nil, apperr.Validation(errs...)
	}

	a := &models.Article{
		Title:       p.Title,
		Category:    p.Category,
		PublishDate: p.PublishDate,
		ImageURL:    p.ImageURL,
		Content:     p.Content,
		Author:      p.Author,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, apperr.Internal("Error creating article", err)
	}
	return a, nil
}

func (s *ArticleService) List(ctx context.Context, p ListArticlesParams) ([]models.Article, int, error) {
	articles, total, err := s.repo.List(ctx, repository.ArticleFilter{
		Search:   p.Search,
		Category: p.Category,
		Page:     pageWindow(p.Page, p.Limit),
	})
	if err != nil {
		return nil, 0, apperr.Internal("Error listing articles", err)
	}
	return articles, total, nil
}

func (s *ArticleService) GetByID(ctx context.Context, id string) (*models.Article, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Error loading article", err)
	}
	if a == nil {
		return nil, apperr.NotFound("Article not found")
	}
	return a, nil
}

func (s *ArticleService) Update(ctx context.Context, id string, p UpdateArticleParams) (*models.Article, error) {
	if errs := p.validate(); len(errs) > 0 {
		return nil, apperr.Validation(errs...)
	}

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.PublishDate != nil {
		a.PublishDate = *p.PublishDate
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Author != nil {
		a.Author = *p.Author
	}
	if p.ViewsCount != nil {
		a.ViewsCount = *p.ViewsCount
	}

	if err := s.repo.Update(ctx, a); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Article not found")
		}
		return nil, apperr.Internal("Error updating article", err)
	}
	return a, nil
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Article not found")
		}
		return apperr.Internal("Error deleting article", err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"healthtrack/internal/models"

	"github.com/google/uuid"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

var _ Articles = (*ArticleRepository)(nil)

const (
	articleColumns = `id, title, category, publish_date, image_url, content, author, views_count, created_at, updated_at`

	insertArticleSQL = `INSERT INTO articles (id, title, category, publish_date, image_url, content, author, views_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectArticleByIDSQL = `SELECT ` + articleColumns + ` FROM articles WHERE id = ?`

	updateArticleSQL = `UPDATE articles SET title = ?, category = ?, publish_date = ?, image_url = ?, content = ?, author = ?, views_count = ?, updated_at = ? WHERE id = ?`

	deleteArticleSQL = `DELETE FROM articles WHERE id = ?`
)

func (r *ArticleRepository) Create(ctx context.Context, a *models.Article) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, insertArticleSQL,
		a.ID, a.Title, nullStr(a.Category), fmtTime(a.PublishDate),
		nullStr(a.ImageURL), a.Content, nullStr(a.Author), a.ViewsCount,
		fmtTime(a.CreatedAt), fmtTime(a.UpdatedAt),
	)
	return translateErr("insert article", err)
}

// GetByID fetches an article by id. Returns (nil, nil) if not found.
func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	a, err := scanArticle(r.db.QueryRowContext(ctx, selectArticleByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select article: %w", err)
	}
	return a, nil
}

// List returns a page of articles ordered by publish date descending, plus
// the total count matching the filter.
func (r *ArticleRepository) List(ctx context.Context, f ArticleFilter) ([]models.Article, int, error) {
	var (
		conds []string
		args  []any
	)
	if f.Search != "" {
		conds = append(conds, "(lower(title) LIKE ? OR lower(content) LIKE ?)")
		pat := likePattern(f.Search)
		args = append(args, pat, pat)
	}
	if f.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, f.Category)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	q := "SELECT " + articleColumns + " FROM articles" + where + " ORDER BY publish_date DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, q, append(args, f.Page.Limit, f.Page.Skip)...)
	if err != nil {
		return nil, 0, fmt.Errorf("select articles: %w", err)
	}
	defer rows.Close()

	out := make([]models.Article, 0, f.Page.Limit)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan article: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate articles: %w", err)
	}
	return out, total, nil
}

func (r *ArticleRepository) Update(ctx context.Context, a *models.Article) error {
	a.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, updateArticleSQL,
		a.Title, nullStr(a.Category), fmtTime(a.PublishDate), nullStr(a.ImageURL),
		a.Content, nullStr(a.Author), a.ViewsCount, fmtTime(a.UpdatedAt), a.ID,
	)
	if err != nil {
		return translateErr("update article", err)
	}
	return checkAffected("update article", res)
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteArticleSQL, id)
	if err != nil {
		return translateErr("delete article", err)
	}
	return checkAffected("delete article", res)
}

func scanArticle(s scanner) (*models.Article, error) {
	var (
		a        models.Article
		category sql.NullString
		imageURL sql.NullString
		author   sql.NullString
	)
	err := s.Scan(&a.ID, &a.Title, &category, &a.PublishDate, &imageURL,
		&a.Content, &author, &a.ViewsCount, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Category = strValue(category)
	a.ImageURL = strValue(imageURL)
	a.Author = strValue(author)
	a.PublishDate = a.PublishDate.UTC()
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return &a, nil
}

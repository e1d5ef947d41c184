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

type DiaryRepository struct {
	db *sql.DB
}

func NewDiaryRepository(db *sql.DB) *DiaryRepository {
	return &DiaryRepository{db: db}
}

var _ Diaries = (*DiaryRepository)(nil)

const (
	diaryColumns = `id, user_id, entry_date, title, content, created_at, updated_at`

	insertDiarySQL = `INSERT INTO diaries (id, user_id, entry_date, title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	selectDiaryByIDSQL = `SELECT ` + diaryColumns + ` FROM diaries WHERE id = ?`

	updateDiarySQL = `UPDATE diaries SET entry_date = ?, title = ?, content = ?, updated_at = ? WHERE id = ?`

	deleteDiarySQL = `DELETE FROM diaries WHERE id = ?`
)

func (r *DiaryRepository) Create(ctx context.Context, d *models.Diary) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, insertDiarySQL,
		d.ID, d.UserID, fmtTime(d.EntryDate), nullStr(d.Title), d.Content,
		fmtTime(d.CreatedAt), fmtTime(d.UpdatedAt),
	)
	return translateErr("insert diary", err)
}

// GetByID fetches a diary entry by id. Returns (nil, nil) if not found.
func (r *DiaryRepository) GetByID(ctx context.Context, id string) (*models.Diary, error) {
	d, err := scanDiary(r.db.QueryRowContext(ctx, selectDiaryByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select diary: %w", err)
	}
	return d, nil
}

// List returns a page of diary entries ordered by entry date descending,
// plus the total count matching the filter.
func (r *DiaryRepository) List(ctx context.Context, f DiaryFilter) ([]models.Diary, int, error) {
	var (
		conds []string
		args  []any
	)
	if f.Search != "" {
		conds = append(conds, "(lower(title) LIKE ? OR lower(content) LIKE ?)")
		pat := likePattern(f.Search)
		args = append(args, pat, pat)
	}
	if f.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, f.UserID)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM diaries"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count diaries: %w", err)
	}

	q := "SELECT " + diaryColumns + " FROM diaries" + where + " ORDER BY entry_date DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, q, append(args, f.Page.Limit, f.Page.Skip)...)
	if err != nil {
		return nil, 0, fmt.Errorf("select diaries: %w", err)
	}
	defer rows.Close()

	out := make([]models.Diary, 0, f.Page.Limit)
	for rows.Next() {
		d, err := scanDiary(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan diary: %w", err)
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate diaries: %w", err)
	}
	return out, total, nil
}

func (r *DiaryRepository) Update(ctx context.Context, d *models.Diary) error {
	d.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, updateDiarySQL,
		fmtTime(d.EntryDate), nullStr(d.Title), d.Content, fmtTime(d.UpdatedAt), d.ID,
	)
	if err != nil {
		return translateErr("update diary", err)
	}
	return checkAffected("update diary", res)
}

func (r *DiaryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteDiarySQL, id)
	if err != nil {
		return translateErr("delete diary", err)
	}
	return checkAffected("delete diary", res)
}

func scanDiary(s scanner) (*models.Diary, error) {
	var (
		d     models.Diary
		title sql.NullString
	)
	err := s.Scan(&d.ID, &d.UserID, &d.EntryDate, &title, &d.Content, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	d.Title = strValue(title)
	d.EntryDate = d.EntryDate.UTC()
	d.CreatedAt = d.CreatedAt.UTC()
	d.UpdatedAt = d.UpdatedAt.UTC()
	return &d, nil
}

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

type ExerciseRepository struct {
	db *sql.DB
}

func NewExerciseRepository(db *sql.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

var _ ExerciseRecords = (*ExerciseRepository)(nil)

const (
	exerciseColumns = `id, user_id, exercise_date, exercise_type, duration_minutes, calories_burned, description, created_at, updated_at`

	insertExerciseSQL = `INSERT INTO exercise_records (id, user_id, exercise_date, exercise_type, duration_minutes, calories_burned, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectExerciseByIDSQL = `SELECT ` + exerciseColumns + ` FROM exercise_records WHERE id = ?`

	updateExerciseSQL = `UPDATE exercise_records SET exercise_date = ?, exercise_type = ?, duration_minutes = ?, calories_burned = ?, description = ?, updated_at = ? WHERE id = ?`

	deleteExerciseSQL = `DELETE FROM exercise_records WHERE id = ?`
)

func (r *ExerciseRepository) Create(ctx context.Context, e *models.ExerciseRecord) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, insertExerciseSQL,
		e.ID, e.UserID, fmtTime(e.ExerciseDate), nullStr(e.ExerciseType),
		nullInt(e.DurationMinutes), nullFloat(e.CaloriesBurned), nullStr(e.Description),
		fmtTime(e.CreatedAt), fmtTime(e.UpdatedAt),
	)
	return translateErr("insert exercise record", err)
}

// GetByID fetches an exercise record by id. Returns (nil, nil) if not found.
func (r *ExerciseRepository) GetByID(ctx context.Context, id string) (*models.ExerciseRecord, error) {
	e, err := scanExercise(r.db.QueryRowContext(ctx, selectExerciseByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select exercise record: %w", err)
	}
	return e, nil
}

// List returns a page of exercise records ordered by exercise date
// descending, plus the total count matching the filter.
func (r *ExerciseRepository) List(ctx context.Context, f ExerciseFilter) ([]models.ExerciseRecord, int, error) {
	var (
		conds []string
		args  []any
	)
	if f.Search != "" {
		conds = append(conds, "lower(description) LIKE ?")
		args = append(args, likePattern(f.Search))
	}
	if f.ExerciseType != "" {
		conds = append(conds, "exercise_type = ?")
		args = append(args, f.ExerciseType)
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
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM exercise_records"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count exercise records: %w", err)
	}

	q := "SELECT " + exerciseColumns + " FROM exercise_records" + where + " ORDER BY exercise_date DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, q, append(args, f.Page.Limit, f.Page.Skip)...)
	if err != nil {
		return nil, 0, fmt.Errorf("select exercise records: %w", err)
	}
	defer rows.Close()

	out := make([]models.ExerciseRecord, 0, f.Page.Limit)
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan exercise record: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate exercise records: %w", err)
	}
	return out, total, nil
}

func (r *ExerciseRepository) Update(ctx context.Context, e *models.ExerciseRecord) error {
	e.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, updateExerciseSQL,
		fmtTime(e.ExerciseDate), nullStr(e.ExerciseType), nullInt(e.DurationMinutes),
		nullFloat(e.CaloriesBurned), nullStr(e.Description), fmtTime(e.UpdatedAt), e.ID,
	)
	if err != nil {
		return translateErr("update exercise record", err)
	}
	return checkAffected("update exercise record", res)
}

func (r *ExerciseRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteExerciseSQL, id)
	if err != nil {
		return translateErr("delete exercise record", err)
	}
	return checkAffected("delete exercise record", res)
}

func scanExercise(s scanner) (*models.ExerciseRecord, error) {
	var (
		e            models.ExerciseRecord
		exerciseType sql.NullString
		duration     sql.NullInt64
		calories     sql.NullFloat64
		description  sql.NullString
	)
	err := s.Scan(&e.ID, &e.UserID, &e.ExerciseDate, &exerciseType, &duration,
		&calories, &description, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.ExerciseType = strValue(exerciseType)
	e.DurationMinutes = intPtr(duration)
	e.CaloriesBurned = floatPtr(calories)
	e.Description = strValue(description)
	e.ExerciseDate = e.ExerciseDate.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()
	return &e, nil
}

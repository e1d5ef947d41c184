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

type MealRepository struct {
	db *sql.DB
}

func NewMealRepository(db *sql.DB) *MealRepository {
	return &MealRepository{db: db}
}

var _ Meals = (*MealRepository)(nil)

const (
	mealColumns = `id, user_id, meal_type, meal_date, image_url, description, calories, protein, carbohydrates, fats, created_at, updated_at`

	insertMealSQL = `INSERT INTO meals (id, user_id, meal_type, meal_date, image_url, description, calories, protein, carbohydrates, fats, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectMealByIDSQL = `SELECT ` + mealColumns + ` FROM meals WHERE id = ?`

	updateMealSQL = `UPDATE meals SET meal_type = ?, meal_date = ?, image_url = ?, description = ?, calories = ?, protein = ?, carbohydrates = ?, fats = ?, updated_at = ? WHERE id = ?`

	deleteMealSQL = `DELETE FROM meals WHERE id = ?`
)

func (r *MealRepository) Create(ctx context.Context, m *models.Meal) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, insertMealSQL,
		m.ID, m.UserID, m.MealType, fmtTime(m.MealDate), nullStr(m.ImageURL),
		nullStr(m.Description), nullFloat(m.Calories), nullFloat(m.Protein),
		nullFloat(m.Carbohydrates), nullFloat(m.Fats),
		fmtTime(m.CreatedAt), fmtTime(m.UpdatedAt),
	)
	return translateErr("insert meal", err)
}

// GetByID fetches a meal by id. Returns (nil, nil) if not found.
func (r *MealRepository) GetByID(ctx context.Context, id string) (*models.Meal, error) {
	m, err := scanMeal(r.db.QueryRowContext(ctx, selectMealByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select meal: %w", err)
	}
	return m, nil
}

// List returns a page of meals ordered by meal date descending, plus the
// total count matching the filter.
func (r *MealRepository) List(ctx context.Context, f MealFilter) ([]models.Meal, int, error) {
	var (
		conds []string
		args  []any
	)
	if f.Search != "" {
		conds = append(conds, "lower(description) LIKE ?")
		args = append(args, likePattern(f.Search))
	}
	if f.MealType != "" {
		conds = append(conds, "meal_type = ?")
		args = append(args, f.MealType)
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
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM meals"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count meals: %w", err)
	}

	q := "SELECT " + mealColumns + " FROM meals" + where + " ORDER BY meal_date DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, q, append(args, f.Page.Limit, f.Page.Skip)...)
	if err != nil {
		return nil, 0, fmt.Errorf("select meals: %w", err)
	}
	defer rows.Close()

	out := make([]models.Meal, 0, f.Page.Limit)
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan meal: %w", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate meals: %w", err)
	}
	return out, total, nil
}

func (r *MealRepository) Update(ctx context.Context, m *models.Meal) error {
	m.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, updateMealSQL,
		m.MealType, fmtTime(m.MealDate), nullStr(m.ImageURL), nullStr(m.Description),
		nullFloat(m.Calories), nullFloat(m.Protein), nullFloat(m.Carbohydrates),
		nullFloat(m.Fats), fmtTime(m.UpdatedAt), m.ID,
	)
	if err != nil {
		return translateErr("update meal", err)
	}
	return checkAffected("update meal", res)
}

func (r *MealRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteMealSQL, id)
	if err != nil {
		return translateErr("delete meal", err)
	}
	return checkAffected("delete meal", res)
}

func scanMeal(s scanner) (*models.Meal, error) {
	var (
		m           models.Meal
		imageURL    sql.NullString
		description sql.NullString
		calories    sql.NullFloat64
		protein     sql.NullFloat64
		carbs       sql.NullFloat64
		fats        sql.NullFloat64
	)
	err := s.Scan(&m.ID, &m.UserID, &m.MealType, &m.MealDate, &imageURL,
		&description, &calories, &protein, &carbs, &fats, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.ImageURL = strValue(imageURL)
	m.Description = strValue(description)
	m.Calories = floatPtr(calories)
	m.Protein = floatPtr(protein)
	m.Carbohydrates = floatPtr(carbs)
	m.Fats = floatPtr(fats)
	m.MealDate = m.MealDate.UTC()
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return &m, nil
}

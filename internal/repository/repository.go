package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"healthtrack/internal/models"
)

// Sentinel classifications for store-level failures the service layer can
// act on. Anything else propagates wrapped.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Page is the skip/take window applied to list queries.
type Page struct {
	Skip  int
	Limit int
}

type UserFilter struct {
	Search string // matches first_name, last_name, email
	Role   string
	Page   Page
}

type ArticleFilter struct {
	Search   string // matches title, content
	Category string
	Page     Page
}

type DiaryFilter struct {
	Search string // matches title, content
	UserID string
	Page   Page
}

type MealFilter struct {
	Search   string // matches description
	MealType string
	UserID   string
	Page     Page
}

type ExerciseFilter struct {
	Search       string // matches description
	ExerciseType string
	UserID       string
	Page         Page
}

type MeasurementFilter struct {
	UserID string
	Page   Page
}

type Users interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, f UserFilter) ([]models.User, int, error)
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id string) error
	SaveRecentMeasurements(ctx context.Context, userID string, rm models.RecentMeasurements) error
}

type Articles interface {
	Create(ctx context.Context, a *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	List(ctx context.Context, f ArticleFilter) ([]models.Article, int, error)
	Update(ctx context.Context, a *models.Article) error
	Delete(ctx context.Context, id string) error
}

type Diaries interface {
	Create(ctx context.Context, d *models.Diary) error
	GetByID(ctx context.Context, id string) (*models.Diary, error)
	List(ctx context.Context, f DiaryFilter) ([]models.Diary, int, error)
	Update(ctx context.Context, d *models.Diary) error
	Delete(ctx context.Context, id string) error
}

type Meals interface {
	Create(ctx context.Context, m *models.Meal) error
	GetByID(ctx context.Context, id string) (*models.Meal, error)
	List(ctx context.Context, f MealFilter) ([]models.Meal, int, error)
	Update(ctx context.Context, m *models.Meal) error
	Delete(ctx context.Context, id string) error
}

type ExerciseRecords interface {
	Create(ctx context.Context, e *models.ExerciseRecord) error
	GetByID(ctx context.Context, id string) (*models.ExerciseRecord, error)
	List(ctx context.Context, f ExerciseFilter) ([]models.ExerciseRecord, int, error)
	Update(ctx context.Context, e *models.ExerciseRecord) error
	Delete(ctx context.Context, id string) error
}

type BodyMeasurements interface {
	Create(ctx context.Context, b *models.BodyMeasurement) error
	GetByID(ctx context.Context, id string) (*models.BodyMeasurement, error)
	List(ctx context.Context, f MeasurementFilter) ([]models.BodyMeasurement, int, error)
	Update(ctx context.Context, b *models.BodyMeasurement) error
	Delete(ctx context.Context, id string) error
}

type Repository struct {
	Users        Users
	Articles     Articles
	Diaries      Diaries
	Meals        Meals
	Exercises    ExerciseRecords
	Measurements BodyMeasurements
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:        NewUserRepository(db),
		Articles:     NewArticleRepository(db),
		Diaries:      NewDiaryRepository(db),
		Meals:        NewMealRepository(db),
		Exercises:    NewExerciseRepository(db),
		Measurements: NewMeasurementRepository(db),
	}
}

// translateErr classifies driver-level failures into repository sentinels,
// wrapping with the failing operation for context.
func translateErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// checkAffected maps a zero-row mutation to ErrNotFound.
func checkAffected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// SQLite TIMESTAMP format used for all persisted times.
const sqliteTimeLayout = "2006-01-02 15:04:05"

func fmtTime(t time.Time) string { return t.UTC().Format(sqliteTimeLayout) }

// nullable column helpers: empty string / nil pointer persist as NULL.

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func strValue(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func floatPtr(nf sql.NullFloat64) *float64 {
	if nf.Valid {
		v := nf.Float64
		return &v
	}
	return nil
}

func intPtr(ni sql.NullInt64) *int {
	if ni.Valid {
		v := int(ni.Int64)
		return &v
	}
	return nil
}

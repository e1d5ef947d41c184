package service

import (
	"context"
	"time"

	"healthtrack/internal/models"
	"healthtrack/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, p CreateUserParams) (*models.User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, token string) (*AuthResult, error)
	ParseToken(accessToken string) (*Claims, error)
}

type Users interface {
	Create(ctx context.Context, p CreateUserParams) (*models.User, error)
	List(ctx context.Context, p ListUsersParams) ([]models.User, int, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, p UpdateUserParams) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type Articles interface {
	Create(ctx context.Context, p CreateArticleParams) (*models.Article, error)
	List(ctx context.Context, p ListArticlesParams) ([]models.Article, int, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	Update(ctx context.Context, id string, p UpdateArticleParams) (*models.Article, error)
	Delete(ctx context.Context, id string) error
}

// Owned resources take the requester's id so ownership can be enforced.
// NotFound is always checked before Forbidden.

type Diaries interface {
	Create(ctx context.Context, p CreateDiaryParams, ownerID string) (*models.Diary, error)
	List(ctx context.Context, p ListDiariesParams) ([]models.Diary, int, error)
	GetByID(ctx context.Context, id, requesterID string) (*models.Diary, error)
	Update(ctx context.Context, id string, p UpdateDiaryParams, requesterID string) (*models.Diary, error)
	Delete(ctx context.Context, id, requesterID string) error
}

type Meals interface {
	Create(ctx context.Context, p CreateMealParams, ownerID string) (*models.Meal, error)
	List(ctx context.Context, p ListMealsParams) ([]models.Meal, int, error)
	GetByID(ctx context.Context, id, requesterID string) (*models.Meal, error)
	Update(ctx context.Context, id string, p UpdateMealParams, requesterID string) (*models.Meal, error)
	Delete(ctx context.Context, id, requesterID string) error
}

type Exercises interface {
	Create(ctx context.Context, p CreateExerciseParams, ownerID string) (*models.ExerciseRecord, error)
	List(ctx context.Context, p ListExercisesParams) ([]models.ExerciseRecord, int, error)
	GetByID(ctx context.Context, id, requesterID string) (*models.ExerciseRecord, error)
	Update(ctx context.Context, id string, p UpdateExerciseParams, requesterID string) (*models.ExerciseRecord, error)
	Delete(ctx context.Context, id, requesterID string) error
}

type Measurements interface {
	Create(ctx context.Context, p CreateMeasurementParams, ownerID string) (*models.BodyMeasurement, error)
	List(ctx context.Context, p ListMeasurementsParams) ([]models.BodyMeasurement, int, error)
	GetByID(ctx context.Context, id, requesterID string) (*models.BodyMeasurement, error)
	Update(ctx context.Context, id string, p UpdateMeasurementParams, requesterID string) (*models.BodyMeasurement, error)
	Delete(ctx context.Context, id, requesterID string) error
	Recent(ctx context.Context, userID string) (models.RecentMeasurements, error)
}

// Service aggregates all sub-services behind one handle.
type Service struct {
	Authorization
	Users
	Articles
	Diaries
	Meals
	Exercises
	Measurements
}

// AuthConfig carries the token signing material injected at startup.
type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	users := NewUserService(repos.Users)
	return &Service{
		Authorization: NewAuthService(users, auth.Secret, auth.TokenTTL),
		Users:         users,
		Articles:      NewArticleService(repos.Articles),
		Diaries:       NewDiaryService(repos.Diaries),
		Meals:         NewMealService(repos.Meals),
		Exercises:     NewExerciseService(repos.Exercises),
		Measurements:  NewMeasurementService(repos.Measurements, repos.Users),
	}
}

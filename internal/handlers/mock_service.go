package handlers

import (
	"context"
	"net/http"

	"healthtrack/internal/models"
	"healthtrack/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser *models.User
	registerErr  error
	loginRes     *service.AuthResult
	loginErr     error
	refreshRes   *service.AuthResult
	refreshErr   error
	parseClaims  *service.Claims
	parseErr     error

	lastRegister   service.CreateUserParams
	lastLoginEmail string
	lastParseToken string
}

func (m *mockAuth) Register(ctx context.Context, p service.CreateUserParams) (*models.User, error) {
	m.lastRegister = p
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	m.lastLoginEmail = email
	return m.loginRes, m.loginErr
}

func (m *mockAuth) Refresh(ctx context.Context, token string) (*service.AuthResult, error) {
	return m.refreshRes, m.refreshErr
}

func (m *mockAuth) ParseToken(accessToken string) (*service.Claims, error) {
	m.lastParseToken = accessToken
	return m.parseClaims, m.parseErr
}

type mockUsers struct {
	createUser *models.User
	createErr  error
	list       []models.User
	listTotal  int
	listErr    error
	getUser    *models.User
	getErr     error
	updateUser *models.User
	updateErr  error
	deleteErr  error

	lastGetID    string
	lastUpdateID string
	lastList     service.ListUsersParams
}

func (m *mockUsers) Create(ctx context.Context, p service.CreateUserParams) (*models.User, error) {
	return m.createUser, m.createErr
}

func (m *mockUsers) List(ctx context.Context, p service.ListUsersParams) ([]models.User, int, error) {
	m.lastList = p
	return m.list, m.listTotal, m.listErr
}

func (m *mockUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.lastGetID = id
	return m.getUser, m.getErr
}

func (m *mockUsers) Update(ctx context.Context, id string, p service.UpdateUserParams) (*models.User, error) {
	m.lastUpdateID = id
	return m.updateUser, m.updateErr
}

func (m *mockUsers) Delete(ctx context.Context, id string) error { return m.deleteErr }

type mockArticles struct {
	createRes *models.Article
	createErr error
	list      []models.Article
	listTotal int
	listErr   error
	getRes    *models.Article
	getErr    error
	updateRes *models.Article
	updateErr error
	deleteErr error

	lastList service.ListArticlesParams
}

func (m *mockArticles) Create(ctx context.Context, p service.CreateArticleParams) (*models.Article, error) {
	return m.createRes, m.createErr
}

func (m *mockArticles) List(ctx context.Context, p service.ListArticlesParams) ([]models.Article, int, error) {
	m.lastList = p
	return m.list, m.listTotal, m.listErr
}

func (m *mockArticles) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return m.getRes, m.getErr
}

func (m *mockArticles) Update(ctx context.Context, id string, p service.UpdateArticleParams) (*models.Article, error) {
	return m.updateRes, m.updateErr
}

func (m *mockArticles) Delete(ctx context.Context, id string) error { return m.deleteErr }

type mockDiaries struct {
	createRes *models.Diary
	createErr error
	list      []models.Diary
	listTotal int
	listErr   error
	getRes    *models.Diary
	getErr    error
	updateRes *models.Diary
	updateErr error
	deleteErr error

	lastOwnerID     string
	lastRequesterID string
	lastList        service.ListDiariesParams
}

func (m *mockDiaries) Create(ctx context.Context, p service.CreateDiaryParams, ownerID string) (*models.Diary, error) {
	m.lastOwnerID = ownerID
	return m.createRes, m.createErr
}

func (m *mockDiaries) List(ctx context.Context, p service.ListDiariesParams) ([]models.Diary, int, error) {
	m.lastList = p
	return m.list, m.listTotal, m.listErr
}

func (m *mockDiaries) GetByID(ctx context.Context, id, requesterID string) (*models.Diary, error) {
	m.lastRequesterID = requesterID
	return m.getRes, m.getErr
}

func (m *mockDiaries) Update(ctx context.Context, id string, p service.UpdateDiaryParams, requesterID string) (*models.Diary, error) {
	m.lastRequesterID = requesterID
	return m.updateRes, m.updateErr
}

func (m *mockDiaries) Delete(ctx context.Context, id, requesterID string) error {
	m.lastRequesterID = requesterID
	return m.deleteErr
}

type mockMeals struct {
	createRes *models.Meal
	createErr error
	list      []models.Meal
	listTotal int
	listErr   error
	getRes    *models.Meal
	getErr    error
	updateRes *models.Meal
	updateErr error
	deleteErr error
}

func (m *mockMeals) Create(ctx context.Context, p service.CreateMealParams, ownerID string) (*models.Meal, error) {
	return m.createRes, m.createErr
}

func (m *mockMeals) List(ctx context.Context, p service.ListMealsParams) ([]models.Meal, int, error) {
	return m.list, m.listTotal, m.listErr
}

func (m *mockMeals) GetByID(ctx context.Context, id, requesterID string) (*models.Meal, error) {
	return m.getRes, m.getErr
}

func (m *mockMeals) Update(ctx context.Context, id string, p service.UpdateMealParams, requesterID string) (*models.Meal, error) {
	return m.updateRes, m.updateErr
}

func (m *mockMeals) Delete(ctx context.Context, id, requesterID string) error { return m.deleteErr }

type mockExercises struct {
	createRes *models.ExerciseRecord
	createErr error
	list      []models.ExerciseRecord
	listTotal int
	listErr   error
	getRes    *models.ExerciseRecord
	getErr    error
	updateRes *models.ExerciseRecord
	updateErr error
	deleteErr error
}

func (m *mockExercises) Create(ctx context.Context, p service.CreateExerciseParams, ownerID string) (*models.ExerciseRecord, error) {
	return m.createRes, m.createErr
}

func (m *mockExercises) List(ctx context.Context, p service.ListExercisesParams) ([]models.ExerciseRecord, int, error) {
	return m.list, m.listTotal, m.listErr
}

func (m *mockExercises) GetByID(ctx context.Context, id, requesterID string) (*models.ExerciseRecord, error) {
	return m.getRes, m.getErr
}

func (m *mockExercises) Update(ctx context.Context, id string, p service.UpdateExerciseParams, requesterID string) (*models.ExerciseRecord, error) {
	return m.updateRes, m.updateErr
}

func (m *mockExercises) Delete(ctx context.Context, id, requesterID string) error {
	return m.deleteErr
}

type mockMeasurements struct {
	createRes *models.BodyMeasurement
	createErr error
	list      []models.BodyMeasurement
	listTotal int
	listErr   error
	getRes    *models.BodyMeasurement
	getErr    error
	updateRes *models.BodyMeasurement
	updateErr error
	deleteErr error
	recent    models.RecentMeasurements
	recentErr error

	lastRecentUserID string
}

func (m *mockMeasurements) Create(ctx context.Context, p service.CreateMeasurementParams, ownerID string) (*models.BodyMeasurement, error) {
	return m.createRes, m.createErr
}

func (m *mockMeasurements) List(ctx context.Context, p service.ListMeasurementsParams) ([]models.BodyMeasurement, int, error) {
	return m.list, m.listTotal, m.listErr
}

func (m *mockMeasurements) GetByID(ctx context.Context, id, requesterID string) (*models.BodyMeasurement, error) {
	return m.getRes, m.getErr
}

func (m *mockMeasurements) Update(ctx context.Context, id string, p service.UpdateMeasurementParams, requesterID string) (*models.BodyMeasurement, error) {
	return m.updateRes, m.updateErr
}

func (m *mockMeasurements) Delete(ctx context.Context, id, requesterID string) error {
	return m.deleteErr
}

func (m *mockMeasurements) Recent(ctx context.Context, userID string) (models.RecentMeasurements, error) {
	m.lastRecentUserID = userID
	return m.recent, m.recentErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, Config{RatePerSecond: 1000, RateBurst: 1000})
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// userClaims returns parse claims for a token accepted by requireAuth.
func userClaims(id, role string) *service.Claims {
	return &service.Claims{UserID: id, Email: id + "@example.com", Role: role}
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

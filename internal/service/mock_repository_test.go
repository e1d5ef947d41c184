package service

import (
	"context"

	"healthtrack/internal/models"
	"healthtrack/internal/repository"
)

// Lightweight in-test mocks for the repository interfaces. Unset Fn fields
// make the call a no-op success.

type mockUsersRepo struct {
	CreateFn     func(u *models.User) error
	GetByIDFn    func(id string) (*models.User, error)
	GetByEmailFn func(email string) (*models.User, error)
	ListFn       func(f repository.UserFilter) ([]models.User, int, error)
	UpdateFn     func(u *models.User) error
	DeleteFn     func(id string) error
	SaveRecentFn func(userID string, rm models.RecentMeasurements) error

	createCalls     []*models.User
	saveRecentCalls []models.RecentMeasurements
	lastFilter      repository.UserFilter
}

func (m *mockUsersRepo) Create(_ context.Context, u *models.User) error {
	m.createCalls = append(m.createCalls, u)
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(u)
}

func (m *mockUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(id)
}

func (m *mockUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if m.GetByEmailFn == nil {
		return nil, nil
	}
	return m.GetByEmailFn(email)
}

func (m *mockUsersRepo) List(_ context.Context, f repository.UserFilter) ([]models.User, int, error) {
	m.lastFilter = f
	if m.ListFn == nil {
		return nil, 0, nil
	}
	return m.ListFn(f)
}

func (m *mockUsersRepo) Update(_ context.Context, u *models.User) error {
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(u)
}

func (m *mockUsersRepo) Delete(_ context.Context, id string) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(id)
}

func (m *mockUsersRepo) SaveRecentMeasurements(_ context.Context, userID string, rm models.RecentMeasurements) error {
	m.saveRecentCalls = append(m.saveRecentCalls, rm)
	if m.SaveRecentFn == nil {
		return nil
	}
	return m.SaveRecentFn(userID, rm)
}

type mockDiariesRepo struct {
	CreateFn  func(d *models.Diary) error
	GetByIDFn func(id string) (*models.Diary, error)
	ListFn    func(f repository.DiaryFilter) ([]models.Diary, int, error)
	UpdateFn  func(d *models.Diary) error
	DeleteFn  func(id string) error

	deleteCalls []string
}

func (m *mockDiariesRepo) Create(_ context.Context, d *models.Diary) error {
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(d)
}

func (m *mockDiariesRepo) GetByID(_ context.Context, id string) (*models.Diary, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(id)
}

func (m *mockDiariesRepo) List(_ context.Context, f repository.DiaryFilter) ([]models.Diary, int, error) {
	if m.ListFn == nil {
		return nil, 0, nil
	}
	return m.ListFn(f)
}

func (m *mockDiariesRepo) Update(_ context.Context, d *models.Diary) error {
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(d)
}

func (m *mockDiariesRepo) Delete(_ context.Context, id string) error {
	m.deleteCalls = append(m.deleteCalls, id)
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(id)
}

type mockMeasurementsRepo struct {
	CreateFn  func(b *models.BodyMeasurement) error
	GetByIDFn func(id string) (*models.BodyMeasurement, error)
	ListFn    func(f repository.MeasurementFilter) ([]models.BodyMeasurement, int, error)
	UpdateFn  func(b *models.BodyMeasurement) error
	DeleteFn  func(id string) error

	createCalls []*models.BodyMeasurement
}

func (m *mockMeasurementsRepo) Create(_ context.Context, b *models.BodyMeasurement) error {
	m.createCalls = append(m.createCalls, b)
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(b)
}

func (m *mockMeasurementsRepo) GetByID(_ context.Context, id string) (*models.BodyMeasurement, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(id)
}

func (m *mockMeasurementsRepo) List(_ context.Context, f repository.MeasurementFilter) ([]models.BodyMeasurement, int, error) {
	if m.ListFn == nil {
		return nil, 0, nil
	}
	return m.ListFn(f)
}

func (m *mockMeasurementsRepo) Update(_ context.Context, b *models.BodyMeasurement) error {
	if m.UpdateFn == nil {
		return nil
	}
	return m.UpdateFn(b)
}

func (m *mockMeasurementsRepo) Delete(_ context.Context, id string) error {
	if m.DeleteFn == nil {
		return nil
	}
	return m.DeleteFn(id)
}

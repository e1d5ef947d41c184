package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"healthtrack/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockUserRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewUserRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func userRow(id, email, userName string) *sqlmock.Rows {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "email", "user_name", "first_name", "last_name", "password_hash",
		"role", "phone", "is_verified", "recent_measurements", "created_at", "updated_at",
	}).AddRow(id, email, userName, "Alice", "Smith", "hash", models.RoleUser, nil, false, "[]", now, now)
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name       string
		mockExpect func(sqlmock.Sqlmock)
		wantErr    error
	}{
		{
			name: "success",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate email",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.email"))
			},
			wantErr: ErrDuplicate,
		},
		{
			name: "exec error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WillReturnError(errors.New("db exec failed"))
			},
			wantErr: errors.New("insert user"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			u := &models.User{Email: "a@b.com", UserName: "alice", PasswordHash: "hash", Role: models.RoleUser}
			err := repo.Create(context.Background(), u)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if u.ID == "" {
					t.Fatalf("expected generated id")
				}
				if u.CreatedAt.IsZero() || u.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps to be set")
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if errors.Is(tt.wantErr, ErrDuplicate) && !errors.Is(err, ErrDuplicate) {
				t.Fatalf("expected ErrDuplicate, got %v", err)
			}
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		mockExpect func(sqlmock.Sqlmock)
		wantNil    bool
		wantErr    bool
	}{
		{
			name:  "found",
			email: "a@b.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
					WithArgs("a@b.com").
					WillReturnRows(userRow("u1", "a@b.com", "alice"))
			},
		},
		{
			name:  "not found (ErrNoRows)",
			email: "missing@b.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
					WithArgs("missing@b.com").
					WillReturnError(sql.ErrNoRows)
			},
			wantNil: true,
		},
		{
			name:  "query error",
			email: "a@b.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByEmailSQL)).
					WithArgs("a@b.com").
					WillReturnError(errors.New("db query failed"))
			},
			wantNil: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			u, err := repo.GetByEmail(context.Background(), tt.email)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil {
				if u != nil {
					t.Fatalf("expected nil user, got %+v", u)
				}
				return
			}
			if u == nil || u.ID != "u1" || u.Email != "a@b.com" {
				t.Fatalf("unexpected user: %+v", u)
			}
			if u.RecentMeasurements == nil || len(u.RecentMeasurements) != 0 {
				t.Fatalf("expected empty recent list, got %+v", u.RecentMeasurements)
			}
		})
	}
}

func TestUserRepository_List_Filters(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM users WHERE (lower(first_name) LIKE ? OR lower(last_name) LIKE ? OR lower(email) LIKE ?) AND role = ?")).
		WithArgs("%ali%", "%ali%", "%ali%", models.RoleUser).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT "+userColumns+" FROM users WHERE (lower(first_name) LIKE ? OR lower(last_name) LIKE ? OR lower(email) LIKE ?) AND role = ? ORDER BY created_at DESC LIMIT ? OFFSET ?")).
		WithArgs("%ali%", "%ali%", "%ali%", models.RoleUser, 10, 0).
		WillReturnRows(userRow("u1", "a@b.com", "alice"))

	out, total, err := repo.List(context.Background(), UserFilter{
		Search: "Ali",
		Role:   models.RoleUser,
		Page:   Page{Skip: 0, Limit: 10},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(out) != 1 || out[0].ID != "u1" {
		t.Fatalf("unexpected result: total=%d out=%+v", total, out)
	}
}

func TestUserRepository_SaveRecentMeasurements(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(updateUserRecentSQL)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		rm := models.RecentMeasurements{{ID: 1, Date: time.Now().UTC(), WeightKg: 80}}
		if err := repo.SaveRecentMeasurements(context.Background(), "u1", rm); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(updateUserRecentSQL)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SaveRecentMeasurements(context.Background(), "missing", nil)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

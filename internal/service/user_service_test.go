package service

import (
	"context"
	"testing"

	"healthtrack/internal/apperr"
	"healthtrack/internal/models"
	"healthtrack/internal/repository"
)

func validCreateUserParams() CreateUserParams {
	return CreateUserParams{
		Email:     "a@b.com",
		UserName:  "alice",
		FirstName: "Alice",
		LastName:  "Smith",
		Password:  "secret1",
	}
}

func TestUserService_Create_HashesPasswordAndDefaultsRole(t *testing.T) {
	repo := &mockUsersRepo{}
	svc := NewUserService(repo)

	u, err := svc.Create(context.Background(), validCreateUserParams())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if u.Role != models.RoleUser {
		t.Fatalf("expected default role USER, got %q", u.Role)
	}
	if len(repo.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(repo.createCalls))
	}
	stored := repo.createCalls[0]
	if stored.PasswordHash == "secret1" {
		t.Fatalf("password stored unhashed")
	}
	if err := verifyPassword(stored.PasswordHash, "secret1"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CreateUserParams)
		wantField string
	}{
		{"bad email", func(p *CreateUserParams) { p.Email = "not-an-email" }, "email"},
		{"short username", func(p *CreateUserParams) { p.UserName = "ab" }, "userName"},
		{"short password", func(p *CreateUserParams) { p.Password = "12345" }, "password"},
		{"bad phone", func(p *CreateUserParams) { p.Phone = "abc!" }, "phone"},
		{"unknown role", func(p *CreateUserParams) { p.Role = "ROOT" }, "role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUsersRepo{}
			svc := NewUserService(repo)

			p := validCreateUserParams()
			tt.mutate(&p)
			_, err := svc.Create(context.Background(), p)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			e := apperr.From(err)
			if e.Kind != apperr.KindValidation {
				t.Fatalf("expected validation kind, got %v", e.Kind)
			}
			found := false
			for _, fe := range e.Fields {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected field error for %q, got %+v", tt.wantField, e.Fields)
			}
			if len(repo.createCalls) != 0 {
				t.Fatalf("repo must not be called on validation failure")
			}
		})
	}
}

func TestUserService_Create_Conflicts(t *testing.T) {
	t.Run("pre-check", func(t *testing.T) {
		repo := &mockUsersRepo{
			GetByEmailFn: func(string) (*models.User, error) {
				return &models.User{ID: "u1", Email: "a@b.com"}, nil
			},
		}
		svc := NewUserService(repo)

		_, err := svc.Create(context.Background(), validCreateUserParams())
		e := apperr.From(err)
		if e.Kind != apperr.KindConflict || e.Message != "User already exists" {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("duplicate on insert", func(t *testing.T) {
		repo := &mockUsersRepo{
			CreateFn: func(*models.User) error { return repository.ErrDuplicate },
		}
		svc := NewUserService(repo)

		_, err := svc.Create(context.Background(), validCreateUserParams())
		e := apperr.From(err)
		if e.Kind != apperr.KindConflict {
			t.Fatalf("expected conflict on duplicate insert, got %v", err)
		}
	})
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc := NewUserService(&mockUsersRepo{})

	_, err := svc.GetByID(context.Background(), "missing")
	e := apperr.From(err)
	if e.Kind != apperr.KindNotFound || e.Message != "User not found" {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUserService_Update_EmailUniqueness(t *testing.T) {
	current := &models.User{ID: "u1", Email: "old@b.com", UserName: "alice", FirstName: "Alice", LastName: "Smith"}

	t.Run("taken email conflicts", func(t *testing.T) {
		repo := &mockUsersRepo{
			GetByIDFn: func(string) (*models.User, error) { c := *current; return &c, nil },
			GetByEmailFn: func(email string) (*models.User, error) {
				return &models.User{ID: "u2", Email: email}, nil
			},
		}
		svc := NewUserService(repo)

		email := "taken@b.com"
		_, err := svc.Update(context.Background(), "u1", UpdateUserParams{Email: &email})
		e := apperr.From(err)
		if e.Kind != apperr.KindConflict || e.Message != "Email already exists" {
			t.Fatalf("expected email conflict, got %v", err)
		}
	})

	t.Run("username collision at write", func(t *testing.T) {
		// The pre-check only covers email; a taken username surfaces as a
		// duplicate from the store and the message must not blame the email.
		repo := &mockUsersRepo{
			GetByIDFn: func(string) (*models.User, error) { c := *current; return &c, nil },
			UpdateFn:  func(*models.User) error { return repository.ErrDuplicate },
		}
		svc := NewUserService(repo)

		name := "taken-name"
		_, err := svc.Update(context.Background(), "u1", UpdateUserParams{UserName: &name})
		e := apperr.From(err)
		if e.Kind != apperr.KindConflict || e.Message != "Email or username already exists" {
			t.Fatalf("expected general uniqueness conflict, got %v", err)
		}
	})

	t.Run("free email applies", func(t *testing.T) {
		repo := &mockUsersRepo{
			GetByIDFn: func(string) (*models.User, error) { c := *current; return &c, nil },
		}
		svc := NewUserService(repo)

		email := "new@b.com"
		first := "Alicia"
		u, err := svc.Update(context.Background(), "u1", UpdateUserParams{Email: &email, FirstName: &first})
		if err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
		if u.Email != "new@b.com" || u.FirstName != "Alicia" || u.LastName != "Smith" {
			t.Fatalf("patch misapplied: %+v", u)
		}
	})
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	current := &models.User{ID: "u1", Email: "a@b.com", PasswordHash: "old-hash"}
	repo := &mockUsersRepo{
		GetByIDFn: func(string) (*models.User, error) { c := *current; return &c, nil },
	}
	svc := NewUserService(repo)

	pw := "newsecret"
	u, err := svc.Update(context.Background(), "u1", UpdateUserParams{Password: &pw})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if u.PasswordHash == "old-hash" || u.PasswordHash == pw {
		t.Fatalf("password not rehashed")
	}
	if err := verifyPassword(u.PasswordHash, pw); err != nil {
		t.Fatalf("new hash does not verify: %v", err)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc := NewUserService(&mockUsersRepo{})

	err := svc.Delete(context.Background(), "missing")
	if apperr.From(err).Kind != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

package service

import (
	"context"
	"errors"

	"healthtrack/internal/apperr"
	"healthtrack/internal/models"
	"healthtrack/internal/repository"
)

type CreateUserParams struct {
	Email     string
	UserName  string
	FirstName string
	LastName  string
	Password  string
	Phone     string
	Role      string // optional, defaults to USER
}

func (p CreateUserParams) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	checkEmail(&errs, "email", p.Email)
	checkLenBounds(&errs, "userName", p.UserName, 3, 30)
	checkLenBounds(&errs, "firstName", p.FirstName, 2, 50)
	checkLenBounds(&errs, "lastName", p.LastName, 2, 50)
	checkLenBounds(&errs, "password", p.Password, 6, 0)
	checkPhone(&errs, "phone", p.Phone)
	checkEnum(&errs, "role", p.Role, models.ValidRole)
	return errs
}

type ListUsersParams struct {
	Page   int
	Limit  int
	Search string
	Role   string
}

// UpdateUserParams is a partial patch: nil fields are left untouched.
type UpdateUserParams struct {
	Email     *string
	UserName  *string
	FirstName *string
	LastName  *string
	Password  *string
	Phone     *string
}

func (p UpdateUserParams) validate() []apperr.FieldError {
	var errs []apperr.FieldError
	if p.Email != nil {
		checkEmail(&errs, "email", *p.Email)
	}
	if p.UserName != nil {
		checkLenBounds(&errs, "userName", *p.UserName, 3, 30)
	}
	if p.FirstName != nil {
		checkLenBounds(&errs, "firstName", *p.FirstName, 2, 50)
	}
	if p.LastName != nil {
		checkLenBounds(&errs, "lastName", *p.LastName, 2, 50)
	}
	if p.Password != nil {
		checkLenBounds(&errs, "password", *p.Password, 6, 0)
	}
	if p.Phone != nil {
		checkPhone(&errs, "phone", *p.Phone)
	}
	return errs
}

type UserService struct {
	repo repository.Users
}

func NewUserService(repo repository.Users) *UserService {
	return &UserService{repo: repo}
}

// Create registers a new user with a hashed password. The email must not be
// registered yet.
func (s *UserService) Create(ctx context.Context, p CreateUserParams) (*models.User, error) {
	if errs := p.validate(); len(errs) > 0 {
		return nil, apperr.Validation(errs...)
	}

	existing, err := s.repo.GetByEmail(ctx, p.Email)
	if err != nil {
		return nil, apperr.Internal("Error creating user", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("User already exists")
	}

	hash, err := hashPassword(p.Password)
	if err != nil {
		return nil, apperr.Internal("Error creating user", err)
	}

	role := p.Role
	if role == "" {
		role = models.RoleUser
	}

	u := &models.User{
		Email:        p.Email,
		UserName:     p.UserName,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		PasswordHash: hash,
		Role:         role,
		Phone:        p.Phone,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		// The uniqueness pre-check and the insert are not one transaction;
		// a concurrent insert still surfaces as a duplicate here.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("User already exists")
		}
		return nil, apperr.Internal("Error creating user", err)
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context, p ListUsersParams) ([]models.User, int, error) {
	users, total, err := s.repo.List(ctx, repository.UserFilter{
		Search: p.Search,
		Role:   p.Role,
		Page:   pageWindow(p.Page, p.Limit),
	})
	if err != nil {
		return nil, 0, apperr.Internal("Error listing users", err)
	}
	return users, total, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Error loading user", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

// GetByEmail returns the user including the password hash; auth only.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal("Error loading user", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

// Update applies a partial patch. A changed email is re-checked for
// uniqueness against all other rows before committing.
func (s *UserService) Update(ctx context.Context, id string, p UpdateUserParams) (*models.User, error) {
	if errs := p.validate(); len(errs) > 0 {
		return nil, apperr.Validation(errs...)
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Email != nil && *p.Email != u.Email {
		other, err := s.repo.GetByEmail(ctx, *p.Email)
		if err != nil {
			return nil, apperr.Internal("Error updating user", err)
		}
		if other != nil {
			return nil, apperr.Conflict("Email already exists")
		}
		u.Email = *p.Email
	}
	if p.UserName != nil {
		u.UserName = *p.UserName
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Password != nil {
		hash, err := hashPassword(*p.Password)
		if err != nil {
			return nil, apperr.Internal("Error updating user", err)
		}
		u.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, u); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			// deleted between the existence check and the write
			return nil, apperr.NotFound("User not found")
		case errors.Is(err, repository.ErrDuplicate):
			// email or user_name unique index; the store does not say which
			return nil, apperr.Conflict("Email or username already exists")
		default:
			return nil, apperr.Internal("Error updating user", err)
		}
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("User not found")
		}
		return apperr.Internal("Error deleting user", err)
	}
	return nil
}

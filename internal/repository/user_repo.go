package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"healthtrack/internal/models"

	"github.com/google/uuid"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	userColumns = `id, email, user_name, first_name, last_name, password_hash, role, phone, is_verified, recent_measurements, created_at, updated_at`

	insertUserSQL = `INSERT INTO users (id, email, user_name, first_name, last_name, password_hash, role, phone, is_verified, recent_measurements, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectUserByIDSQL    = `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	selectUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	updateUserSQL = `UPDATE users SET email = ?, user_name = ?, first_name = ?, last_name = ?, password_hash = ?, role = ?, phone = ?, is_verified = ?, updated_at = ? WHERE id = ?`

	updateUserRecentSQL = `UPDATE users SET recent_measurements = ?, updated_at = ? WHERE id = ?`

	deleteUserSQL = `DELETE FROM users WHERE id = ?`
)

// Create inserts a new user, assigning ID and timestamps when unset.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	if u.RecentMeasurements == nil {
		u.RecentMeasurements = models.RecentMeasurements{}
	}

	recentJSON, err := json.Marshal(u.RecentMeasurements)
	if err != nil {
		return fmt.Errorf("marshal recent measurements: %w", err)
	}

	_, err = r.db.ExecContext(ctx, insertUserSQL,
		u.ID, u.Email, u.UserName, u.FirstName, u.LastName, u.PasswordHash,
		u.Role, nullStr(u.Phone), u.IsVerified, string(recentJSON),
		fmtTime(u.CreatedAt), fmtTime(u.UpdatedAt),
	)
	return translateErr("insert user", err)
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, selectUserByIDSQL, id)
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUserByEmailSQL, email)
}

func (r *UserRepository) getOne(ctx context.Context, query, arg string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

// List returns a page of users plus the total count matching the filter.
func (r *UserRepository) List(ctx context.Context, f UserFilter) ([]models.User, int, error) {
	var (
		conds []string
		args  []any
	)
	if f.Search != "" {
		conds = append(conds, "(lower(first_name) LIKE ? OR lower(last_name) LIKE ? OR lower(email) LIKE ?)")
		pat := likePattern(f.Search)
		args = append(args, pat, pat, pat)
	}
	if f.Role != "" {
		conds = append(conds, "role = ?")
		args = append(args, f.Role)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	q := "SELECT " + userColumns + " FROM users" + where + " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, q, append(args, f.Page.Limit, f.Page.Skip)...)
	if err != nil {
		return nil, 0, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, f.Page.Limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate users: %w", err)
	}
	return out, total, nil
}

// Update writes the whitelisted mutable fields of an existing user.
func (r *UserRepository) Update(ctx context.Context, u *models.User) error {
	u.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, updateUserSQL,
		u.Email, u.UserName, u.FirstName, u.LastName, u.PasswordHash,
		u.Role, nullStr(u.Phone), u.IsVerified, fmtTime(u.UpdatedAt), u.ID,
	)
	if err != nil {
		return translateErr("update user", err)
	}
	return checkAffected("update user", res)
}

// Delete removes a user row. Missing rows report ErrNotFound.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		return translateErr("delete user", err)
	}
	return checkAffected("delete user", res)
}

// SaveRecentMeasurements overwrites the user's bounded recent-measurements
// cache. Last write wins for concurrent writers of the same user.
func (r *UserRepository) SaveRecentMeasurements(ctx context.Context, userID string, rm models.RecentMeasurements) error {
	if rm == nil {
		rm = models.RecentMeasurements{}
	}
	b, err := json.Marshal(rm)
	if err != nil {
		return fmt.Errorf("marshal recent measurements: %w", err)
	}
	res, err := r.db.ExecContext(ctx, updateUserRecentSQL, string(b), fmtTime(time.Now()), userID)
	if err != nil {
		return translateErr("update recent measurements", err)
	}
	return checkAffected("update recent measurements", res)
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*models.User, error) {
	var (
		u          models.User
		phone      sql.NullString
		recentJSON string
	)
	err := s.Scan(&u.ID, &u.Email, &u.UserName, &u.FirstName, &u.LastName,
		&u.PasswordHash, &u.Role, &phone, &u.IsVerified, &recentJSON,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Phone = strValue(phone)
	u.RecentMeasurements = models.RecentMeasurements{}
	if recentJSON != "" {
		if err := json.Unmarshal([]byte(recentJSON), &u.RecentMeasurements); err != nil {
			return nil, fmt.Errorf("unmarshal recent measurements: %w", err)
		}
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}

// likePattern builds a case-insensitive substring LIKE pattern.
func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

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

type MeasurementRepository struct {
	db *sql.DB
}

func NewMeasurementRepository(db *sql.DB) *MeasurementRepository {
	return &MeasurementRepository{db: db}
}

var _ BodyMeasurements = (*MeasurementRepository)(nil)

const (
	measurementColumns = `id, user_id, measurement_date, weight_kg, body_fat_percentage, created_at, updated_at`

	insertMeasurementSQL = `INSERT INTO body_measurements (id, user_id, measurement_date, weight_kg, body_fat_percentage, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	selectMeasurementByIDSQL = `SELECT ` + measurementColumns + ` FROM body_measurements WHERE id = ?`

	updateMeasurementSQL = `UPDATE body_measurements SET measurement_date = ?, weight_kg = ?, body_fat_percentage = ?, updated_at = ? WHERE id = ?`

	deleteMeasurementSQL = `DELETE FROM body_measurements WHERE id = ?`
)

func (r *MeasurementRepository) Create(ctx context.Context, b *models.BodyMeasurement) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, insertMeasurementSQL,
		b.ID, b.UserID, fmtTime(b.MeasurementDate), b.WeightKg,
		nullFloat(b.BodyFatPercentage), fmtTime(b.CreatedAt), fmtTime(b.UpdatedAt),
	)
	return translateErr("insert body measurement", err)
}

// GetByID fetches a body measurement by id. Returns (nil, nil) if not found.
func (r *MeasurementRepository) GetByID(ctx context.Context, id string) (*models.BodyMeasurement, error) {
	b, err := scanMeasurement(r.db.QueryRowContext(ctx, selectMeasurementByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select body measurement: %w", err)
	}
	return b, nil
}

// List returns a page of measurements ordered by measurement date
// descending, plus the total count matching the filter.
func (r *MeasurementRepository) List(ctx context.Context, f MeasurementFilter) ([]models.BodyMeasurement, int, error) {
	var (
		conds []string
		args  []any
	)
	if f.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, f.UserID)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM body_measurements"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count body measurements: %w", err)
	}

	q := "SELECT " + measurementColumns + " FROM body_measurements" + where + " ORDER BY measurement_date DESC LIMIT ? OFFSET ?"
	rows, err := r.db.QueryContext(ctx, q, append(args, f.Page.Limit, f.Page.Skip)...)
	if err != nil {
		return nil, 0, fmt.Errorf("select body measurements: %w", err)
	}
	defer rows.Close()

	out := make([]models.BodyMeasurement, 0, f.Page.Limit)
	for rows.Next() {
		b, err := scanMeasurement(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan body measurement: %w", err)
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate body measurements: %w", err)
	}
	return out, total, nil
}

func (r *MeasurementRepository) Update(ctx context.Context, b *models.BodyMeasurement) error {
	b.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, updateMeasurementSQL,
		fmtTime(b.MeasurementDate), b.WeightKg, nullFloat(b.BodyFatPercentage),
		fmtTime(b.UpdatedAt), b.ID,
	)
	if err != nil {
		return translateErr("update body measurement", err)
	}
	return checkAffected("update body measurement", res)
}

func (r *MeasurementRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteMeasurementSQL, id)
	if err != nil {
		return translateErr("delete body measurement", err)
	}
	return checkAffected("delete body measurement", res)
}

func scanMeasurement(s scanner) (*models.BodyMeasurement, error) {
	var (
		b       models.BodyMeasurement
		bodyFat sql.NullFloat64
	)
	err := s.Scan(&b.ID, &b.UserID, &b.MeasurementDate, &b.WeightKg, &bodyFat,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.BodyFatPercentage = floatPtr(bodyFat)
	b.MeasurementDate = b.MeasurementDate.UTC()
	b.CreatedAt = b.CreatedAt.UTC()
	b.UpdatedAt = b.UpdatedAt.UTC()
	return &b, nil
}

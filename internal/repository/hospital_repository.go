package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hospital-staff-service/internal/domain"
)

// HospitalRepository defines persistence access for hospital records.
type HospitalRepository interface {
	Create(ctx context.Context, hospital *domain.Hospital) error
	GetByID(ctx context.Context, id string) (*domain.Hospital, error)
	GetByAdminEmail(ctx context.Context, email string) (*domain.Hospital, error)
}

type hospitalRepository struct {
	pool *pgxpool.Pool
}

// NewHospitalRepository returns a Postgres-backed implementation.
func NewHospitalRepository(pool *pgxpool.Pool) HospitalRepository {
	return &hospitalRepository{pool: pool}
}

func (r *hospitalRepository) Create(ctx context.Context, hospital *domain.Hospital) error {
	const query = `
        INSERT INTO hospitals (id, name, location, staff_size, admin_email, password_hash)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		hospital.ID,
		hospital.Name,
		hospital.Location,
		hospital.StaffSize,
		hospital.AdminEmail,
		hospital.PasswordHash,
	).Scan(&hospital.CreatedAt, &hospital.UpdatedAt)
	return mapPgError(err)
}

func (r *hospitalRepository) GetByID(ctx context.Context, id string) (*domain.Hospital, error) {
	const query = `
        SELECT id, name, location, staff_size, admin_email, password_hash, created_at, updated_at
        FROM hospitals WHERE id=$1`

	var hospital domain.Hospital
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&hospital.ID,
		&hospital.Name,
		&hospital.Location,
		&hospital.StaffSize,
		&hospital.AdminEmail,
		&hospital.PasswordHash,
		&hospital.CreatedAt,
		&hospital.UpdatedAt,
	); err != nil {
		return nil, mapPgError(err)
	}
	return &hospital, nil
}

func (r *hospitalRepository) GetByAdminEmail(ctx context.Context, email string) (*domain.Hospital, error) {
	const query = `
        SELECT id, name, location, staff_size, admin_email, password_hash, created_at, updated_at
        FROM hospitals WHERE admin_email=$1`

	var hospital domain.Hospital
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&hospital.ID,
		&hospital.Name,
		&hospital.Location,
		&hospital.StaffSize,
		&hospital.AdminEmail,
		&hospital.PasswordHash,
		&hospital.CreatedAt,
		&hospital.UpdatedAt,
	); err != nil {
		return nil, mapPgError(err)
	}
	return &hospital, nil
}

// mapPgError translates driver errors into repository sentinels.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateEmail
	}
	return err
}

package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"brokerage/internal/entities"
	"brokerage/internal/repository"
	"brokerage/internal/service/auth"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userEntity entities.User) (*entities.User, error) {
	userModel := FromDomain(&userEntity)
	query := `
		INSERT INTO users (email, password_hash, first_name, last_name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, password_hash, first_name, last_name, role, created_at
	`

	var createdModel UserDB
	err := r.querier.QueryRow(
		ctx,
		query,
		userModel.Email,
		userModel.PasswordHash,
		userModel.FirstName,
		userModel.LastName,
		userModel.Role,
	).Scan(
		&createdModel.ID,
		&createdModel.Email,
		&createdModel.PasswordHash,
		&createdModel.FirstName,
		&createdModel.LastName,
		&createdModel.Role,
		&createdModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, auth.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return ToDomain(&createdModel), nil
}

func (r *Repository) GetByID(ctx context.Context, userID int64) (*entities.User, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, role, created_at
		FROM users
		WHERE id = $1
	`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&userModel.ID,
		&userModel.Email,
		&userModel.PasswordHash,
		&userModel.FirstName,
		&userModel.LastName,
		&userModel.Role,
		&userModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyid error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) UpdateRole(ctx context.Context, userID int64, role entities.RoleType) (*entities.User, error) {
	query := `
		UPDATE users
		SET role = $2
		WHERE id = $1
		RETURNING id, email, password_hash, first_name, last_name, role, created_at
	`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, userID, role.String()).Scan(
		&userModel.ID,
		&userModel.Email,
		&userModel.PasswordHash,
		&userModel.FirstName,
		&userModel.LastName,
		&userModel.Role,
		&userModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository updaterole error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, role, created_at
		FROM users
		WHERE email = $1
	`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, email).Scan(
		&userModel.ID,
		&userModel.Email,
		&userModel.PasswordHash,
		&userModel.FirstName,
		&userModel.LastName,
		&userModel.Role,
		&userModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository getbyemail error: %w", err)
	}

	return ToDomain(&userModel), nil
}

package storage

import (
	"context"
	"database/sql"

	"cohera-backend/internal/models"
)

// FindUserByEmail returns nil, nil when no user has the given email. Login
// relies on that: a miss and a bad password must be indistinguishable to the
// caller of the HTTP API, so the storage layer does not manufacture an error
// for it.
func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT user_id, org_id, full_name, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`

	var user models.User
	if err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.OrgID,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (s *Storage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT user_id, org_id, full_name, email, password_hash, role, created_at
		FROM users
		WHERE user_id = $1
	`

	var user models.User
	if err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.OrgID,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// CreateUser inserts a single user into an existing organization. The
// registration flow does not use this; it runs both inserts inside
// RegisterTenant so they commit or roll back together.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (org_id, full_name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		user.OrgID, user.FullName, user.Email, user.PasswordHash, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}

	return nil
}

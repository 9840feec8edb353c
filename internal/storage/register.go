package storage

import (
	"context"
	"fmt"

	"cohera-backend/internal/models"
)

// RegisterTenant provisions a new organization together with its first
// admin user in one transaction. Either both rows become visible or
// neither does; a duplicate email rolls the organization insert back and
// surfaces as ErrEmailTaken. Concurrent registrations with the same email
// are decided by the unique constraint on users.email, so exactly one wins.
func (s *Storage) RegisterTenant(ctx context.Context, companyName, fullName, email, passwordHash string) (*models.Organization, *models.User, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin registration: %w", err)
	}
	defer tx.Rollback()

	org := models.Organization{CompanyName: companyName}
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO organizations (company_name)
		VALUES ($1)
		RETURNING org_id, created_at
	`, companyName).Scan(&org.ID, &org.CreatedAt); err != nil {
		return nil, nil, fmt.Errorf("insert organization: %w", err)
	}

	user := models.User{
		OrgID:        org.ID,
		FullName:     fullName,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
	}
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO users (org_id, full_name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, created_at
	`, user.OrgID, user.FullName, user.Email, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, fmt.Errorf("insert admin user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit registration: %w", err)
	}

	return &org, &user, nil
}

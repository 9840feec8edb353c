package storage

import (
	"context"
	"database/sql"

	"cohera-backend/internal/models"
)

func (s *Storage) CreateOrganization(ctx context.Context, companyName string) (*models.Organization, error) {
	query := `
		INSERT INTO organizations (company_name)
		VALUES ($1)
		RETURNING org_id, created_at
	`

	org := models.Organization{CompanyName: companyName}
	if err := s.db.QueryRowContext(ctx, query, companyName).
		Scan(&org.ID, &org.CreatedAt); err != nil {
		return nil, err
	}

	return &org, nil
}

func (s *Storage) GetOrganization(ctx context.Context, id int64) (*models.Organization, error) {
	query := `
		SELECT org_id, company_name, created_at
		FROM organizations
		WHERE org_id = $1
	`

	var org models.Organization
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&org.ID, &org.CompanyName, &org.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrOrgNotFound
	}
	if err != nil {
		return nil, err
	}

	return &org, nil
}

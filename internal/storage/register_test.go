package storage

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return New(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestRegisterTenantCreatesOrgAndAdmin(t *testing.T) {
	store, mock := newTestStorage(t)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO organizations")).
		WithArgs("Acme Ltd").
		WillReturnRows(sqlmock.NewRows([]string{"org_id", "created_at"}).AddRow(int64(42), now))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(int64(42), "Mary Major", "mary@acme.test", "$2a$10$hash", "admin").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "created_at"}).AddRow(int64(7), now))
	mock.ExpectCommit()

	org, user, err := store.RegisterTenant(context.Background(), "Acme Ltd", "Mary Major", "mary@acme.test", "$2a$10$hash")
	require.NoError(t, err)

	assert.Equal(t, int64(42), org.ID)
	assert.Equal(t, "Acme Ltd", org.CompanyName)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, org.ID, user.OrgID)
	assert.Equal(t, "admin", string(user.Role))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterTenantRollsBackOnDuplicateEmail(t *testing.T) {
	store, mock := newTestStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO organizations")).
		WithArgs("Acme Ltd").
		WillReturnRows(sqlmock.NewRows([]string{"org_id", "created_at"}).AddRow(int64(42), time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	org, user, err := store.RegisterTenant(context.Background(), "Acme Ltd", "Mary Major", "taken@acme.test", "$2a$10$hash")
	require.ErrorIs(t, err, ErrEmailTaken)
	assert.Nil(t, org)
	assert.Nil(t, user)

	// The rollback expectation is what proves no orphan organization
	// survives the failed user insert.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterTenantRollsBackOnOrgInsertFailure(t *testing.T) {
	store, mock := newTestStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO organizations")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, _, err := store.RegisterTenant(context.Background(), "Acme Ltd", "Mary Major", "mary@acme.test", "$2a$10$hash")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)

	assert.NoError(t, mock.ExpectationsWereMet())
}

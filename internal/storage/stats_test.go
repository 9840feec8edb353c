package storage

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountClientsScopesByOrg(t *testing.T) {
	store, mock := newTestStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM clients WHERE org_id = $1`)).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := store.CountClients(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountOpenIssuesFiltersStatus(t *testing.T) {
	store, mock := newTestStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM issues WHERE org_id = $1 AND status = 'Open'`)).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := store.CountOpenIssues(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssigneeCountsScopeByOrgAndUser(t *testing.T) {
	store, mock := newTestStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM clients WHERE org_id = $1 AND assigned_to_user_id = $2`)).
		WithArgs(int64(10), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM issues WHERE org_id = $1 AND assigned_to_user_id = $2 AND status = 'Open'`)).
		WithArgs(int64(10), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	clients, err := store.CountClientsAssignedTo(context.Background(), 10, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, clients)

	// Zero is a normal result, not an error.
	issues, err := store.CountOpenIssuesAssignedTo(context.Background(), 10, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, issues)

	assert.NoError(t, mock.ExpectationsWereMet())
}

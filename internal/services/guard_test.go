package services

import (
	"context"
	"testing"

	"github.com/dimitrije/collabstore-api/internal/database"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAccessGuard(t *testing.T) (*AccessGuard, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewAccessGuard(NewWorkspaceService(db)), mock
}

func expectWorkspaceExists(mock pgxmock.PgxPoolIface, workspaceID uuid.UUID, exists bool) {
	rows := pgxmock.NewRows([]string{"exists"}).AddRow(exists)
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM workspaces WHERE id`).
		WithArgs(workspaceID).
		WillReturnRows(rows)
}

func expectMembership(mock pgxmock.PgxPoolIface, workspaceID, userID uuid.UUID, isMember bool) {
	rows := pgxmock.NewRows([]string{"exists"}).AddRow(isMember)
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM workspace_members`).
		WithArgs(workspaceID, userID).
		WillReturnRows(rows)
}

func TestAccessGuard_AuthorizeWrite_Member(t *testing.T) {
	guard, mock := setupAccessGuard(t)
	ctx := context.Background()
	workspaceID := uuid.New()
	userID := uuid.New()

	expectWorkspaceExists(mock, workspaceID, true)
	expectMembership(mock, workspaceID, userID, true)

	err := guard.AuthorizeWrite(ctx, userID, workspaceID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessGuard_AuthorizeWrite_UnknownWorkspace(t *testing.T) {
	guard, mock := setupAccessGuard(t)
	ctx := context.Background()
	workspaceID := uuid.New()
	userID := uuid.New()

	expectWorkspaceExists(mock, workspaceID, false)

	err := guard.AuthorizeWrite(ctx, userID, workspaceID)

	assert.ErrorIs(t, err, ErrUnknownWorkspace)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessGuard_AuthorizeWrite_NonMember(t *testing.T) {
	guard, mock := setupAccessGuard(t)
	ctx := context.Background()
	workspaceID := uuid.New()
	userID := uuid.New()

	expectWorkspaceExists(mock, workspaceID, true)
	expectMembership(mock, workspaceID, userID, false)

	err := guard.AuthorizeWrite(ctx, userID, workspaceID)

	assert.ErrorIs(t, err, ErrNotEnoughPermissions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessGuard_AuthorizeRead_Member(t *testing.T) {
	guard, mock := setupAccessGuard(t)
	ctx := context.Background()
	workspaceID := uuid.New()
	userID := uuid.New()

	expectWorkspaceExists(mock, workspaceID, true)
	expectMembership(mock, workspaceID, userID, true)

	err := guard.AuthorizeRead(ctx, userID, workspaceID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccessGuard_AuthorizeRead_NonMember(t *testing.T) {
	guard, mock := setupAccessGuard(t)
	ctx := context.Background()
	workspaceID := uuid.New()
	userID := uuid.New()

	expectWorkspaceExists(mock, workspaceID, true)
	expectMembership(mock, workspaceID, userID, false)

	err := guard.AuthorizeRead(ctx, userID, workspaceID)

	assert.ErrorIs(t, err, ErrNotEnoughPermissions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Membership is consulted on every call, never cached: revoking a member
// takes effect on their next request.
func TestAccessGuard_RecheckedPerRequest(t *testing.T) {
	guard, mock := setupAccessGuard(t)
	ctx := context.Background()
	workspaceID := uuid.New()
	userID := uuid.New()

	expectWorkspaceExists(mock, workspaceID, true)
	expectMembership(mock, workspaceID, userID, true)
	require.NoError(t, guard.AuthorizeWrite(ctx, userID, workspaceID))

	expectWorkspaceExists(mock, workspaceID, true)
	expectMembership(mock, workspaceID, userID, false)
	err := guard.AuthorizeWrite(ctx, userID, workspaceID)

	assert.ErrorIs(t, err, ErrNotEnoughPermissions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package testutil

import (
	"context"

	"github.com/dimitrije/collabstore-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCollabService mocks the CollabService
type MockCollabService struct {
	mock.Mock
}

func (m *MockCollabService) Insert(ctx context.Context, obj *models.CollabObject) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *MockCollabService) Get(ctx context.Context, objectID string, expectedType models.CollabType) (*models.CollabObject, error) {
	args := m.Called(ctx, objectID, expectedType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CollabObject), args.Error(1)
}

func (m *MockCollabService) GetWorkspaceID(ctx context.Context, objectID string) (uuid.UUID, error) {
	args := m.Called(ctx, objectID)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCollabService) Tombstone(ctx context.Context, objectID string) error {
	args := m.Called(ctx, objectID)
	return args.Error(0)
}

// MockDeletionService mocks the DeletionService
type MockDeletionService struct {
	mock.Mock
}

func (m *MockDeletionService) Delete(ctx context.Context, objectID string, deletedBy uuid.UUID) error {
	args := m.Called(ctx, objectID, deletedBy)
	return args.Error(0)
}

func (m *MockDeletionService) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.CollabDeletion, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CollabDeletion), args.Error(1)
}

// MockAccessGuard mocks the AccessGuard
type MockAccessGuard struct {
	mock.Mock
}

func (m *MockAccessGuard) AuthorizeRead(ctx context.Context, userID, workspaceID uuid.UUID) error {
	args := m.Called(ctx, userID, workspaceID)
	return args.Error(0)
}

func (m *MockAccessGuard) AuthorizeWrite(ctx context.Context, userID, workspaceID uuid.UUID) error {
	args := m.Called(ctx, userID, workspaceID)
	return args.Error(0)
}

// MockWorkspaceService mocks the WorkspaceService
type MockWorkspaceService struct {
	mock.Mock
}

func (m *MockWorkspaceService) Create(ctx context.Context, name string, ownerID uuid.UUID) (*models.Workspace, error) {
	args := m.Called(ctx, name, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workspace), args.Error(1)
}

func (m *MockWorkspaceService) GetByID(ctx context.Context, workspaceID uuid.UUID) (*models.Workspace, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workspace), args.Error(1)
}

func (m *MockWorkspaceService) GetUserWorkspaces(ctx context.Context, userID uuid.UUID) ([]models.Workspace, []string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]models.Workspace), args.Get(1).([]string), args.Error(2)
}

func (m *MockWorkspaceService) CanAccess(ctx context.Context, workspaceID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, workspaceID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkspaceService) CanModify(ctx context.Context, workspaceID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, workspaceID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWorkspaceService) GetMembers(ctx context.Context, workspaceID uuid.UUID) ([]models.WorkspaceMember, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WorkspaceMember), args.Error(1)
}

func (m *MockWorkspaceService) AddMember(ctx context.Context, workspaceID, userID uuid.UUID) error {
	args := m.Called(ctx, workspaceID, userID)
	return args.Error(0)
}

func (m *MockWorkspaceService) RemoveMember(ctx context.Context, workspaceID, userID uuid.UUID) error {
	args := m.Called(ctx, workspaceID, userID)
	return args.Error(0)
}

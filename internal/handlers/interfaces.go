package handlers

import (
	"context"

	"github.com/dimitrije/collabstore-api/internal/models"
	"github.com/google/uuid"
)

// CollabServiceInterface defines the methods used by handlers from CollabService
type CollabServiceInterface interface {
	Insert(ctx context.Context, obj *models.CollabObject) error
	Get(ctx context.Context, objectID string, expectedType models.CollabType) (*models.CollabObject, error)
	GetWorkspaceID(ctx context.Context, objectID string) (uuid.UUID, error)
	Tombstone(ctx context.Context, objectID string) error
}

// DeletionServiceInterface defines the methods used by handlers from DeletionService
type DeletionServiceInterface interface {
	Delete(ctx context.Context, objectID string, deletedBy uuid.UUID) error
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.CollabDeletion, error)
}

// AccessGuardInterface defines the methods used by handlers from AccessGuard
type AccessGuardInterface interface {
	AuthorizeRead(ctx context.Context, userID, workspaceID uuid.UUID) error
	AuthorizeWrite(ctx context.Context, userID, workspaceID uuid.UUID) error
}

// WorkspaceServiceInterface defines the methods used by handlers from WorkspaceService
type WorkspaceServiceInterface interface {
	Create(ctx context.Context, name string, ownerID uuid.UUID) (*models.Workspace, error)
	GetByID(ctx context.Context, workspaceID uuid.UUID) (*models.Workspace, error)
	GetUserWorkspaces(ctx context.Context, userID uuid.UUID) ([]models.Workspace, []string, error)
	CanAccess(ctx context.Context, workspaceID, userID uuid.UUID) (bool, error)
	CanModify(ctx context.Context, workspaceID, userID uuid.UUID) (bool, error)
	GetMembers(ctx context.Context, workspaceID uuid.UUID) ([]models.WorkspaceMember, error)
	AddMember(ctx context.Context, workspaceID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, workspaceID, userID uuid.UUID) error
}

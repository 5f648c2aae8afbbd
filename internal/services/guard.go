package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUnknownWorkspace     = errors.New("workspace does not exist")
	ErrNotEnoughPermissions = errors.New("not enough permissions on workspace")
)

// AccessGuard answers "may this identity touch this workspace" against the
// live membership tables. It holds no state of its own: every request is
// re-checked so membership changes take effect immediately.
type AccessGuard struct {
	workspaces *WorkspaceService
}

func NewAccessGuard(workspaces *WorkspaceService) *AccessGuard {
	return &AccessGuard{workspaces: workspaces}
}

// AuthorizeRead allows any workspace member to read collabs in it.
func (g *AccessGuard) AuthorizeRead(ctx context.Context, userID, workspaceID uuid.UUID) error {
	return g.authorizeMember(ctx, userID, workspaceID)
}

// AuthorizeWrite allows any workspace member to create and delete collabs.
// Kept separate from AuthorizeRead so the two policies can diverge without
// touching call sites.
func (g *AccessGuard) AuthorizeWrite(ctx context.Context, userID, workspaceID uuid.UUID) error {
	return g.authorizeMember(ctx, userID, workspaceID)
}

func (g *AccessGuard) authorizeMember(ctx context.Context, userID, workspaceID uuid.UUID) error {
	exists, err := g.workspaces.Exists(ctx, workspaceID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUnknownWorkspace
	}

	isMember, err := g.workspaces.IsMember(ctx, workspaceID, userID)
	if err != nil {
		return err
	}
	if !isMember {
		return ErrNotEnoughPermissions
	}
	return nil
}

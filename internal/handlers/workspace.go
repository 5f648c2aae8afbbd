package handlers

import (
	"context"

	"github.com/dimitrije/collabstore-api/internal/middleware"
	"github.com/dimitrije/collabstore-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type WorkspaceHandler struct {
	workspaceService WorkspaceServiceInterface
	deletionService  DeletionServiceInterface
}

func NewWorkspaceHandler(workspaceService WorkspaceServiceInterface, deletionService DeletionServiceInterface) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
		deletionService:  deletionService,
	}
}

func (h *WorkspaceHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreateWorkspaceRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	workspace, err := h.workspaceService.Create(context.Background(), req.Name, userID)
	if err != nil {
		c.InternalServerError("failed to create workspace")
		return
	}

	_ = c.JSON(201, dto.WorkspaceResponse{
		ID:      workspace.ID,
		Name:    workspace.Name,
		OwnerID: workspace.OwnerID,
		Role:    "owner",
	})
}

func (h *WorkspaceHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	workspaces, roles, err := h.workspaceService.GetUserWorkspaces(context.Background(), userID)
	if err != nil {
		c.InternalServerError("failed to get workspaces")
		return
	}

	response := make([]dto.WorkspaceResponse, len(workspaces))
	for i, w := range workspaces {
		response[i] = dto.WorkspaceResponse{
			ID:      w.ID,
			Name:    w.Name,
			OwnerID: w.OwnerID,
			Role:    roles[i],
		}
	}

	_ = c.JSON(200, response)
}

func (h *WorkspaceHandler) GetMembers(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	workspaceID, err := uuid.Parse(c.Param("workspaceId"))
	if err != nil {
		c.BadRequest("invalid workspace id")
		return
	}

	ctx := context.Background()

	canAccess, err := h.workspaceService.CanAccess(ctx, workspaceID, userID)
	if err != nil || !canAccess {
		c.NotFound("workspace not found")
		return
	}

	members, err := h.workspaceService.GetMembers(ctx, workspaceID)
	if err != nil {
		c.InternalServerError("failed to get members")
		return
	}

	response := make([]dto.WorkspaceMemberResponse, len(members))
	for i, m := range members {
		response[i] = dto.WorkspaceMemberResponse{
			UserID:   m.UserID,
			Role:     m.Role,
			JoinedAt: m.CreatedAt,
		}
		if m.User != nil {
			response[i].Email = m.User.Email
			response[i].Name = m.User.Name
		}
	}

	_ = c.JSON(200, response)
}

func (h *WorkspaceHandler) AddMember(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	workspaceID, err := uuid.Parse(c.Param("workspaceId"))
	if err != nil {
		c.BadRequest("invalid workspace id")
		return
	}

	ctx := context.Background()

	canModify, err := h.workspaceService.CanModify(ctx, workspaceID, userID)
	if err != nil || !canModify {
		c.Forbidden("cannot manage members of this workspace")
		return
	}

	var req dto.AddMemberRequest
	if err := c.BindJSON(&req); err != nil || req.UserID == uuid.Nil {
		c.BadRequest("user_id is required")
		return
	}

	if err := h.workspaceService.AddMember(ctx, workspaceID, req.UserID); err != nil {
		c.InternalServerError("failed to add member")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "member added"})
}

func (h *WorkspaceHandler) RemoveMember(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	workspaceID, err := uuid.Parse(c.Param("workspaceId"))
	if err != nil {
		c.BadRequest("invalid workspace id")
		return
	}

	memberID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.BadRequest("invalid user id")
		return
	}

	ctx := context.Background()

	canModify, err := h.workspaceService.CanModify(ctx, workspaceID, userID)
	if err != nil || !canModify {
		c.Forbidden("cannot manage members of this workspace")
		return
	}

	if err := h.workspaceService.RemoveMember(ctx, workspaceID, memberID); err != nil {
		c.BadRequest(err.Error())
		return
	}

	_ = c.JSON(200, map[string]string{"message": "member removed"})
}

// ListDeletions exposes the tombstone audit trail of a workspace.
func (h *WorkspaceHandler) ListDeletions(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	workspaceID, err := uuid.Parse(c.Param("workspaceId"))
	if err != nil {
		c.BadRequest("invalid workspace id")
		return
	}

	ctx := context.Background()

	canAccess, err := h.workspaceService.CanAccess(ctx, workspaceID, userID)
	if err != nil || !canAccess {
		c.NotFound("workspace not found")
		return
	}

	deletions, err := h.deletionService.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		c.InternalServerError("failed to list deletions")
		return
	}

	response := make([]dto.CollabDeletionResponse, len(deletions))
	for i, d := range deletions {
		response[i] = dto.CollabDeletionResponse{
			ObjectID:    d.ObjectID,
			WorkspaceID: d.WorkspaceID,
			DeletedBy:   d.DeletedBy,
			DeletedAt:   d.DeletedAt,
		}
	}

	_ = c.JSON(200, response)
}

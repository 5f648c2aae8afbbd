package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/dimitrije/collabstore-api/internal/middleware"
	"github.com/dimitrije/collabstore-api/internal/models"
	"github.com/dimitrije/collabstore-api/internal/services"
	"github.com/dimitrije/collabstore-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

// CollabHandler is the façade over the storage engine. Each operation runs a
// fixed pipeline (validate, authorize, execute) and translates internal
// failures to the external code taxonomy. Nothing is written once any stage
// has failed.
type CollabHandler struct {
	collabService   CollabServiceInterface
	deletionService DeletionServiceInterface
	guard           AccessGuardInterface
}

func NewCollabHandler(collabService CollabServiceInterface, deletionService DeletionServiceInterface, guard AccessGuardInterface) *CollabHandler {
	return &CollabHandler{
		collabService:   collabService,
		deletionService: deletionService,
		guard:           guard,
	}
}

func writeError(c *drift.Context, status int, code dto.ErrorCode, message string) {
	_ = c.JSON(status, dto.ErrorResponse{Code: code, Message: message})
}

func (h *CollabHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		writeError(c, 401, dto.CodeUserUnauthorized, "not authenticated")
		return
	}

	var req dto.CreateCollabRequest
	if err := c.BindJSON(&req); err != nil {
		writeError(c, 400, dto.CodeInvalidRequest, "invalid request body")
		return
	}

	if req.ObjectID == "" {
		writeError(c, 400, dto.CodeInvalidRequest, "object_id is required")
		return
	}

	collabType := models.CollabType(req.CollabType)
	if !collabType.Valid() {
		writeError(c, 400, dto.CodeInvalidRequest, "unknown collab type")
		return
	}

	if err := services.ValidatePayload(req.Payload, req.EncodingVersion); err != nil {
		writeError(c, 422, dto.CodeStorageError, err.Error())
		return
	}

	ctx := context.Background()

	if err := h.guard.AuthorizeWrite(ctx, userID, req.WorkspaceID); err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownWorkspace):
			// The observed client contract buckets a bad workspace id on
			// insert under the storage error code.
			writeError(c, 422, dto.CodeStorageError, "workspace does not exist")
		case errors.Is(err, services.ErrNotEnoughPermissions):
			writeError(c, 403, dto.CodeNotEnoughPermissions, "not a member of this workspace")
		default:
			writeError(c, 500, dto.CodeInternal, "failed to authorize workspace access")
		}
		return
	}

	obj := &models.CollabObject{
		ObjectID:        req.ObjectID,
		WorkspaceID:     req.WorkspaceID,
		CollabType:      collabType,
		EncodingVersion: req.EncodingVersion,
		Payload:         req.Payload,
	}

	if err := h.collabService.Insert(ctx, obj); err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			writeError(c, 409, dto.CodeRecordAlreadyExists, "collab already exists")
			return
		}
		writeError(c, 500, dto.CodeInternal, "failed to store collab")
		return
	}

	_ = c.JSON(201, map[string]string{"message": "collab created"})
}

func (h *CollabHandler) Get(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		writeError(c, 401, dto.CodeUserUnauthorized, "not authenticated")
		return
	}

	objectID := c.Param("objectId")
	if objectID == "" {
		writeError(c, 400, dto.CodeInvalidRequest, "object id is required")
		return
	}

	rawType, err := strconv.Atoi(c.QueryParam("collab_type"))
	if err != nil {
		writeError(c, 400, dto.CodeInvalidRequest, "invalid collab type")
		return
	}
	collabType := models.CollabType(rawType)
	if !collabType.Valid() {
		writeError(c, 400, dto.CodeInvalidRequest, "unknown collab type")
		return
	}

	ctx := context.Background()

	// The request names no workspace, so resolve the object's owner first
	// and authorize against that. Callers without access get the same
	// answer as for an absent object.
	workspaceID, err := h.collabService.GetWorkspaceID(ctx, objectID)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			writeError(c, 404, dto.CodeRecordNotFound, "collab not found")
			return
		}
		writeError(c, 500, dto.CodeInternal, "failed to resolve collab")
		return
	}

	if err := h.guard.AuthorizeRead(ctx, userID, workspaceID); err != nil {
		if errors.Is(err, services.ErrUnknownWorkspace) || errors.Is(err, services.ErrNotEnoughPermissions) {
			writeError(c, 404, dto.CodeRecordNotFound, "collab not found")
			return
		}
		writeError(c, 500, dto.CodeInternal, "failed to authorize workspace access")
		return
	}

	obj, err := h.collabService.Get(ctx, objectID, collabType)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			writeError(c, 404, dto.CodeRecordNotFound, "collab not found")
			return
		}
		writeError(c, 500, dto.CodeInternal, "failed to load collab")
		return
	}

	_ = c.JSON(200, dto.QueryCollabResponse{Payload: obj.Payload})
}

func (h *CollabHandler) Delete(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		writeError(c, 401, dto.CodeUserUnauthorized, "not authenticated")
		return
	}

	objectID := c.Param("objectId")
	if objectID == "" {
		writeError(c, 400, dto.CodeInvalidRequest, "object id is required")
		return
	}

	ctx := context.Background()

	workspaceID, err := h.collabService.GetWorkspaceID(ctx, objectID)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			writeError(c, 404, dto.CodeRecordNotFound, "collab not found")
			return
		}
		writeError(c, 500, dto.CodeInternal, "failed to resolve collab")
		return
	}

	if err := h.guard.AuthorizeWrite(ctx, userID, workspaceID); err != nil {
		if errors.Is(err, services.ErrUnknownWorkspace) || errors.Is(err, services.ErrNotEnoughPermissions) {
			writeError(c, 404, dto.CodeRecordNotFound, "collab not found")
			return
		}
		writeError(c, 500, dto.CodeInternal, "failed to authorize workspace access")
		return
	}

	if err := h.deletionService.Delete(ctx, objectID, userID); err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			writeError(c, 404, dto.CodeRecordNotFound, "collab not found")
			return
		}
		writeError(c, 500, dto.CodeInternal, "failed to delete collab")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "collab deleted"})
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCollabRequest carries the payload as raw bytes; over JSON that is
// base64, decoded back to the exact bytes before storage.
type CreateCollabRequest struct {
	EncodingVersion int       `json:"encoding_version"`
	ObjectID        string    `json:"object_id"`
	CollabType      int       `json:"collab_type"`
	Payload         []byte    `json:"payload"`
	WorkspaceID     uuid.UUID `json:"workspace_id"`
}

type QueryCollabResponse struct {
	Payload []byte `json:"payload"`
}

type CollabDeletionResponse struct {
	ObjectID    string    `json:"object_id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	DeletedBy   uuid.UUID `json:"deleted_by"`
	DeletedAt   time.Time `json:"deleted_at"`
}

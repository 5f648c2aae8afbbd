package models

import (
	"time"

	"github.com/google/uuid"
)

// CollabType tags how a stored payload should be interpreted by the layers
// above this engine. The engine itself never decodes the payload.
type CollabType int16

const (
	CollabTypeDocument CollabType = iota
	CollabTypeDatabase
	CollabTypeWorkspaceDatabase
	CollabTypeFolder
	CollabTypeDatabaseRow
	CollabTypeUserAwareness
)

func (t CollabType) Valid() bool {
	return t >= CollabTypeDocument && t <= CollabTypeUserAwareness
}

// CollabObject is the current binary snapshot of a collaborative structure.
// ObjectID is caller-supplied and unique across the whole store among live
// rows; WorkspaceID and CollabType are immutable after creation.
type CollabObject struct {
	ObjectID        string     `json:"object_id"`
	WorkspaceID     uuid.UUID  `json:"workspace_id"`
	CollabType      CollabType `json:"collab_type"`
	EncodingVersion int        `json:"encoding_version"`
	Payload         []byte     `json:"payload"`
	CreatedAt       time.Time  `json:"created_at"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}

// Tombstoned reports whether the object has been logically deleted. A
// tombstoned object is invisible to all read paths.
func (o *CollabObject) Tombstoned() bool {
	return o.DeletedAt != nil
}

// CollabDeletion is the audit record written when an object is tombstoned.
// It is what distinguishes "deleted" from "never existed".
type CollabDeletion struct {
	ID          uuid.UUID `json:"id"`
	ObjectID    string    `json:"object_id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	DeletedBy   uuid.UUID `json:"deleted_by"`
	DeletedAt   time.Time `json:"deleted_at"`
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dimitrije/collabstore-api/internal/database"
	"github.com/dimitrije/collabstore-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrRecordNotFound = errors.New("collab record not found")
	ErrAlreadyExists  = errors.New("collab record already exists")
)

// CollabService is the durable store for collab snapshots. Uniqueness and
// tombstone transitions ride single conditional statements, so concurrent
// inserts or delete-and-read on the same object id serialize inside postgres
// rather than in two uncoordinated round trips.
type CollabService struct {
	db           *database.DB
	allowIDReuse bool
}

func NewCollabService(db *database.DB, allowIDReuse bool) *CollabService {
	return &CollabService{db: db, allowIDReuse: allowIDReuse}
}

// Insert stores a new collab object. Exactly one of two concurrent inserts
// with the same object id wins; the loser gets ErrAlreadyExists. With id
// reuse enabled a tombstoned row may be resurrected with the new content,
// but a live row still never gets overwritten.
func (s *CollabService) Insert(ctx context.Context, obj *models.CollabObject) error {
	query := `
		INSERT INTO collab_objects (object_id, workspace_id, collab_type, encoding_version, payload)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (object_id) DO NOTHING
	`
	if s.allowIDReuse {
		query = `
			INSERT INTO collab_objects (object_id, workspace_id, collab_type, encoding_version, payload)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (object_id) DO UPDATE SET
				workspace_id = EXCLUDED.workspace_id,
				collab_type = EXCLUDED.collab_type,
				encoding_version = EXCLUDED.encoding_version,
				payload = EXCLUDED.payload,
				created_at = NOW(),
				deleted_at = NULL
			WHERE collab_objects.deleted_at IS NOT NULL
		`
	}

	tag, err := s.db.Pool.Exec(ctx, query,
		obj.ObjectID, obj.WorkspaceID, obj.CollabType, obj.EncodingVersion, obj.Payload)
	if err != nil {
		return fmt.Errorf("failed to insert collab: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyExists
	}
	return nil
}

// Get returns the live object with the given id and type. Unknown ids,
// tombstoned objects and type mismatches are all reported as
// ErrRecordNotFound: a caller asking for the wrong kind of object learns
// nothing beyond "not there".
func (s *CollabService) Get(ctx context.Context, objectID string, expectedType models.CollabType) (*models.CollabObject, error) {
	var obj models.CollabObject
	err := s.db.Pool.QueryRow(ctx, `
		SELECT object_id, workspace_id, collab_type, encoding_version, payload, created_at
		FROM collab_objects
		WHERE object_id = $1 AND collab_type = $2 AND deleted_at IS NULL
	`, objectID, expectedType).Scan(
		&obj.ObjectID, &obj.WorkspaceID, &obj.CollabType,
		&obj.EncodingVersion, &obj.Payload, &obj.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to query collab: %w", err)
	}
	return &obj, nil
}

// GetWorkspaceID resolves the owning workspace of a live object. Query and
// delete requests carry no workspace id, so the router uses this to know
// which workspace to authorize against.
func (s *CollabService) GetWorkspaceID(ctx context.Context, objectID string) (uuid.UUID, error) {
	var workspaceID uuid.UUID
	err := s.db.Pool.QueryRow(ctx, `
		SELECT workspace_id FROM collab_objects
		WHERE object_id = $1 AND deleted_at IS NULL
	`, objectID).Scan(&workspaceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ErrRecordNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to resolve collab workspace: %w", err)
	}
	return workspaceID, nil
}

// Tombstone marks an object deleted. Repeating the call on an already
// tombstoned or unknown id fails with the same ErrRecordNotFound.
func (s *CollabService) Tombstone(ctx context.Context, objectID string) error {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE collab_objects SET deleted_at = NOW()
		WHERE object_id = $1 AND deleted_at IS NULL
	`, objectID)
	if err != nil {
		return fmt.Errorf("failed to tombstone collab: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

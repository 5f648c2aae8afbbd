package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dimitrije/collabstore-api/internal/database"
	"github.com/dimitrije/collabstore-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DeletionService tombstones collab objects and keeps the audit trail of who
// deleted what and when. Tombstone and audit row land in one transaction, so
// a cancelled delete leaves neither behind.
type DeletionService struct {
	db *database.DB
}

func NewDeletionService(db *database.DB) *DeletionService {
	return &DeletionService{db: db}
}

func (s *DeletionService) Delete(ctx context.Context, objectID string, deletedBy uuid.UUID) error {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var workspaceID uuid.UUID
	var deletedAt time.Time
	err = tx.QueryRow(ctx, `
		UPDATE collab_objects SET deleted_at = NOW()
		WHERE object_id = $1 AND deleted_at IS NULL
		RETURNING workspace_id, deleted_at
	`, objectID).Scan(&workspaceID, &deletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("failed to tombstone collab: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO collab_deletions (object_id, workspace_id, deleted_by, deleted_at)
		VALUES ($1, $2, $3, $4)
	`, objectID, workspaceID, deletedBy, deletedAt)
	if err != nil {
		return fmt.Errorf("failed to record deletion: %w", err)
	}

	return tx.Commit(ctx)
}

func (s *DeletionService) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.CollabDeletion, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, object_id, workspace_id, deleted_by, deleted_at
		FROM collab_deletions
		WHERE workspace_id = $1
		ORDER BY deleted_at DESC
	`, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deletions []models.CollabDeletion
	for rows.Next() {
		var d models.CollabDeletion
		if err := rows.Scan(&d.ID, &d.ObjectID, &d.WorkspaceID, &d.DeletedBy, &d.DeletedAt); err != nil {
			return nil, err
		}
		deletions = append(deletions, d)
	}
	return deletions, nil
}

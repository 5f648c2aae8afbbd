package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/dimitrije/collabstore-api/internal/database"
	"github.com/dimitrije/collabstore-api/internal/models"
	"github.com/google/uuid"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateUser creates a test user with default values
func (f *Fixtures) CreateUser(t *testing.T, opts ...UserOption) *models.User {
	t.Helper()
	f.counter++

	user := &models.User{
		Email: fmt.Sprintf("user%d@example.com", f.counter),
		Name:  fmt.Sprintf("Test User %d", f.counter),
	}

	for _, opt := range opts {
		opt(user)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, name)
		VALUES ($1, $2)
		RETURNING id, email, name, created_at, updated_at
	`, user.Email, user.Name).Scan(
		&user.ID, &user.Email, &user.Name, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user
}

// UserOption configures a test user
type UserOption func(*models.User)

// WithEmail sets the user's email
func WithEmail(email string) UserOption {
	return func(u *models.User) {
		u.Email = email
	}
}

// WithName sets the user's name
func WithName(name string) UserOption {
	return func(u *models.User) {
		u.Name = name
	}
}

// CreateWorkspace creates a test workspace owned by the given user, with the
// owner enrolled as a member.
func (f *Fixtures) CreateWorkspace(t *testing.T, owner *models.User, opts ...WorkspaceOption) *models.Workspace {
	t.Helper()
	f.counter++

	workspace := &models.Workspace{
		Name:    fmt.Sprintf("Test Workspace %d", f.counter),
		OwnerID: owner.ID,
	}

	for _, opt := range opts {
		opt(workspace)
	}

	ctx := context.Background()
	tx, err := f.db.Pool.Begin(ctx)
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO workspaces (name, owner_id)
		VALUES ($1, $2)
		RETURNING id, name, owner_id, created_at, updated_at
	`, workspace.Name, workspace.OwnerID).Scan(
		&workspace.ID, &workspace.Name, &workspace.OwnerID,
		&workspace.CreatedAt, &workspace.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create workspace: %v", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO workspace_members (workspace_id, user_id, role)
		VALUES ($1, $2, $3)
	`, workspace.ID, workspace.OwnerID, models.RoleOwner)
	if err != nil {
		t.Fatalf("failed to enroll workspace owner: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("failed to commit workspace fixture: %v", err)
	}

	return workspace
}

// WorkspaceOption configures a test workspace
type WorkspaceOption func(*models.Workspace)

// WithWorkspaceName sets the workspace's name
func WithWorkspaceName(name string) WorkspaceOption {
	return func(w *models.Workspace) {
		w.Name = name
	}
}

// AddWorkspaceMember enrolls the user in the workspace with the member role
func (f *Fixtures) AddWorkspaceMember(t *testing.T, workspaceID, userID uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	_, err := f.db.Pool.Exec(ctx, `
		INSERT INTO workspace_members (workspace_id, user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (workspace_id, user_id) DO NOTHING
	`, workspaceID, userID, models.RoleMember)
	if err != nil {
		t.Fatalf("failed to add workspace member: %v", err)
	}
}

// CreateCollab stores a test collab object with default values
func (f *Fixtures) CreateCollab(t *testing.T, workspaceID uuid.UUID, opts ...CollabOption) *models.CollabObject {
	t.Helper()
	f.counter++

	obj := &models.CollabObject{
		ObjectID:        fmt.Sprintf("object-%d", f.counter),
		WorkspaceID:     workspaceID,
		CollabType:      models.CollabTypeDocument,
		EncodingVersion: 1,
		Payload:         []byte("test payload"),
	}

	for _, opt := range opts {
		opt(obj)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO collab_objects (object_id, workspace_id, collab_type, encoding_version, payload)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, obj.ObjectID, obj.WorkspaceID, obj.CollabType, obj.EncodingVersion, obj.Payload).Scan(&obj.CreatedAt)
	if err != nil {
		t.Fatalf("failed to create collab object: %v", err)
	}

	return obj
}

// CollabOption configures a test collab object
type CollabOption func(*models.CollabObject)

// WithObjectID sets the collab's object id
func WithObjectID(objectID string) CollabOption {
	return func(o *models.CollabObject) {
		o.ObjectID = objectID
	}
}

// WithCollabType sets the collab's type tag
func WithCollabType(collabType models.CollabType) CollabOption {
	return func(o *models.CollabObject) {
		o.CollabType = collabType
	}
}

// WithPayload sets the collab's payload bytes
func WithPayload(payload []byte) CollabOption {
	return func(o *models.CollabObject) {
		o.Payload = payload
	}
}

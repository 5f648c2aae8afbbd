package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dimitrije/collabstore-api/internal/config"
	"github.com/dimitrije/collabstore-api/internal/database"
	"github.com/dimitrije/collabstore-api/internal/models"
	"github.com/google/uuid"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: grant-access <email> <workspace-id>")
		os.Exit(1)
	}

	email := os.Args[1]

	workspaceID, err := uuid.Parse(os.Args[2])
	if err != nil {
		log.Fatalf("Invalid workspace id: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	var userID uuid.UUID
	err = db.Pool.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&userID)
	if err != nil {
		log.Fatalf("No user found with email: %s", email)
	}

	result, err := db.Pool.Exec(ctx, `
		INSERT INTO workspace_members (workspace_id, user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (workspace_id, user_id) DO NOTHING
	`, workspaceID, userID, models.RoleMember)
	if err != nil {
		log.Fatalf("Failed to add member: %v", err)
	}

	if result.RowsAffected() == 0 {
		fmt.Printf("%s is already a member of workspace %s\n", email, workspaceID)
		return
	}

	fmt.Printf("Granted %s access to workspace %s\n", email, workspaceID)
}

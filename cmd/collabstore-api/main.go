package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimitrije/collabstore-api/internal/config"
	"github.com/dimitrije/collabstore-api/internal/database"
	"github.com/dimitrije/collabstore-api/internal/handlers"
	authmw "github.com/dimitrije/collabstore-api/internal/middleware"
	"github.com/dimitrije/collabstore-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
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

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry)
	workspaceService := services.NewWorkspaceService(db)
	guard := services.NewAccessGuard(workspaceService)
	collabService := services.NewCollabService(db, cfg.CollabAllowIDReuse)
	deletionService := services.NewDeletionService(db)

	collabHandler := handlers.NewCollabHandler(collabService, deletionService, guard)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceService, deletionService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api/v1")

	protected := api.Group("")
	protected.Use(authmw.Auth(jwtService))

	protected.Post("/collab", collabHandler.Create)
	protected.Get("/collab/:objectId", collabHandler.Get)
	protected.Delete("/collab/:objectId", collabHandler.Delete)

	protected.Get("/workspaces", workspaceHandler.List)
	protected.Post("/workspaces", workspaceHandler.Create)
	protected.Get("/workspaces/:workspaceId/members", workspaceHandler.GetMembers)
	protected.Post("/workspaces/:workspaceId/members", workspaceHandler.AddMember)
	protected.Delete("/workspaces/:workspaceId/members/:userId", workspaceHandler.RemoveMember)
	protected.Get("/workspaces/:workspaceId/deletions", workspaceHandler.ListDeletions)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}

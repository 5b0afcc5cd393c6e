package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/config"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/database"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/routes"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/store"
	"github.com/tlovegrove3/SDEV-255-Final-Project-Group5/internal/utils"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Connect to MongoDB; the client lifecycle is owned here, not by the
	// workflow layers.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	client, err := database.ConnectMongoDB(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Fatal("Failed to disconnect from MongoDB:", err)
		}
	}()

	db := client.Database(cfg.DatabaseName)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Build the store handle and router
	st := store.New(db)
	mailer := utils.NewMailer(cfg.SMTP)
	router := routes.SetupRouter(st, cfg, mailer)

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	handler := c.Handler(router)

	// Start server
	log.Printf("Server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

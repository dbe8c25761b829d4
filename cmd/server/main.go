package main

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/yadi09/Slide-Editor-Foundation/internal/config"
	"github.com/yadi09/Slide-Editor-Foundation/internal/handlers"
	"github.com/yadi09/Slide-Editor-Foundation/internal/persistence"
	"github.com/yadi09/Slide-Editor-Foundation/internal/services"
	"github.com/yadi09/Slide-Editor-Foundation/internal/storage"
)

func main() {
	// Load configuration
	_ = godotenv.Load()
	cfg := config.Load()

	// Initialize storage
	store, err := openStorage(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	// Initialize services
	repo := persistence.NewRepository(store)
	docStore := services.NewDocumentStore(repo)
	hub := services.NewHub()
	go hub.Run()

	// Initialize handlers
	presentationHandler := handlers.NewPresentationHandler(docStore, hub)
	elementHandler := handlers.NewElementHandler(docStore, hub)
	libraryHandler := handlers.NewLibraryHandler(repo, docStore, hub)
	templateHandler := handlers.NewTemplateHandler(docStore, hub)
	wsHandler := handlers.NewWebSocketHandler(hub, cfg.App.Dev)
	staticHandler := handlers.NewStaticHandler(cfg.App.StaticDir)

	// Setup routes
	router := handlers.SetupRoutes(presentationHandler, elementHandler, libraryHandler, templateHandler, wsHandler, staticHandler)

	// Configure server
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	log.Printf("Starting HTTP server on %s", server.Addr)
	log.Fatal(server.ListenAndServe())
}

// openStorage picks the persistence backend from configuration
func openStorage(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case "sqlite":
		return storage.NewSQLiteStore(filepath.Join(cfg.DataPath, "editor.db"))
	case "file":
		return storage.NewFileStore(cfg.DataPath)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

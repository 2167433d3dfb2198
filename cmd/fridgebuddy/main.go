package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NatalieStover/MyFridgeBuddy1/internal/config"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/database"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/logging"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/server"
	"github.com/NatalieStover/MyFridgeBuddy1/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.Setup(cfg.LogLevel)

	var (
		items    store.FoodItemStore
		shopping store.ShoppingListStore
	)
	switch cfg.Storage {
	case config.StorageMemory:
		items = store.NewMemoryFoodStore()
		shopping = store.NewMemoryShoppingStore()
	case config.StorageFile:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			log.Fatalf("failed to create data dir: %v", err)
		}
		fs, err := store.NewFileFoodStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("failed to open food item store: %v", err)
		}
		ss, err := store.NewFileShoppingStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("failed to open shopping list store: %v", err)
		}
		items, shopping = fs, ss
	case config.StorageSQLite:
		db, err := database.Open(cfg.DBPath)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()
		items = store.NewFoodStore(db)
		shopping = store.NewShoppingStore(db)
	}

	logger.Info("storage ready", "backend", cfg.Storage)

	srv := server.New(items, shopping, cfg.PollInterval, cfg.ExpiryWindowDays, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv.Poller().Start(ctx)
	defer srv.Poller().Stop()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		fmt.Printf("FridgeBuddy running at http://localhost:%s\n", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}

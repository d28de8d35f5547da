package main

import (
	"alcyxob/exercise-tracker/internal/api"
	"alcyxob/exercise-tracker/internal/config"
	"alcyxob/exercise-tracker/internal/observability"
	"alcyxob/exercise-tracker/internal/repository"
	"alcyxob/exercise-tracker/internal/repository/memory"
	"alcyxob/exercise-tracker/internal/repository/mongo"
	"alcyxob/exercise-tracker/internal/service"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// @title Exercise Tracker API
// @version 1.0
// @description Create users, log exercises and read exercise history.
// @BasePath /
func main() {
	log.Println("Starting Exercise Tracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	loc, err := cfg.App.Location()
	if err != nil {
		log.Fatalf("FATAL: Invalid timezone %q: %v", cfg.App.Timezone, err)
	}
	log.Printf("Configuration loaded (driver=%s, timezone=%s).", cfg.Database.Driver, loc)

	// --- Repositories ---
	var (
		userRepo     repository.UserRepository
		exerciseRepo repository.ExerciseRepository
	)
	switch cfg.Database.Driver {
	case config.DriverMemory:
		log.Println("WARN: Using in-memory store, data is lost on exit.")
		store := memory.NewStore()
		userRepo = store.Users()
		exerciseRepo = store.Exercises()
	default:
		dbClient, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
		}
		defer func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongo.DisconnectDB(dbClient); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.Println("Database connection established.")

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			mongo.EnsureIndexes(ctx, appDB)
			log.Println("Index creation process completed.")
		}()

		userRepo = mongo.NewMongoUserRepository(appDB)
		exerciseRepo = mongo.NewMongoExerciseRepository(appDB)
	}

	// --- Services ---
	userService := service.NewUserService(userRepo)
	exerciseService := service.NewExerciseService(userRepo, exerciseRepo, service.ClockIn(loc))

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	// --- Gin Engine & Routes ---
	router := gin.Default() // Includes Logger and Recovery middleware
	api.SetupRoutes(router, cfg.Server, metrics, registry, userService, exerciseService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// --- Graceful Shutdown ---
	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Your app is listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		log.Println("Shutting down server...")
	case err := <-serverErr:
		// Return so the deferred disconnect still runs.
		log.Printf("ERROR: ListenAndServe: %v", err)
		return
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Printf("ERROR: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

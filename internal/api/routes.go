package api

import (
	"alcyxob/exercise-tracker/internal/config"
	"alcyxob/exercise-tracker/internal/observability"
	"alcyxob/exercise-tracker/internal/service"
	"log"
	"net/http"
	"os"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes registers middleware and all routes on router.
// A nil gatherer leaves /metrics out.
func SetupRoutes(
	router *gin.Engine,
	cfg config.ServerConfig,
	metrics *observability.Metrics,
	gatherer prometheus.Gatherer,
	userService service.UserService,
	exerciseService service.ExerciseService,
) {
	userHandler := NewUserHandler(userService, metrics)
	exerciseHandler := NewExerciseHandler(exerciseService, metrics)

	router.Use(RequestIDMiddleware())
	router.Use(MetricsMiddleware(metrics))
	router.Use(cors.New(corsConfig(cfg.CORSAllowOrigins)))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	router.GET("/", IndexHandler(cfg.IndexFile))
	if cfg.PublicDir != "" {
		if info, err := os.Stat(cfg.PublicDir); err == nil && info.IsDir() {
			router.Static("/public", cfg.PublicDir)
		} else {
			log.Printf("WARN: Public directory %q not found, static files disabled", cfg.PublicDir)
		}
	}

	usersGroup := router.Group("/api/users")
	{
		usersGroup.POST("", userHandler.CreateUser)
		usersGroup.GET("", userHandler.ListUsers)
		usersGroup.POST("/:_id/exercises", exerciseHandler.AddExercise)
		usersGroup.GET("/:_id/logs", exerciseHandler.GetLog)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AddAllowHeaders(HeaderRequestID)
	cfg.AddExposeHeaders(HeaderRequestID)
	return cfg
}

package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/puravida-ops/casitas-api/internal/cache"
	"github.com/puravida-ops/casitas-api/internal/config"
	dbpkg "github.com/puravida-ops/casitas-api/internal/db"
	"github.com/puravida-ops/casitas-api/internal/logger"
	"github.com/puravida-ops/casitas-api/internal/middleware"
	"github.com/puravida-ops/casitas-api/internal/routes"
	"github.com/puravida-ops/casitas-api/internal/storage"
)

func main() {

	cfg := config.Load()

	l := logger.New(cfg.AppEnv)
	slog.SetDefault(l)

	db := dbpkg.NewDB(cfg)

	var uploader storage.Uploader
	switch cfg.StorageBackend {
	case "s3":
		uploader = storage.NewS3(cfg.S3Bucket, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey)
	default:
		uploader = storage.NewCloudinary(cfg.CloudinaryBaseURL, cfg.CloudinaryCloudName, cfg.CloudinaryPreset)
	}

	revCache := cache.New(cfg.RedisAddr)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(logger.Middleware(l))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, uploader, revCache)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

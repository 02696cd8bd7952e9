package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"clipper/config"
	"clipper/database"
	"clipper/handlers"
	"clipper/logger"
	"clipper/middleware"
	"clipper/repositories"
	"clipper/services"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("starting clipper service")

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)

	// The job store is optional: without it the service still accepts jobs
	// and serves artifacts, it just cannot list them.
	db, err := database.InitMongo(&cfg.Mongo)
	if err != nil {
		log.Printf("job store unavailable, running file-only: %v", err)
	} else {
		logger.Infof("mongo connected, database %s", cfg.Mongo.Database)
	}

	redisClient := database.InitRedis(&cfg.Redis)
	if redisClient != nil {
		logger.Infof("redis listing cache enabled at %s", cfg.Redis.Addr)
	}

	for _, dir := range []string{
		cfg.Storage.UploadDir,
		cfg.Storage.OutputDir,
		cfg.Storage.SubtitleDir,
		cfg.Storage.ThumbnailDir,
	} {
		if err := os.MkdirAll(filepath.Join(cfg.Storage.BasePath, dir), 0o755); err != nil {
			log.Fatalf("create %s dir failed: %v", dir, err)
		}
	}

	repoContainer := repositories.NewMongoRepositories(db, redisClient, cfg.Redis.ListCacheTTL).BuildContainer()
	serviceContainer := services.NewContainer(repoContainer, cfg.Storage)
	handlers.SetServices(serviceContainer)
	handlers.SetPagination(cfg.Pagination)

	r := gin.Default()
	r.MaxMultipartMemory = cfg.Storage.MaxUploadSize
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())
	setupRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("server listening on http://%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server start failed: %v", err)
	}
}

func setupRoutes(r *gin.Engine) {
	r.GET("/", handlers.Root)
	r.GET("/test", handlers.TestStatus)

	api := r.Group("/api")
	{
		api.POST("/jobs", handlers.CreateJob)
		api.GET("/jobs", handlers.ListJobs)
		api.GET("/download/:job_id", handlers.DownloadOutput)
		api.GET("/subtitles/:job_id", handlers.DownloadSubtitles)
		api.GET("/thumbnail/:job_id", handlers.GetThumbnail)
	}
}

package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"reviewboard/internal/config"
	"reviewboard/internal/database"
	"reviewboard/internal/modules/object"
	"reviewboard/internal/modules/review"
	"reviewboard/internal/modules/reviewer"
	"reviewboard/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatal(err)
	}

	reviewerRepo := repository.NewReviewerRepository(db, cfg.DeletePolicy)
	objectRepo := repository.NewReviewedObjectRepository(db, cfg.DeletePolicy)
	reviewRepo := repository.NewReviewRepository(db)

	reviewerHandler := reviewer.NewHandler(reviewerRepo, cfg.MaxPageSize)
	objectHandler := object.NewHandler(objectRepo, cfg.MaxPageSize)
	reviewHandler := review.NewHandler(reviewRepo, cfg.MaxPageSize)

	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		reviewerHandler.RegisterRoutes(v1)
		objectHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)
	}

	log.Println("Listening on", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}

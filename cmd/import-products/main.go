package main

import (
	"context"
	"log"
	"os"

	"go-product-catalog/internal/config"
	"go-product-catalog/internal/fastprint"
	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/service"
	"go-product-catalog/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	cfg := config.Load()

	// 2. Setup Database
	db := database.ConnectDB(cfg)
	db.AutoMigrate(&model.Category{}, &model.Status{}, &model.Product{})

	// 3. Wire the importer
	categoryRepo := repository.NewCategoryRepo(db)
	statusRepo := repository.NewStatusRepo(db)
	productRepo := repository.NewProductRepo(db)
	importer := service.NewImportService(fastprint.NewClient(cfg), categoryRepo, statusRepo, productRepo)

	// 4. Run
	log.Println("Starting product import...")
	result, err := importer.Run(context.Background())
	if err != nil {
		log.Printf("❌ Import failed: %v", err)
		os.Exit(1)
	}

	// 5. Report. Record-level skips are not a failure; re-run to converge.
	log.Printf("✅ Import completed: %d created, %d updated, %d skipped",
		result.Created, result.Updated, result.Skipped)
	for _, msg := range result.Errors {
		log.Printf("   skipped: %s", msg)
	}
}

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-product-catalog/internal/config"
	"go-product-catalog/internal/fastprint"
	"go-product-catalog/internal/handler"
	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/service"
	"go-product-catalog/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup Database
	db := database.ConnectDB(cfg)
	db.AutoMigrate(&model.Category{}, &model.Status{}, &model.Product{})

	// 3. Seed well-known statuses so the list filter works before the first import
	statusRepo := repository.NewStatusRepo(db)
	if err := statusRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed statuses: %v", err)
	}

	// 4. Dependency Injection (Wiring Layers)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)

	apiClient := fastprint.NewClient(cfg)

	productService := service.NewProductService(productRepo, categoryRepo, statusRepo)
	importService := service.NewImportService(apiClient, categoryRepo, statusRepo, productRepo)

	productHandler := handler.NewProductHandler(productService)
	catalogHandler := handler.NewCatalogHandler(productService, importService)
	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	statusHandler := handler.NewStatusHandler(statusRepo)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Product Catalog v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	// CRUD surface
	products := app.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/new", productHandler.New)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.Detail)
	products.Get("/:id/edit", productHandler.Edit)
	products.Put("/:id", productHandler.Update)
	products.Get("/:id/delete", productHandler.ConfirmDelete)
	products.Delete("/:id", productHandler.Delete)

	// Read-only JSON projection
	api := app.Group("/api/v1")
	api.Get("/products", catalogHandler.GetProducts)
	api.Get("/products/:id", catalogHandler.GetProduct)
	api.Get("/categories", catalogHandler.GetCategories)
	api.Post("/categories", categoryHandler.Create)
	api.Put("/categories/:id", categoryHandler.Update)
	api.Delete("/categories/:id", categoryHandler.Delete)
	api.Get("/statuses", catalogHandler.GetStatuses)
	api.Post("/statuses", statusHandler.Create)
	api.Put("/statuses/:id", statusHandler.Update)
	api.Delete("/statuses/:id", statusHandler.Delete)
	api.Post("/products/import", catalogHandler.ImportProducts)

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

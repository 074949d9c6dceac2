package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/nitturkaryash/chic-salon-ecosystem-main/config"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/routes"
	"github.com/nitturkaryash/chic-salon-ecosystem-main/storage"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	var store storage.Store
	if cfg.DBURL != "" {
		gs, err := storage.OpenGormStore(cfg.DBURL)
		if err != nil {
			log.Fatalf("Failed to connect database: %v", err)
		}
		store = gs
		log.Println("Using Postgres-backed collection store")
	} else {
		fs, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to open data directory: %v", err)
		}
		store = fs
		log.Printf("Using file-backed collection store in %s", cfg.DataDir)
	}

	r := routes.SetupRouter(store, cfg)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}

package main

import (
	"fmt"
	"log"

	"cerocafe-backend/configs"
	"cerocafe-backend/middlewares"
	"cerocafe-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}

	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedOwner(db, cfg); err != nil {
		log.Fatalf("seed owner failed: %v", err)
	}
	if err := configs.SeedMenu(db); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

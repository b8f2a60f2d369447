package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Benjamin-taro/spliting-the-bill/internal/db"
	"github.com/Benjamin-taro/spliting-the-bill/internal/extract"
	"github.com/Benjamin-taro/spliting-the-bill/internal/menu"
	"github.com/Benjamin-taro/spliting-the-bill/internal/split"
	"github.com/Benjamin-taro/spliting-the-bill/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── REFERENCE MENU ─────────────────────────
	// Loaded once and shared read-only across every session.
	var source menu.Source
	if os.Getenv("MENU_SOURCE") == "postgres" {
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()
		source = menu.NewPostgresSource(pgDB)
	} else {
		path := os.Getenv("MENU_FILE")
		if path == "" {
			path = "data/menu.json"
		}
		source = menu.FileSource{Path: path}
	}

	prices, err := source.Load(context.Background())
	if err != nil {
		log.Fatal("❌ Failed to load reference menu:", err)
	}
	referenceMenu := menu.New(prices)
	log.Printf("Reference menu loaded: %d items", referenceMenu.Len())

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	var archive split.Archiver
	if os.Getenv("R2_BUCKET_NAME") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		archive = r2Client
	} else {
		log.Println("R2 not configured, receipt archival disabled")
	}

	// ───────────────────────── CORE ─────────────────────────
	llmClient := extract.NewGeminiClient()
	store := split.NewStore()

	splitService := split.NewService(referenceMenu, store, llmClient, archive)
	splitHandler := split.NewHandler(splitService)
	splitHandler.RegisterRoutes(r)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8080")
	r.Run(":8080")
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	productcontroller "github.com/adamswinfred36-debug/Backend-MLST/controllers/product"
	"github.com/adamswinfred36-debug/Backend-MLST/routes"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("❌ MONGODB_URI not configured")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "mercadinho"
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET not configured")
	}

	// Init store with an explicit lifecycle: connect, serve, close.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	s, err := store.Connect(ctx, uri, dbName)
	cancel()
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	log.Println("✅ Connected to MongoDB")

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        24 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", productcontroller.UploadsDir())

	// Healthcheck
	r.GET("/health", func(c *gin.Context) {
		pingCtx, pingCancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer pingCancel()
		if err := s.Ping(pingCtx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "message": "Banco de dados indisponível. Tente novamente em instantes."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// API index
	r.GET("/api", apiIndex)
	r.GET("/", apiIndex)

	// Setup routes
	routes.SetupRoutes(r, s)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 Server running on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Shut down cleanly on SIGINT/SIGTERM: drain HTTP first, then close the store.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("⏳ Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ HTTP shutdown: %v", err)
	}
	if err := s.Close(shutdownCtx); err != nil {
		log.Printf("❌ Store close: %v", err)
	}
	log.Println("✅ Bye")
}

func apiIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "API Mercado Livre Clone",
		"version": "1.0.0",
		"endpoints": gin.H{
			"products": "/api/products",
			"admin":    "/api/admin",
			"settings": "/api/settings",
			"orders":   "/api/orders",
			"auth":     "/api/auth",
		},
	})
}

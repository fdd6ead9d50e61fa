package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tyco-hotel-backend/config"
	"tyco-hotel-backend/controllers"
	"tyco-hotel-backend/routes"
	"tyco-hotel-backend/services"
	"tyco-hotel-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	uploadsDir := utils.EnvOrDefault("UPLOADS_DIR", "uploads")

	// Services
	authService := services.NewAuthService(db, jwtSecret, 24*time.Hour)
	roomService := services.NewRoomService(db)
	reservationService := services.NewReservationService(db)
	mediaService := services.NewMediaService(db, uploadsDir, "/uploads")
	settingsService := services.NewSettingsService(db)
	statsService := services.NewStatsService(db)

	// Controllers
	authController := controllers.NewAuthController(authService)
	roomController := controllers.NewRoomController(roomService)
	reservationController := controllers.NewReservationController(reservationService)
	mediaController := controllers.NewMediaController(mediaService)
	settingsController := controllers.NewSettingsController(settingsService)
	statsController := controllers.NewStatsController(statsService)

	router := routes.SetupRouter(
		authService,
		authController,
		roomController,
		reservationController,
		mediaController,
		settingsController,
		statsController,
		uploadsDir,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

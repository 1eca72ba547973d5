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

	"hotel-backoffice/config"
	"hotel-backoffice/controllers"
	"hotel-backoffice/routes"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	media, err := config.ConnectMediaStore(ctx)
	cancel()
	if err != nil {
		log.Fatalf("❌ Media store connect failed: %v", err)
	}
	log.Println("✅ Media store reachable")

	tmpDir := utils.EnvOrDefault("UPLOAD_TMP_DIR", "uploads/tmp")
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		log.Fatalf("❌ Cannot create upload temp dir %s: %v", tmpDir, err)
	}

	// Stores and services
	roomStore := services.NewRoomStore(db)
	categoryStore := services.NewCategoryStore(db)
	userStore := services.NewUserStore(db)

	roomService := services.NewRoomService(roomStore, categoryStore, media)
	categoryService := services.NewCategoryService(categoryStore)
	authService := services.NewAuthService(userStore)

	// Controllers
	port := utils.EnvOrDefault("PORT", "8080")
	baseURL := utils.EnvOrDefault("APP_BASE_URL", "http://localhost:"+port)

	userController := controllers.NewUserController(authService, baseURL)
	categoryController := controllers.NewCategoryController(categoryService)
	roomController := controllers.NewRoomController(roomService, tmpDir)

	router := routes.SetupRouter(userController, categoryController, roomController)

	addr := ":" + port
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

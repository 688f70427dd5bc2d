package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"galactic_pets/internal/api"
	"galactic_pets/internal/app/service"
	"galactic_pets/internal/common/security"
	"galactic_pets/internal/domain/repository"
	"galactic_pets/internal/platform/config"
	"galactic_pets/internal/platform/database"
	"galactic_pets/internal/platform/ratelimit"
	"galactic_pets/internal/platform/storage"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	if err := database.Migrate(context.Background()); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
	fmt.Println("Database connected and migrated.")

	// 4. Initialize image storage
	images, err := storage.NewLocalImageStore(config.AppConfig.UploadDir, config.AppConfig.UploadURLPrefix)
	if err != nil {
		log.Fatalf("Image storage init failed: %v", err)
	}

	// 5. Optional login rate limiter
	var limiter *ratelimit.LoginLimiter
	if config.AppConfig.RedisAddr != "" {
		rdb := ratelimit.ConnectRedis()
		defer rdb.Close()
		limiter = ratelimit.NewLoginLimiter(rdb, config.AppConfig.LoginRateLimit, config.AppConfig.LoginRateWindow)
	}

	// 6. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	petRepo := repository.NewPgPetRepository(database.DB)

	// 7. Initialize Services
	authService := service.NewAuthService(userRepo, limiter)
	petService := service.NewPetService(petRepo, images)
	userService := service.NewUserAdminService(userRepo, config.AppConfig.SetupAdminEmail, config.AppConfig.SetupAdminPassword)

	// 8. Initialize Router & HTTP Server
	router := api.NewRouter(authService, petService, userService, images.Dir())

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}

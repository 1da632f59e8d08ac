package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"demcare-service/internal/application/services"
	"demcare-service/internal/config"
	"demcare-service/internal/delivery/handler"
	"demcare-service/internal/delivery/middleware"
	"demcare-service/internal/infrastructure"
	"demcare-service/internal/infrastructure/db/postgres"
	"demcare-service/internal/worker/reset"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	var tokenCache infrastructure.TokenCache
	if cfg.RedisURL != "" {
		redisService, err := infrastructure.NewRedisService(cfg.RedisURL)
		if err != nil {
			log.Println("Redis unavailable, token cache disabled:", err)
		} else {
			tokenCache = redisService
		}
	}

	userRepo := postgres.NewUserRepository(db)
	todoRepo := postgres.NewTodoRepository(db)
	otpRepo := postgres.NewOtpRepository(db)

	notifier := infrastructure.NewMailService(cfg.EmailAPIKey, cfg.EmailSender)
	jwtService := infrastructure.NewJWTService(cfg.JWTSecret)
	otpService := infrastructure.NewOTPService(cfg.OTPLength)

	userService := services.NewUserService(userRepo, otpRepo, otpService, jwtService, notifier, tokenCache, cfg.OTPExpiry, cfg.SessionTokenCap)
	todoService := services.NewTodoService(userRepo, todoRepo)
	alertService := services.NewAlertService(userRepo, notifier)

	loc, err := time.LoadLocation(cfg.ResetTimezone)
	if err != nil {
		log.Println("Unknown RESET_TIMEZONE, falling back to UTC:", err)
		loc = time.UTC
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := reset.NewScheduler(todoRepo, loc)
	go scheduler.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))

	auth := middleware.NewAuth(jwtService, userRepo, tokenCache)
	h := handler.NewHandler(userService, todoService, alertService)
	handler.RegisterRoutes(e, h, auth.Require())

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped: ", err)
		}
	}()
	log.Println("Server running on port " + cfg.Port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Println("Shutdown error:", err)
	}
}

package main

import (
	"net/http"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"lofinight/api/handler"
	apiMiddleware "lofinight/api/middleware"
	"lofinight/api/routes"
	"lofinight/config"
	"lofinight/internal/cache"
	"lofinight/internal/repository"
	"lofinight/internal/service"
	"lofinight/internal/utils"
)

func main() {
	cfg := config.Load()
	validate := validator.New()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if cfg.JWTSecret == "" || cfg.JWTRefreshSecret == "" {
		logger.Fatal("JWT_SECRET and JWT_REFRESH_SECRET are required")
	}

	db := config.ConnectDB(cfg.DatabaseURL)
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	tokenManager := &utils.TokenManager{
		AccessSecret:  []byte(cfg.JWTSecret),
		RefreshSecret: []byte(cfg.JWTRefreshSecret),
		AccessTTL:     cfg.JWTExpires,
		RefreshTTL:    cfg.JWTRefreshExpires,
	}

	userRepo := repository.NewUserRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	albumRepo := repository.NewAlbumRepository(db)
	songRepo := repository.NewSongRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)

	var emailSender service.EmailSender
	if cfg.ResendAPIKey != "" {
		emailSender = service.NewResendEmailSender(cfg.ResendAPIKey, cfg.EmailFrom, cfg.AppBaseURL)
	}

	authService := service.NewAuthService(
		userRepo,
		emailSender,
		service.BcryptPasswordHasher{},
		service.JWTTokenIssuer{Manager: tokenManager},
		service.RealClock{},
		logger,
		service.AuthConfig{
			OTPLength: cfg.OTPLength,
			OTPTTL:    cfg.OTPExpires,
		},
	)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(
		genreRepo, artistRepo, albumRepo, songRepo, cacheClient, cfg.CacheTTL)
	playlistService := service.NewPlaylistService(playlistRepo, songRepo)

	authHandler := handler.NewAuthHandler(authService, validate)
	userHandler := handler.NewUserHandler(userService, validate)
	catalogHandler := handler.NewCatalogHandler(catalogService, validate)
	playlistHandler := handler.NewPlaylistHandler(playlistService, validate)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{Tokens: tokenManager}
	router := routes.NewRouter(app, authHandler, userHandler, catalogHandler, playlistHandler, authMiddleware)
	router.RegisterRoutes()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", cfg.HTTPAddr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

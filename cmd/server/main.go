package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/AnshRaj112/wave-backend/internal/config"
	"github.com/AnshRaj112/wave-backend/internal/database"
	"github.com/AnshRaj112/wave-backend/internal/handlers"
	"github.com/AnshRaj112/wave-backend/internal/logger"
	"github.com/AnshRaj112/wave-backend/internal/middleware"
	"github.com/AnshRaj112/wave-backend/internal/routes"
	"github.com/AnshRaj112/wave-backend/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load env
	envErr := godotenv.Load()
	cfg := config.Load()

	log := logger.New("wave-backend", cfg.LogLevel, cfg.IsProduction())
	if envErr != nil {
		log.Debug().Msg("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	hub := services.NewHub(log)
	store := services.NewEntryStore(services.WithNotifier(hub))
	profiles := services.NewProfileStore(hub)

	deps := handlers.Deps{
		Store:          store,
		Profiles:       profiles,
		Hub:            hub,
		Log:            log,
		AllowedOrigins: cfg.AllowedOrigins,
		MaxUploadBytes: cfg.MaxUploadBytes,
		RecentLimit:    cfg.RecentLimit,
	}

	if cfg.UseCloudinary() {
		media, err := services.NewCloudinaryMediaStore(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
		if err != nil {
			return err
		}
		deps.Media = media
		log.Info().Str("folder", cfg.CloudinaryFolder).Msg("Cloudinary media store initialized")
	} else {
		media, err := services.NewLocalMediaStore(cfg.MediaDir)
		if err != nil {
			return err
		}
		deps.Media = media
		deps.LocalMediaDir = media.Dir()
		log.Info().Str("dir", media.Dir()).Msg("Cloudinary credentials not found, storing media locally")
	}

	var limiter middleware.Limiter = middleware.DefaultMemoryLimiter()
	if cfg.RedisURI != "" {
		client, err := database.ConnectRedis(ctx, cfg.RedisURI)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to connect to Redis, using in-process rate limiting")
		} else {
			defer client.Close()
			limiter = middleware.NewRedisLimiter(client)
			log.Info().Msg("Connected to Redis")
		}
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.IsProduction() {
		r.Use(middleware.SecurityHeaders)
	}

	// Health check (no rate limit)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(limiter, cfg.TrustProxy, log))
		routes.SetupRoutes(r, handlers.New(deps))
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("Wave backend running")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

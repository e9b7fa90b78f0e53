package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/viet-college/department-cms/internal/api/http/handlers"
	"github.com/viet-college/department-cms/internal/auth"
	"github.com/viet-college/department-cms/internal/bootstrap"
	"github.com/viet-college/department-cms/internal/cache"
	"github.com/viet-college/department-cms/internal/config"
	"github.com/viet-college/department-cms/internal/observability"
	"github.com/viet-college/department-cms/internal/persistence"
	"github.com/viet-college/department-cms/internal/repository"
	"github.com/viet-college/department-cms/internal/service"

	httptransport "github.com/viet-college/department-cms/internal/api/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		logger.Warn("AUTH_JWT_SECRET not set; using insecure default, do not run like this in production")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	slideRepo := repository.NewHeroSlideRepository(pool)
	facultyRepo := repository.NewFacultyRepository(pool)
	newsRepo := repository.NewNewsRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	noteRepo := repository.NewNoteRepository(pool)
	mediaRepo := repository.NewMediaRepository(pool)
	contactRepo := repository.NewContactRepository(pool)

	if err := bootstrap.EnsureAdmin(ctx, cfg.Admin, cfg.Auth.BcryptCost, userRepo, logger); err != nil {
		logger.Fatal("failed to ensure admin user", zap.Error(err))
	}

	contentCache := cache.New(redis.Client, cfg.Cache.TTL(), logger)

	authService := service.NewAuthService(cfg.Auth, userRepo)
	contentService := service.NewContentService(service.ContentDependencies{
		HeroSlides: slideRepo,
		Faculty:    facultyRepo,
		News:       newsRepo,
		Events:     eventRepo,
		Notes:      noteRepo,
		Media:      mediaRepo,
	}, contentCache)
	contactService := service.NewContactService(contactRepo)

	authMiddleware := auth.NewMiddleware(authService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:       handlers.NewAuthHandler(authService),
		HeroSlides: handlers.NewHeroSlidesHandler(contentService),
		Faculty:    handlers.NewFacultyHandler(contentService),
		News:       handlers.NewNewsHandler(contentService),
		Events:     handlers.NewEventsHandler(contentService),
		Notes:      handlers.NewNotesHandler(contentService),
		Media:      handlers.NewMediaHandler(contentService),
		Contacts:   handlers.NewContactsHandler(contactService),
		AuthMW:     authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

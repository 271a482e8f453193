package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	gormlogger "gorm.io/gorm/logger"

	"modelhub-server/internal/config"
	"modelhub-server/internal/domain/catalog"
	"modelhub-server/internal/domain/newsletter"
	"modelhub-server/internal/domain/subscription"
	"modelhub-server/internal/domain/tool"
	"modelhub-server/internal/domain/tutorial"
	"modelhub-server/internal/domain/user"
	"modelhub-server/internal/infrastructure/auth"
	"modelhub-server/internal/infrastructure/crontab"
	"modelhub-server/internal/infrastructure/database"
	"modelhub-server/internal/infrastructure/huggingface"
	"modelhub-server/internal/infrastructure/logger"
	"modelhub-server/internal/infrastructure/observability"
	"modelhub-server/internal/infrastructure/replicate"
	"modelhub-server/internal/infrastructure/repository/modelrepo"
	"modelhub-server/internal/infrastructure/repository/newsletterrepo"
	"modelhub-server/internal/infrastructure/repository/subscriptionrepo"
	"modelhub-server/internal/infrastructure/repository/toolrepo"
	"modelhub-server/internal/infrastructure/repository/tutorialrepo"
	"modelhub-server/internal/infrastructure/repository/userrepo"
	"modelhub-server/internal/interfaces/httpserver"
	"modelhub-server/internal/interfaces/httpserver/handlers"
	v1 "modelhub-server/internal/interfaces/httpserver/routes/v1"
)

// @title ModelHub API
// @version 1.0
// @description AI model catalog with on-demand provider scraping
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
type Application struct {
	cfg        *config.Config
	httpServer *httpserver.HttpServer
	cron       *crontab.Crontab
	log        zerolog.Logger
}

func NewApplication(cfg *config.Config, httpServer *httpserver.HttpServer, cron *crontab.Crontab, log zerolog.Logger) *Application {
	return &Application{
		cfg:        cfg,
		httpServer: httpServer,
		cron:       cron,
		log:        log,
	}
}

// Start runs the HTTP listener, the background refresh schedule and the
// metrics sidecar until the context is cancelled.
func (a *Application) Start(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return a.httpServer.Run(groupCtx) })
	group.Go(func() error { return a.cron.Run(groupCtx) })
	group.Go(func() error { return a.runMetricsServer(groupCtx) })
	return group.Wait()
}

// runMetricsServer serves prometheus and pprof on a side port not exposed to
// the public surface.
func (a *Application) runMetricsServer(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	server := &http.Server{
		Addr:    a.cfg.MetricsAddr(),
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", a.cfg.MetricsAddr()).Msg("metrics server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("migrate database")
		}
	}

	taxonomy, err := loadTaxonomy(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("load taxonomy")
	}

	hfClient := huggingface.NewClient(huggingface.Config{
		BaseURL: cfg.HuggingFaceBaseURL,
		APIKey:  cfg.HuggingFaceAPIKey,
		Timeout: cfg.FetchTimeout,
		Retries: cfg.FetchRetries,
	}, log)
	replicateClient := replicate.NewClient(replicate.Config{
		BaseURL:  cfg.ReplicateBaseURL,
		APIToken: cfg.ReplicateAPIToken,
		Timeout:  cfg.FetchTimeout,
	}, log)

	modelRepository := modelrepo.NewModelRepository(db)
	assembler := catalog.NewAssembler(hfClient, taxonomy, log)
	catalogService := catalog.NewService(modelRepository, assembler, log)
	syncService := catalog.NewSyncService(modelRepository, []catalog.BulkSource{
		huggingface.NewLister(hfClient, cfg.BulkScrapeLimit),
		replicateClient,
	}, cfg.ScrapeMaxConcurrency, log)

	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	userService := user.NewService(userrepo.NewUserRepository(db), log)
	toolService := tool.NewService(toolrepo.NewToolRepository(db))
	tutorialService := tutorial.NewService(tutorialrepo.NewTutorialRepository(db))
	newsletterService := newsletter.NewService(newsletterrepo.NewNewsletterRepository(db))
	subscriptionService := subscription.NewService(subscriptionrepo.NewSubscriptionRepository(db))

	handlerProvider := handlers.NewProvider(cfg, catalogService, syncService, userService, tokenService,
		toolService, tutorialService, newsletterService, subscriptionService, log)
	routes := v1.NewRoutes(handlerProvider, tokenService)

	httpServer := httpserver.New(cfg, log, routes)
	cron := crontab.NewCrontab(syncService, cfg)
	app := NewApplication(cfg, httpServer, cron, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadTaxonomy(cfg *config.Config) (*catalog.Taxonomy, error) {
	if cfg.TaxonomyFile == "" {
		return catalog.DefaultTaxonomy(), nil
	}
	entries, err := config.LoadTaxonomyFile(cfg.TaxonomyFile)
	if err != nil {
		return nil, err
	}
	buckets := make([]catalog.TaxonomyBucket, 0, len(entries))
	for _, entry := range entries {
		buckets = append(buckets, catalog.TaxonomyBucket{
			Category: entry.Category,
			Keywords: entry.Keywords,
		})
	}
	return catalog.NewTaxonomy(buckets), nil
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}

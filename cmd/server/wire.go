//go:build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
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

var catalogSet = wire.NewSet(
	modelrepo.NewModelRepository,
	wire.Bind(new(catalog.Repository), new(*modelrepo.ModelRepository)),
	provideHuggingFaceClient,
	wire.Bind(new(catalog.Provider), new(*huggingface.Client)),
	provideTaxonomy,
	catalog.NewAssembler,
	catalog.NewService,
	provideBulkSources,
	provideSyncService,
)

var contentSet = wire.NewSet(
	userrepo.NewUserRepository,
	wire.Bind(new(user.Repository), new(*userrepo.UserRepository)),
	user.NewService,
	toolrepo.NewToolRepository,
	wire.Bind(new(tool.Repository), new(*toolrepo.ToolRepository)),
	tool.NewService,
	tutorialrepo.NewTutorialRepository,
	wire.Bind(new(tutorial.Repository), new(*tutorialrepo.TutorialRepository)),
	tutorial.NewService,
	newsletterrepo.NewNewsletterRepository,
	wire.Bind(new(newsletter.Repository), new(*newsletterrepo.NewsletterRepository)),
	newsletter.NewService,
	subscriptionrepo.NewSubscriptionRepository,
	wire.Bind(new(subscription.Repository), new(*subscriptionrepo.SubscriptionRepository)),
	subscription.NewService,
)

// BuildApplication assembles the catalog service with Wire.
func BuildApplication() (*Application, error) {
	wire.Build(
		config.Load,
		provideLogger,
		newGormDB,
		provideTokenService,
		catalogSet,
		contentSet,
		handlers.NewProvider,
		v1.NewRoutes,
		httpserver.New,
		crontab.NewCrontab,
		NewApplication,
	)
	return nil, nil
}

func provideLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logger.New(cfg.LogLevel, cfg.LogFormat)
}

func provideTokenService(cfg *config.Config) *auth.TokenService {
	return auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
}

func provideHuggingFaceClient(cfg *config.Config, log zerolog.Logger) *huggingface.Client {
	return huggingface.NewClient(huggingface.Config{
		BaseURL: cfg.HuggingFaceBaseURL,
		APIKey:  cfg.HuggingFaceAPIKey,
		Timeout: cfg.FetchTimeout,
		Retries: cfg.FetchRetries,
	}, log)
}

func provideTaxonomy(cfg *config.Config) (*catalog.Taxonomy, error) {
	return loadTaxonomy(cfg)
}

func provideBulkSources(cfg *config.Config, hfClient *huggingface.Client, log zerolog.Logger) []catalog.BulkSource {
	return []catalog.BulkSource{
		huggingface.NewLister(hfClient, cfg.BulkScrapeLimit),
		replicate.NewClient(replicate.Config{
			BaseURL:  cfg.ReplicateBaseURL,
			APIToken: cfg.ReplicateAPIToken,
			Timeout:  cfg.FetchTimeout,
		}, log),
	}
}

func provideSyncService(repo catalog.Repository, sources []catalog.BulkSource, cfg *config.Config, log zerolog.Logger) *catalog.SyncService {
	return catalog.NewSyncService(repo, sources, cfg.ScrapeMaxConcurrency, log)
}

func newGormDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

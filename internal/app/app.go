package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/ekalbevoldog/contested/internal/config"
	"github.com/ekalbevoldog/contested/internal/domain/campaign"
	"github.com/ekalbevoldog/contested/internal/domain/dashboard"
	"github.com/ekalbevoldog/contested/internal/domain/feedback"
	"github.com/ekalbevoldog/contested/internal/domain/match"
	"github.com/ekalbevoldog/contested/internal/domain/message"
	"github.com/ekalbevoldog/contested/internal/domain/offer"
	"github.com/ekalbevoldog/contested/internal/domain/profile"
	"github.com/ekalbevoldog/contested/internal/domain/session"
	"github.com/ekalbevoldog/contested/internal/domain/user"
	"github.com/ekalbevoldog/contested/internal/infrastructure/notify"
	cacherepo "github.com/ekalbevoldog/contested/internal/infrastructure/repository/cache"
	"github.com/ekalbevoldog/contested/internal/infrastructure/repository/memory"
	"github.com/ekalbevoldog/contested/internal/infrastructure/repository/postgres"
	"github.com/ekalbevoldog/contested/internal/infrastructure/repository/restapi"
	"github.com/ekalbevoldog/contested/internal/interfaces/httpapi"
	basecache "github.com/ekalbevoldog/contested/internal/platform/cache"
	idgen "github.com/ekalbevoldog/contested/internal/platform/id"
	"github.com/ekalbevoldog/contested/internal/platform/logging"
	"github.com/ekalbevoldog/contested/internal/usecase"
)

// repositories groups one implementation of every store so backend selection
// happens in a single place.
type repositories struct {
	users      user.Repository
	sessions   session.Repository
	profiles   profile.Repository
	campaigns  campaign.Repository
	matches    match.Repository
	offers     offer.Repository
	messages   message.Repository
	feedbacks  feedback.Repository
	dashboards dashboard.Repository
}

// NewHTTPServer wires the configured storage backend, the services and the
// router into a ready-to-run server. The returned cleanup releases the
// webhook pool and the database handle.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	repos, closeStorage, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.campaigns = cacherepo.NewCampaignRepository(repos.campaigns, store)
		repos.profiles = cacherepo.NewProfileRepository(repos.profiles, store)
		repos.matches = cacherepo.NewMatchRepository(repos.matches, store)
	}

	var publisher usecase.OfferEventPublisher
	var closePublisher func()
	if cfg.WebhookEnabled {
		webhookPublisher, err := notify.NewWebhookPublisher(notify.WebhookPublisherConfig{
			Endpoints:     cfg.WebhookEndpoints,
			SigningSecret: cfg.WebhookSigningSecret,
			Timeout:       cfg.WebhookTimeout,
			Workers:       cfg.WebhookWorkers,
		}, logger)
		if err != nil {
			if closeStorage != nil {
				_ = closeStorage()
			}
			return nil, nil, fmt.Errorf("build webhook publisher: %w", err)
		}
		publisher = webhookPublisher
		closePublisher = webhookPublisher.Close
	}

	idGen := idgen.NewRandomGenerator()

	authService := usecase.NewAuthService(repos.users, repos.sessions, idGen, []byte(cfg.SessionSecret), cfg.SessionTTL)
	profileService := usecase.NewProfileService(repos.profiles)
	campaignService := usecase.NewCampaignService(repos.campaigns, idGen)
	matchService := usecase.NewMatchService(repos.matches, idGen)
	offerService := usecase.NewOfferService(repos.offers, repos.campaigns, repos.users, publisher, idGen)
	messageService := usecase.NewMessageService(repos.messages, idGen)
	feedbackService := usecase.NewFeedbackService(repos.feedbacks, repos.users, idGen)
	dashboardService := usecase.NewDashboardService(repos.dashboards, repos.campaigns, repos.matches, repos.offers, repos.messages)

	handler := httpapi.NewHandler(
		authService,
		profileService,
		campaignService,
		matchService,
		offerService,
		messageService,
		feedbackService,
		dashboardService,
		logger,
	)
	router := httpapi.NewRouter(handler, authService, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cleanup := func(ctx context.Context) error {
		if closePublisher != nil {
			closePublisher()
		}
		if closeStorage != nil {
			return closeStorage()
		}
		return nil
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		stores := memory.NewStores()
		if cfg.SeedDemoData {
			if err := stores.Seed(context.Background()); err != nil {
				return repositories{}, nil, fmt.Errorf("seed demo data: %w", err)
			}
			logger.Info("demo data seeded", "backend", cfg.StorageBackend)
		}
		return repositories{
			users:      stores.Users,
			sessions:   stores.Sessions,
			profiles:   stores.Profiles,
			campaigns:  stores.Campaigns,
			matches:    stores.Matches,
			offers:     stores.Offers,
			messages:   stores.Messages,
			feedbacks:  stores.Feedbacks,
			dashboards: stores.Dashboards,
		}, nil, nil

	case config.BackendPostgres:
		dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinaryResult)
		db, err := otelsqlx.Open("postgres", dsn,
			otelsql.WithDBSystem("postgresql"),
			otelsql.WithDBName(dbNameFromURL(dsn)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("open postgres: %w", err)
		}
		db.SetMaxOpenConns(16)
		db.SetMaxIdleConns(8)
		db.SetConnMaxLifetime(30 * time.Minute)

		logger.Info("postgres backend ready", "database", dbNameFromURL(dsn))
		return repositories{
			users:      postgres.NewUserRepository(db),
			sessions:   postgres.NewSessionRepository(db),
			profiles:   postgres.NewProfileRepository(db),
			campaigns:  postgres.NewCampaignRepository(db),
			matches:    postgres.NewMatchRepository(db),
			offers:     postgres.NewOfferRepository(db),
			messages:   postgres.NewMessageRepository(db),
			feedbacks:  postgres.NewFeedbackRepository(db),
			dashboards: postgres.NewDashboardRepository(db),
		}, db.Close, nil

	case config.BackendSupabase:
		client := restapi.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, cfg.SupabaseTimeout)
		logger.Info("supabase backend ready", "base_url", cfg.SupabaseURL)
		return repositories{
			users:      restapi.NewUserRepository(client),
			sessions:   restapi.NewSessionRepository(client),
			profiles:   restapi.NewProfileRepository(client),
			campaigns:  restapi.NewCampaignRepository(client),
			matches:    restapi.NewMatchRepository(client),
			offers:     restapi.NewOfferRepository(client),
			messages:   restapi.NewMessageRepository(client),
			feedbacks:  restapi.NewFeedbackRepository(client),
			dashboards: restapi.NewDashboardRepository(client),
		}, nil, nil

	default:
		return repositories{}, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

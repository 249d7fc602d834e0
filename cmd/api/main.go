package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/hirehub/jobboard/modules/auth"
	"github.com/hirehub/jobboard/modules/companies"
	"github.com/hirehub/jobboard/modules/jobs"
	"github.com/hirehub/jobboard/modules/resumes"
	"github.com/hirehub/jobboard/modules/users"
	"github.com/hirehub/jobboard/pkg/config"
	"github.com/hirehub/jobboard/pkg/cookie"
	"github.com/hirehub/jobboard/pkg/httpserver"
	"github.com/hirehub/jobboard/pkg/logger"
	"github.com/hirehub/jobboard/pkg/mongo"
	"github.com/hirehub/jobboard/pkg/requestid"
)

type appConfig struct {
	AppName     string `env:"APP_NAME" envDefault:"jobboard-api"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

func main() {
	ctx := context.Background()

	var (
		appCfg    appConfig
		mongoCfg  mongo.Config
		httpCfg   httpserver.Config
		cookieCfg cookie.Config
		authCfg   auth.Config
		seedCfg   users.SeedConfig
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&cookieCfg)
	config.MustLoad(&authCfg)
	config.MustLoad(&seedCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Environment, appCfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	db, err := mongo.NewWithDatabase(ctx, mongoCfg)
	if err != nil {
		log.ErrorContext(ctx, "failed to connect to mongodb", logger.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := db.Client().Disconnect(ctx); err != nil {
			log.ErrorContext(ctx, "failed to disconnect from mongodb", logger.Error(err))
		}
	}()

	userRepo := users.NewRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.ErrorContext(ctx, "failed to ensure user indexes", logger.Error(err))
		os.Exit(1)
	}
	if err := users.Seed(ctx, userRepo, seedCfg, log); err != nil {
		log.ErrorContext(ctx, "failed to seed default users", logger.Error(err))
		os.Exit(1)
	}

	authSvc, err := auth.NewService(users.NewAuthStore(userRepo), authCfg,
		auth.WithLogger(log),
		auth.WithCookieManager(cookie.NewFromConfig(cookieCfg)),
	)
	if err != nil {
		log.ErrorContext(ctx, "failed to create auth service", logger.Error(err))
		os.Exit(1)
	}
	guard := auth.Middleware(authSvc.Resolver())

	userSvc := users.NewService(userRepo, users.WithLogger(log))
	jobSvc := jobs.NewService(jobs.NewRepository(db), jobs.WithLogger(log))
	resumeSvc := resumes.NewService(resumes.NewRepository(db), resumes.WithLogger(log))
	companySvc := companies.NewService(companies.NewRepository(db), companies.WithLogger(log))

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(ctx, log, mongo.Healthcheck(db.Client())))

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", auth.NewRouter(authSvc, log))
		r.Mount("/users", users.NewRouter(userSvc, guard, log))
		r.Mount("/jobs", jobs.NewRouter(jobSvc, guard, log))
		r.Mount("/resumes", resumes.NewRouter(resumeSvc, guard, log))
		r.Mount("/companies", companies.NewRouter(companySvc, guard, log))
	})

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("api server started", slog.String("addr", httpCfg.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("api server stopped")
		}),
	)
	if err := srv.Run(ctx, http.Handler(r)); err != nil {
		log.ErrorContext(ctx, "server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

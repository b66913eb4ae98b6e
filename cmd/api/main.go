package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"society/internal/adapter/repo"
	"society/internal/http/handlers"
	httpapi "society/internal/http/httpapi"
	"society/internal/infra"
	"society/internal/infra/geoip"
	"society/internal/middleware"
	"society/internal/service"
	"society/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	store, err := storage.NewFileStore(cfg.StoragePath, cfg.StorageBaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to prepare storage")
	}

	resolver, err := geoip.Open(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.GeoIPDBPath).Msg("geoip disabled")
	}
	defer resolver.Close()

	sql := infra.NewSQLRunner(dbpool, logger)
	programs := repo.NewProgramRepository(sql)
	catalog := repo.NewCatalogRepository(sql)
	donations := repo.NewDonationRepository(sql)
	expenses := repo.NewExpenseRepository(sql)
	teamRepo := repo.NewTeamRepository(sql)
	users := repo.NewUserRepository(sql)

	app := &handlers.App{
		Logger:    infra.Component(logger, "http"),
		JWTSecret: cfg.JWTSecret,
		JWTTTL:    cfg.JWTTTL,

		Programs:  service.NewProgramService(programs, catalog, donations, expenses, store, infra.Component(logger, "programs")),
		Donations: service.NewDonationService(donations, programs, catalog),
		Team:      service.NewTeamService(teamRepo, store, cfg.TeamDefaultYear, infra.Component(logger, "team")),
		Dashboard: service.NewDashboardService(repo.NewDashboardRepository(sql)),

		Catalog:  catalog,
		Expenses: expenses,
		TeamRepo: teamRepo,
		Users:    users,
		Store:    store,
		DB:       dbpool,
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:         infra.Component(logger, "access"),
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		DefaultLocale:  cfg.DefaultLocale,
		CountryLookup:  resolver.Lookup(),
		AdminLookup:    middleware.UserAdminLookup(users),
		RateLimit:      cfg.RateLimitPerMin,
		StaticDir:      store.BasePath(),
	})

	server := infra.NewHTTPServer(cfg, router)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("addr", server.Addr()).Str("env", cfg.AppEnv).Msg("API listening")
	if err := server.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("http server failed")
		return
	}
	logger.Info().Msg("server stopped")
}

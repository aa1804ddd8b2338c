package main

import (
	"github.com/amaumene/wheretowatch/internal/config"
	"github.com/amaumene/wheretowatch/internal/constants"
	"github.com/amaumene/wheretowatch/internal/handlers"
	"github.com/amaumene/wheretowatch/internal/services"
	"github.com/amaumene/wheretowatch/pkg/httputil"
	"github.com/amaumene/wheretowatch/pkg/logger"
	"github.com/amaumene/wheretowatch/pkg/security"
)

var (
	Logger           logger.Logger
	Config           *config.Config
	handler          *handlers.Handler
	serviceContainer *services.Container
)

func InitializeConfig() {
	cfg, err := config.Load()
	if err != nil {
		// The logger level comes from config, so fall back to the default one.
		logger.New().Fatalf("[App] failed to load configuration: %v", err)
	}
	Config = cfg
}

func InitializeLogger() {
	if !logger.IsKnownLevel(Config.LogLevel) {
		Logger = logger.NewWithLevel(constants.DefaultLogLevel)
		Logger.Warnf("[App] warning: unknown log level '%s', defaulting to %s", Config.LogLevel, constants.DefaultLogLevel)
		return
	}
	Logger = logger.NewWithLevel(Config.LogLevel)
}

func InitializeServices() {
	if Config.HasAPIKey() {
		validator := security.NewAPIKeyValidator()
		if !validator.ValidateAPIKey(Config.TMDBAPIKey) {
			Logger.Warnf("[App] TMDB API key looks malformed (%s)", validator.MaskAPIKey(Config.TMDBAPIKey))
		} else {
			Logger.Infof("[App] TMDB API key configured (%s)", validator.MaskAPIKey(Config.TMDBAPIKey))
		}
	} else {
		// Requests will fail with a configuration error until a key is set.
		Logger.Warnf("[App] TMDB_API_KEY is not set")
	}

	tmdbService := services.NewTMDB(
		Config.TMDBAPIKey,
		Config.TMDBBaseURL,
		httputil.NewHTTPClient(constants.UpstreamTimeout),
		Logger,
	)

	serviceContainer = services.NewContainer(tmdbService, Logger)
	handler = handlers.New(serviceContainer, Config)

	Logger.Infof("[App] services initialized successfully")
}

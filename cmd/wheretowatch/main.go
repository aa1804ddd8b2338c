package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/wheretowatch/internal/constants"
	"github.com/amaumene/wheretowatch/internal/middleware"
)

func setupRouter() *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(Logger))
	r.Use(middleware.Logger(Logger))
	// CORS runs before routing so preflight works on every path
	r.Use(middleware.CORS())
	r.Use(middleware.Gzip())

	handler.RegisterRoutes(r)
	return r
}

func main() {
	InitializeConfig()
	InitializeLogger()
	InitializeServices()

	if Config.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:              ":" + Config.Port,
		Handler:           setupRouter(),
		ReadHeaderTimeout: constants.RequestTimeout,
		WriteTimeout:      Config.RequestTimeout,
	}

	go func() {
		Logger.Infof("[App] starting HTTP server on port %s", Config.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			Logger.Fatalf("[App] HTTP server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	Logger.Infof("[App] received %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		Logger.Errorf("[App] graceful shutdown failed: %v", err)
	}
}

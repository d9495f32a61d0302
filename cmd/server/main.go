package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kolsense/kolsense/internal/conf"
	"github.com/kolsense/kolsense/internal/kol"
	"github.com/kolsense/kolsense/internal/masa"
	"github.com/kolsense/kolsense/internal/mcp"
	"github.com/kolsense/kolsense/internal/nlp"
	"github.com/kolsense/kolsense/internal/pkg/logger"
	"github.com/kolsense/kolsense/internal/server"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
)

func main() {
	flag.Parse()

	// Load configuration
	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger with config
	log, err := logger.New(&logger.Config{
		Level:            config.Log.Level,
		Format:           config.Log.Format,
		Output:           config.Log.Output,
		EnableCaller:     config.Log.EnableCaller,
		EnableStacktrace: config.Log.EnableStacktrace,
		File: logger.FileConfig{
			Filename:   config.Log.File.Filename,
			MaxSize:    config.Log.File.MaxSize,
			MaxAge:     config.Log.File.MaxAge,
			MaxBackups: config.Log.File.MaxBackups,
			Compress:   config.Log.File.Compress,
		},
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	log.Info("config loaded successfully")

	// The server still starts without an API key so health and ping stay
	// reachable; every kol.* action then reports the missing client.
	var searcher kol.Searcher
	if config.Masa.APIKey == "" {
		log.Warn("MASA_API_KEY not set, search actions will fail")
	} else {
		client, err := masa.New(&masa.Config{
			BaseURL:         config.Masa.BaseURL,
			APIKey:          config.Masa.APIKey,
			Timeout:         config.Masa.Timeout,
			PollInterval:    config.Masa.PollInterval,
			MaxPollAttempts: config.Masa.MaxPollAttempts,
			SourceType:      config.Masa.SourceType,
		}, log.Named("masa"))
		if err != nil {
			log.Fatal("failed to initialize Masa client", zap.Error(err))
		}
		defer client.Close()
		searcher = client
	}

	// Initialize use case and action router
	analyzer := nlp.NewLexiconAnalyzer()
	useCase := kol.NewUseCase(searcher, analyzer, log.Named("kol"), config.Server.DefaultMaxResults)

	actions := mcp.NewRouter(log.Named("mcp"))
	mcp.RegisterKOLActions(actions, useCase)

	httpServer := server.NewHTTPServer(config, log, actions, searcher != nil)

	go func() {
		if err := httpServer.Start(); err != nil {
			log.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	log.Info("server started successfully",
		zap.Strings("actions", actions.Actions()),
	)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Stop(ctx); err != nil {
		log.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

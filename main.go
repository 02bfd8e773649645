package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/youpick/backend/ai"
	"github.com/youpick/backend/cliparse"
	"github.com/youpick/backend/hangout"
	"github.com/youpick/backend/middleware"
	"github.com/youpick/backend/notify"
	"github.com/youpick/backend/router"
	"github.com/youpick/backend/store"
)

func main() {
	// Load .env if present; real deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to MongoDB, or fall back to the in-memory store
	var st hangout.Store
	if cfg.MongoURI != "" {
		client, err := store.Connect(context.Background(), cfg.MongoURI)
		if err != nil {
			slog.Error("mongodb connection failed", "error", err)
			os.Exit(1)
		}
		defer client.Disconnect(context.Background())
		st = store.NewMongo(client.Database(cfg.DatabaseName))
		slog.Info("Connected to MongoDB", "database", cfg.DatabaseName)
	} else {
		slog.Warn("no MongoDB URI configured, using volatile in-memory store")
		st = store.NewMemory()
	}

	// Notifications are optional; without credentials finalization still
	// works, participants just get no email
	var notifier notify.Notifier = notify.Noop{}
	if cfg.EmailJSConfigured() {
		notifier = notify.NewEmailJS(cfg.EmailJSServiceID, cfg.EmailJSTemplateID, cfg.EmailJSPublicKey)
		slog.Info("EmailJS notifications enabled")
	} else {
		slog.Warn("EmailJS not configured, finalization emails disabled")
	}

	// Suggestion service is optional too
	var aiClient *ai.Client
	if cfg.AIServiceURL != "" {
		aiClient = ai.NewClient(cfg.AIServiceURL)
		slog.Info("Suggestion service enabled", "url", cfg.AIServiceURL)
	}

	svc := hangout.NewService(st, notifier)

	// Create router
	mux := router.NewRouter(svc, aiClient)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

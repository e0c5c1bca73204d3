package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/Code-Monger/WordSpinneret/pkg/config"
	"github.com/Code-Monger/WordSpinneret/pkg/dictionary"
	"github.com/Code-Monger/WordSpinneret/pkg/documents"
	"github.com/Code-Monger/WordSpinneret/pkg/engine"
	"github.com/Code-Monger/WordSpinneret/pkg/resources"
	"github.com/Code-Monger/WordSpinneret/pkg/spellcheck"
	"github.com/Code-Monger/WordSpinneret/pkg/stats"
)

var (
	port         = flag.Int("port", 8080, "Port to listen on")
	baseURL      = flag.String("baseurl", "", "Base URL for the server (e.g., http://localhost:8080)")
	serverName   = flag.String("name", "WordSpinneret MCP Server", "Server name")
	serverVer    = flag.String("version", "1.0.0", "Server version")
	timeoutSecs  = flag.Int("timeout", 300, "Server timeout in seconds")
	instructions = flag.String("instructions", "Spell checking and thesaurus lookups over Hunspell dictionaries. Open a document to choose a language, then check text or look up synonyms.", "Server instructions")
	dataDir      = flag.String("data-dir", filepath.Join(".", "data"), "Directory to store data files")
	configPath   = flag.String("config", "", "Path to the config file (default ~/.config/wordspinneret/config.yaml)")
	language     = flag.String("lang", "", "Default document language, overrides the config file")
	watch        = flag.Bool("watch", false, "Rescan dictionaries when files change")
	debug        = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(*dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *language != "" {
		cfg.DefaultLanguage = *language
	}
	if *watch {
		cfg.Watch = true
	}

	// Enumerate the installed dictionaries once up front so that a bad
	// search path shows in the log at startup
	cache := dictionary.NewCacheFromLocations(cfg.Locations(), logger)
	if catalog, err := cache.Catalog(); err != nil {
		log.Printf("[Server] Failed to scan dictionaries: %v", err)
	} else {
		log.Printf("[Server] Found %d languages: %v", catalog.Len(), catalog.Languages())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Watch {
		watcher, err := dictionary.NewWatcher(cache, func(catalog *dictionary.Catalog, err error) {
			if err != nil {
				log.Printf("[Server] Dictionary rescan failed: %v", err)
				return
			}
			log.Printf("[Server] Dictionaries changed, %d languages available", catalog.Len())
		}, cfg.WatchDebounce, logger)
		if err != nil {
			log.Fatalf("Failed to create dictionary watcher: %v", err)
		}
		if err := watcher.Start(ctx); err != nil {
			log.Fatalf("Failed to watch dictionaries: %v", err)
		}
		defer watcher.Stop()
	}

	store := documents.NewStore(cache, engine.DefaultLoader(), documents.Options{
		DefaultLanguage: cfg.DefaultLanguage,
		Thesaurus:       cfg.Thesaurus,
		Logger:          logger,
	})

	// Create the MCP server
	mcpServer := server.NewMCPServer(
		*serverName,
		*serverVer,
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
		server.WithToolCapabilities(true),
		server.WithLogging(),
		server.WithInstructions(*instructions),
	)

	// Initialize stats service
	if err := stats.InitStatsManager(*dataDir); err != nil {
		log.Fatalf("Failed to initialize stats manager: %v", err)
	}

	// Register tools and resources
	spellcheck.RegisterSpellCheck(mcpServer, spellcheck.NewTools(store, cache, cfg.MaxSuggestions))
	resources.RegisterResources(mcpServer, resources.New(cache, store))
	stats.RegisterStats(mcpServer)

	// Create the SSE server
	baseURLValue := *baseURL
	if baseURLValue == "" {
		baseURLValue = fmt.Sprintf("http://localhost:%d", *port)
	}

	sseServer := server.NewSSEServer(
		mcpServer,
		server.WithBaseURL(baseURLValue),
		server.WithSSEEndpoint("/"),
		server.WithMessageEndpoint("/messages"),
	)

	timeout := time.Duration(*timeoutSecs) * time.Second
	httpServer := &http.Server{
		Addr:        fmt.Sprintf(":%d", *port),
		Handler:     sseServer,
		ReadTimeout: timeout,
		IdleTimeout: timeout,
	}

	// Set up signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[Server] Starting MCP server on port %d...", *port)
		log.Printf("[Server] Base URL: %s", baseURLValue)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Server] Failed to start server: %v", err)
		}
	}()

	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	log.Println("[Server] Shutting down server...")

	if statsManager := stats.GetStatsManager(); statsManager != nil {
		sessionStats := statsManager.GetSessionStats()
		persistentStats := statsManager.GetPersistentStats()
		statsText := stats.FormatStats(sessionStats, persistentStats)
		log.Printf("[Server] Final server statistics:\n%s", statsText)
	}

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Server] Server shutdown failed: %v", err)
	}
	if err := store.CloseAll(); err != nil {
		log.Printf("[Server] Failed to release dictionaries: %v", err)
	}
	log.Println("[Server] Server stopped")
}

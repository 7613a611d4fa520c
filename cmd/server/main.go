package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pep299/vc-briefing/internal/application"
	"github.com/pep299/vc-briefing/internal/config"
	"github.com/pep299/vc-briefing/internal/transport/server"
)

var (
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("VC Briefing Server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  GEMINI_API_KEY           Gemini API key (required)\n")
		fmt.Printf("  OPENAI_API_KEY           OpenAI API key (required for DRAFT_PROVIDER=openai)\n")
		fmt.Printf("  ANTHROPIC_API_KEY        Anthropic API key (required for DRAFT_PROVIDER=anthropic)\n")
		fmt.Printf("  DRAFT_PROVIDER           openai or anthropic (default: openai)\n")
		fmt.Printf("  BRIEF_CONDITIONING       bullets or deck (default: bullets)\n")
		fmt.Printf("  BRIEF_MAX_WORDS          Hard word cap for briefs, 0 disables (default: 0)\n")
		fmt.Printf("  REQUEST_TIMEOUT_SECONDS  Per-request deadline (default: 60)\n")
		fmt.Printf("  CONFIG_FILE              Optional YAML config file\n")
		fmt.Printf("  PORT                     Server port (default: 8080)\n")
		fmt.Printf("  HOST                     Server host (default: 0.0.0.0)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("VC Briefing Server\n")
		fmt.Printf("Version: %s\n", application.Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create application
	app, err := application.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// The write timeout must outlast the per-request deadline
	writeTimeout := app.RequestTimeout() + 10*time.Second
	if app.RequestTimeout() <= 0 {
		writeTimeout = 0
	}

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:      server.CreateHandler(app),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server
	go func() {
		log.Printf("🚀 Starting server on %s:%s (summarizer=%s drafter=%s/%s conditioning=%s)",
			cfg.Host, cfg.Port, cfg.GeminiModel, cfg.DraftProvider, cfg.DraftModel(), cfg.BriefConditioning)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("🛑 Shutting down server...")

	cancel()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("✅ Server stopped")
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/agenthands/interactome/internal/config"
	"github.com/agenthands/interactome/internal/core"
	"github.com/agenthands/interactome/internal/llm"
	"github.com/agenthands/interactome/internal/logging"
	"github.com/agenthands/interactome/internal/server"
	"github.com/agenthands/interactome/internal/source"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		log.Printf("Warning: %s not found, using built-in defaults", cfgPath)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	logOut := logging.Setup(cfg.Log)
	defer logOut.Close()
	gin.DefaultWriter = logOut
	gin.DefaultErrorWriter = logOut

	ctx := context.Background()

	router, closeSources, err := source.FromConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up interaction sources: %v", err)
	}
	defer closeSources()

	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}
	if llmClient == nil {
		log.Println("No LLM provider configured, insights disabled")
	}

	analyzer := core.NewAnalyzer(router, cfg, llmClient)
	srv, err := server.NewServer(analyzer, router.Databases())
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.SetupRouter(),
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}

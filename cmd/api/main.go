package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/tlv300/whois-be/internal/config"
	"github.com/tlv300/whois-be/internal/database"
	"github.com/tlv300/whois-be/internal/handler"
	"github.com/tlv300/whois-be/internal/repository"
	"github.com/tlv300/whois-be/internal/service"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables from OS")
	}

	logger := log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// The lookup-history sink is optional; lookups work without it.
	var db *sql.DB
	var lookups repository.ILookupRepository
	if cfg.DB.Enabled() {
		db, err = database.ConnectDB(cfg.DB)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		lookups = repository.NewLookupRepository(db)
		logger.Println("Lookup logging enabled - connected to database")
	} else {
		lookups = repository.NewNoopLookupRepository()
		logger.Println("Lookup logging disabled - database not configured")
	}

	if cfg.Whois.APIKey == "" {
		logger.Println("WARN: WHOIS_API_KEY is not set; lookups will fail until it is configured")
	}

	whoisService := service.NewWhoisService(cfg.Whois)
	authService := service.NewAuthService(cfg.Admin, cfg.JWT)
	router := handler.SetupRouter(whoisService, authService, lookups, db, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Printf("Server starting on port %s", cfg.Server.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Cannot run server on port %s: %v", cfg.Server.Port, err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Println("Shut down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = server.Shutdown(ctx)
	if err != nil {
		logger.Fatalf("Server shutdown failed: %v", err)
	}
	logger.Println("Server successfully shut down")
}

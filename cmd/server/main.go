package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/deathroll/internal/common/clock"
	"github.com/KirkDiggler/deathroll/internal/common/uuid"
	"github.com/KirkDiggler/deathroll/internal/dice"
	"github.com/KirkDiggler/deathroll/internal/handlers/web"
	"github.com/KirkDiggler/deathroll/internal/handlers/ws"
	"github.com/KirkDiggler/deathroll/internal/repositories/session"
	"github.com/KirkDiggler/deathroll/internal/services/calc"
	deathrollService "github.com/KirkDiggler/deathroll/internal/services/deathroll"
	"github.com/KirkDiggler/deathroll/internal/services/messaging"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env if present; real env vars win
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	sessionRepo, err := session.NewRedis(&session.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	// Initialize dice roller
	diceRoller := dice.New(&dice.Config{})

	// Initialize messaging service
	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Initialize the hub and the match engine
	hub := ws.NewHub()

	deathrollSvc, err := deathrollService.New(&deathrollService.Config{
		SessionRepo:   sessionRepo,
		DiceRoller:    diceRoller,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Messaging:     messagingSvc,
		Gateway:       hub,
	})
	if err != nil {
		log.Fatalf("Failed to create deathroll service: %v", err)
	}

	wsHandler, err := ws.NewHandler(&ws.Config{
		Hub:           hub,
		Service:       deathrollSvc,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create websocket handler: %v", err)
	}

	// Initialize the calculators
	calcSvc, err := calc.NewService(&calc.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create calc service: %v", err)
	}

	webHandler, err := web.NewHandler(&web.Config{
		CalcService: calcSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create web handler: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", wsHandler)
	webHandler.RegisterRoutes(mux)

	server := &http.Server{
		Addr:    getEnv("LISTEN_ADDR", ":5000"),
		Handler: mux,
	}

	go func() {
		log.Printf("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"autotube/api"
	"autotube/events"
	"autotube/generator"
	"autotube/store"
	"autotube/youtube"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	ctx := context.Background()

	st, err := store.NewFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to initialize store: %v", err)
	}

	provider := generator.NewDefaultProvider()
	if provider == nil {
		log.Println("Warning: no completion provider configured (set ANTHROPIC_API_KEY or COHERE_API_KEY); /api/generate will fail")
	} else {
		log.Printf("Completion provider ready (model: %s)", provider.ModelName())
	}

	producer, err := events.NewProducerFromEnv()
	if err != nil {
		log.Fatalf("failed to initialize Kafka producer: %v", err)
	}
	defer producer.Close()

	archiver := store.NewArchiverFromEnv(ctx)
	if archiver == nil {
		log.Println("S3 not configured; video archival disabled")
	}

	server := api.NewServer(api.ServerConfig{
		Store:      st,
		Generator:  generator.New(provider),
		Auth:       youtube.NewAuthFromEnv(),
		Producer:   producer,
		Archiver:   archiver,
		CronSecret: os.Getenv("CRON_SECRET"),
	})

	r := api.NewRouter(server)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/config")
	log.Println("  POST /api/config")
	log.Println("  POST /api/generate")
	log.Println("  GET  /api/videos")
	log.Println("  POST /api/videos")
	log.Println("  GET  /api/auth/youtube")
	log.Println("  GET  /api/auth/youtube/callback")
	log.Println("  POST /api/publish")
	log.Println("  GET  /api/cron")
	log.Println("  GET  /api/schedule/describe")
	log.Println("  GET  /api/topics")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// Command provision applies the backend schema to the configured Postgres
// instance. Run it once against a fresh database before using the CLI.
package main

import (
	"context"
	"log"

	"github.com/Engineerbabu777/blog-app/internal/backend"
	"github.com/Engineerbabu777/blog-app/internal/client/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	platform, err := backend.New(ctx, backend.Config{
		DatabaseDSN:             cfg.DatabaseDSN,
		SecretKey:               cfg.SecretKey,
		SessionValidityDuration: cfg.SessionValidityDuration,
		S3RootUser:              cfg.S3RootUser,
		S3RootPassword:          cfg.S3RootPassword,
		S3Bucket:                cfg.S3Bucket,
		S3Region:                cfg.S3Region,
		S3BaseEndpoint:          cfg.S3BaseEndpoint,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer platform.Close()

	if err := platform.RunMigrations(ctx); err != nil {
		log.Fatalf("%v", err)
	}

	log.Println("schema is up to date")
}

package store_fx

import (
	"context"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"roteiro/internal/infra"
)

var Module = fx.Provide(
	provideBlobStore)

// provideBlobStore picks the persistence backend from STORAGE_BACKEND:
// "postgres" (POSTGRES_URL), "file" (STORAGE_DIR) or "memory". Every
// collection shares the one store.
func provideBlobStore(lc fx.Lifecycle) infra.BlobStore {
	backend := getEnvWithDefault("STORAGE_BACKEND", "file")

	switch strings.ToLower(backend) {
	case "postgres":
		dsn := os.Getenv("POSTGRES_URL")
		if dsn == "" {
			log.Fatal("POSTGRES_URL is required when using the postgres backend")
		}
		db := infra.InitPostgresql(dsn)
		store, err := infra.NewPostgresBlobStore(db)
		if err != nil {
			log.Fatalf("Failed to initialize postgres blob store: %v", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				infra.ClosePostgresql(db)
				return nil
			},
		})
		return store
	case "file":
		dir := getEnvWithDefault("STORAGE_DIR", "data")
		store, err := infra.NewFileBlobStore(dir)
		if err != nil {
			log.Fatalf("Failed to initialize file blob store: %v", err)
		}
		return store
	case "memory":
		return infra.NewMemoryBlobStore()
	default:
		log.Fatalf("Unsupported storage backend: %s. Use 'postgres', 'file' or 'memory'", backend)
		return nil
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

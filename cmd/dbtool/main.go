package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"globetrotter/internal/adapters/cache"
	"globetrotter/internal/config"
	"globetrotter/internal/platform/db"

	"github.com/joho/godotenv"
)

// dbtool manages the Postgres lookup cache schema.
//
//	dbtool init    create tables and indexes
//	dbtool purge   delete expired entries
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
	flag.Parse()

	cmd := "init"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	switch cmd {
	case "init":
		log.Println("Initializing lookup cache schema...")
		if err := cache.InitSchema(ctx, conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		log.Println("Schema ready.")
	case "purge":
		n, err := cache.PurgeExpired(ctx, conn)
		if err != nil {
			log.Fatalf("purge failed: %v", err)
		}
		log.Printf("Purged %d expired entries.", n)
	default:
		log.Fatalf("unknown command %q (want init or purge)", cmd)
	}
}

package main

import (
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"voyage-routing-service/internal/adapters/cache"
	"voyage-routing-service/internal/config"
	"voyage-routing-service/internal/platform/db"
)

// dbtool provisions the path-result cache schema ahead of a server run.
// Exactly one of DATABASE_URL (Postgres) or PATH_CACHE_DB (SQLite) is
// expected to be set.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	sqlitePath := config.Get("PATH_CACHE_DB", "")

	switch {
	case strings.TrimSpace(databaseURL) != "":
		initPostgres(databaseURL)
	case strings.TrimSpace(sqlitePath) != "":
		initSQLite(sqlitePath)
	default:
		log.Fatal("dbtool: set DATABASE_URL for Postgres or PATH_CACHE_DB for SQLite")
	}
}

func initPostgres(databaseURL string) {
	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("initializing postgres path-result cache schema...")
	if err := cache.InitPostgresSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("schema ready.")
}

func initSQLite(path string) {
	conn, err := db.OpenSQLite(path)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("initializing sqlite path-result cache schema...")
	if err := cache.InitSQLiteSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("schema ready.")
}

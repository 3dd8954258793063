package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"voyage-routing-service/internal/adapters/cache"
	"voyage-routing-service/internal/adapters/fixtures"
	"voyage-routing-service/internal/api"
	"voyage-routing-service/internal/config"
	"voyage-routing-service/internal/platform/db"
	"voyage-routing-service/internal/ports"
	"voyage-routing-service/internal/services"
)

// main is the application composition root. It loads the static
// schedule from fixture files, wires the optional path-result caches
// behind the engine, and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	legPath := config.Get("LEG_FIXTURE_PATH", "data/legs.txt")
	chargePath := config.Get("PORT_CHARGE_FIXTURE_PATH", "data/port_charges.txt")
	port := config.Get("PORT", "8080")

	graph, err := fixtures.LoadGraph(fixtures.NewLegFile(legPath), fixtures.NewPortChargeFile(chargePath))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("graph loaded ports=%d", len(graph.AllPorts()))

	counters := &services.QueryCounters{}
	var engine services.Engine = services.NewEngine(graph, counters)

	if pathCache := openPathCache(); pathCache != nil {
		log.Println("path-result cache enabled")
		engine = services.NewCachingEngine(engine, pathCache)
	}

	router := api.NewRouter(engine, graph, counters)

	log.Printf("server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openPathCache wires whichever path-result cache backend is
// configured, preferring Redis as the hot layer, then Postgres, then
// falling back to the embedded SQLite cache, or disabling caching
// entirely when none are configured.
func openPathCache() ports.PathResultCache {
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		return cache.NewRedisPathCache(client, 15*time.Minute)
	}

	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pgDB, err := db.Open(databaseURL)
		if err != nil {
			log.Printf("path cache disabled: %v", err)
			return nil
		}
		if err := cache.InitPostgresSchema(pgDB); err != nil {
			log.Printf("path cache disabled: %v", err)
			return nil
		}
		return cache.NewSQLPathCache(pgDB)
	}

	cachePath := config.Get("PATH_CACHE_DB", "")
	if strings.TrimSpace(cachePath) == "" {
		return nil
	}

	sqliteDB, err := db.OpenSQLite(cachePath)
	if err != nil {
		log.Printf("path cache disabled: %v", err)
		return nil
	}
	if err := cache.InitSQLiteSchema(sqliteDB); err != nil {
		log.Printf("path cache disabled: %v", err)
		return nil
	}
	return cache.NewSqlitePathCache(sqliteDB)
}

// internal/app/app.go
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/mux"

	"nearmiss-api/internal/config"
	hh "nearmiss-api/internal/handlers/http"
	"nearmiss-api/internal/incident"
	"nearmiss-api/internal/insights"
	"nearmiss-api/internal/llm"
	jsonrepo "nearmiss-api/internal/repositories/jsonfile"
	mysqlrepo "nearmiss-api/internal/repositories/mysql"
	"nearmiss-api/internal/stats"
)

// App menampung router utama
type App struct {
	Router *mux.Router
	Store  *incident.Store
}

// New memuat dataset dari source terpilih, menyusun Store + service statistik
// + generator insight, lalu inject semuanya ke handler dan registrasi routes.
// Error load dataset dikembalikan ke caller: startup tanpa data = fatal.
func New(cfg *config.Config) (*App, error) {
	src, err := newSource(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	store, err := incident.NewStore(ctx, src)
	if err != nil {
		return nil, err
	}
	log.Printf("loaded %d incident records (source=%s)", store.Len(), cfg.DataSource)

	cache := stats.NewCache(cfg.CacheTTL)
	service := stats.NewService(store, cache)

	// === Inject deps ke handlers ===
	hh.SetStore(store)
	hh.SetStatsService(service)
	hh.SetStatsCache(cache)
	hh.SetInsightGenerator(newInsightGenerator())

	r := mux.NewRouter()
	RegisterRoutes(r)

	return &App{Router: r, Store: store}, nil
}

// newSource memilih sumber data insiden berdasarkan config.
func newSource(cfg *config.Config) (incident.Source, error) {
	switch cfg.DataSource {
	case "", "json":
		return &jsonrepo.IncidentsRepo{Path: cfg.DataPath}, nil

	case "mysql":
		db, err := sql.Open("mysql", cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("open mysql: %w", err)
		}
		db.SetMaxOpenConns(cfg.MySQL.MaxOpen)
		db.SetMaxIdleConns(cfg.MySQL.MaxIdle)
		db.SetConnMaxLifetime(30 * time.Minute)

		// retry ping agar tahan saat container DB baru up
		var pingErr error
		for i := 0; i < 20; i++ {
			pingErr = db.Ping()
			if pingErr == nil {
				break
			}
			log.Printf("[WARN] ping mysql failed (try %d): %v", i+1, pingErr)
			time.Sleep(3 * time.Second)
		}
		if pingErr != nil {
			return nil, fmt.Errorf("mysql not ready after retries: %w", pingErr)
		}
		return &mysqlrepo.IncidentsRepo{DB: db}, nil

	default:
		return nil, fmt.Errorf("unknown DATA_SOURCE %q", cfg.DataSource)
	}
}

// newInsightGenerator memilih varian insight: model remote kalau client
// berhasil init, selain itu rule-based murni. Handler tidak perlu tahu.
func newInsightGenerator() insights.Generator {
	client, err := llm.NewFromEnv()
	if err != nil {
		log.Printf("[WARN] init llm client: %v; using rule-based insights", err)
		return insights.RuleGenerator{}
	}
	log.Printf("llm client ready (model=%s)", client.Model())
	return &insights.ModelGenerator{Client: client}
}

// Package app wires the study planner together: it opens the database,
// seeds the topic catalog, and exposes the services the rest of the
// program works through.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/enesk/study-planner/internal/catalog"
	"github.com/enesk/study-planner/internal/exam"
	"github.com/enesk/study-planner/internal/model"
	"github.com/enesk/study-planner/internal/notify"
	"github.com/enesk/study-planner/internal/plan"
	"github.com/enesk/study-planner/internal/store"
	appsync "github.com/enesk/study-planner/internal/sync"
	"github.com/enesk/study-planner/internal/timer"
)

// App is the composition root. All services share one SQLite store.
type App struct {
	Config *model.AppConfig
	Store  *store.SQLiteStore

	Catalog *catalog.Store
	Weekly  *plan.WeeklyStore
	Daily   *plan.DailyStore
	Engine  *appsync.Engine
	Exams   *exam.Service
	Timer   *timer.Service

	log zerolog.Logger
}

// New builds the application from configuration. The database file and
// its parent directory are created if missing, the schema is migrated,
// and the month catalog is seeded on first run. When auto sync is
// enabled a reconciliation pass runs before New returns.
func New(ctx context.Context, cfg *model.AppConfig, log zerolog.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app config is required")
	}
	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		log = log.Level(level)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	db, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", cfg.Database.Path, err)
	}

	cat := catalog.New(db, log)
	if err := cat.EnsureSeed(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding month catalog: %w", err)
	}

	weekly := plan.NewWeeklyStore(db, log)
	daily := plan.NewDailyStore(db, log)
	notifier := notify.NewStoreNotifier(db, log)
	engine := appsync.New(cat, weekly, daily, db, notifier, log)

	a := &App{
		Config:  cfg,
		Store:   db,
		Catalog: cat,
		Weekly:  weekly,
		Daily:   daily,
		Engine:  engine,
		Exams:   exam.NewService(db, log),
		Timer:   timer.NewService(db, log),
		log:     log,
	}

	if cfg.Sync.AutoOnStart {
		stats, err := engine.ManualSync(ctx)
		if err != nil {
			a.log.Error().Err(err).Msg("startup sync failed")
		} else {
			a.log.Info().Int("created", stats.Created).Int("removed", stats.Removed).
				Msg("startup sync complete")
		}
	}

	return a, nil
}

// Close releases the underlying database.
func (a *App) Close() error {
	return a.Store.Close()
}

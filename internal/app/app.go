// Package app wires configuration, persistence, evaluators, and the
// scheduler into a running engine.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/codecampus/pathway/internal/config"
	"github.com/codecampus/pathway/internal/decision"
	"github.com/codecampus/pathway/internal/evaluator"
	"github.com/codecampus/pathway/internal/llm"
	"github.com/codecampus/pathway/internal/logging"
	"github.com/codecampus/pathway/internal/metrics"
	"github.com/codecampus/pathway/internal/pathgraph"
	"github.com/codecampus/pathway/internal/rubric"
	"github.com/codecampus/pathway/internal/scheduler"
	"github.com/codecampus/pathway/internal/store"
)

// App holds the wired application components.
type App struct {
	Config    config.Config
	Log       *zap.SugaredLogger
	Graph     *pathgraph.Graph
	Rubrics   *rubric.Set
	Runs      store.RunRepo
	Progress  store.ProgressRepo
	Engine    *decision.Engine
	Scheduler *scheduler.Scheduler
	Metrics   *metrics.Metrics

	db *store.Store
}

// Options overrides pieces of the environment configuration.
type Options struct {
	// DBPath overrides the configured database path when non-empty.
	DBPath string
}

// New loads configuration and wires the full engine.
func New(ctx context.Context, opts Options) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.DBPath != "" {
		cfg.DBPath = opts.DBPath
	}

	log, err := logging.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	rubrics, err := loadRubrics(cfg)
	if err != nil {
		return nil, err
	}

	graph := pathgraph.Default()

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	if err := store.EnsureDir(dbPath); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	provider, err := buildProvider(ctx, cfg.LLM, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	evalCfg := evaluator.DefaultConfig()
	evaluators := []evaluator.Evaluator{
		evaluator.NewIdea(provider, evalCfg),
		evaluator.NewUI(provider, evalCfg),
		evaluator.NewCode(provider, evalCfg),
	}

	m := metrics.New("pathway")
	if cfg.MetricsAddr != "" {
		go func() {
			if err := m.Serve(cfg.MetricsAddr); err != nil {
				log.Errorw("metrics endpoint failed", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
	}

	progress := db.ProgressRepo()
	runs := db.RunRepo()

	decCfg := decision.DefaultConfig()
	decCfg.MaxRetries = cfg.MaxRetries
	engine := decision.New(graph, progress, decCfg, log)
	engine.OnConflict(m.ProgressConflicts.Inc)

	sched := scheduler.New(graph, rubrics, evaluators, runs, progress, engine, m, log, scheduler.Config{
		Workers:          cfg.Workers,
		DimensionTimeout: cfg.DimensionTimeout,
	})

	return &App{
		Config:    cfg,
		Log:       log,
		Graph:     graph,
		Rubrics:   rubrics,
		Runs:      runs,
		Progress:  progress,
		Engine:    engine,
		Scheduler: sched,
		Metrics:   m,
		db:        db,
	}, nil
}

// Close drains the scheduler and releases resources.
func (a *App) Close() error {
	a.Scheduler.Stop()
	err := a.db.Close()
	_ = a.Log.Sync()
	return err
}

func loadRubrics(cfg config.Config) (*rubric.Set, error) {
	if cfg.RubricFile != "" {
		return rubric.LoadFile(cfg.RubricFile)
	}
	return rubric.DefaultSet(), nil
}

// buildProvider selects the configured LLM backend, probing the standard
// vendor key variables when none is configured explicitly. Without any
// usable key the engine falls back to the mock provider so the rest of
// the pipeline stays operable.
func buildProvider(ctx context.Context, cfg llm.Config, log *zap.SugaredLogger) (llm.Provider, error) {
	if cfg.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			log.Infow("using discovered LLM provider", "provider", discovered.Provider)
			cfg = discovered
		} else {
			log.Warnw("no LLM provider configured, evaluations will use the mock provider")
			cfg.Provider = "mock"
		}
	}
	return llm.NewProvider(ctx, cfg, log)
}

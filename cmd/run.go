package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ecoamazonia/guardioes/internal/app"
	"github.com/ecoamazonia/guardioes/internal/catalog"
	"github.com/ecoamazonia/guardioes/internal/config"
	"github.com/ecoamazonia/guardioes/internal/llm"
	"github.com/ecoamazonia/guardioes/internal/logging"
	"github.com/ecoamazonia/guardioes/internal/profile"
	"github.com/ecoamazonia/guardioes/internal/quiz"
	"github.com/ecoamazonia/guardioes/internal/screen"
	"github.com/ecoamazonia/guardioes/internal/selfupdate"
	"github.com/ecoamazonia/guardioes/internal/store"
)

// deps is everything a command may need, opened from flags and config.
type deps struct {
	cfg      config.Config
	logger   *zap.Logger
	store    *store.Store
	catalog  *catalog.Catalog
	profiles *profile.Service
}

func openDeps(cmd *cobra.Command) (*deps, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := logging.New(filepath.Join(filepath.Dir(dbPath), logging.FileName), verbose)
	if err != nil {
		return nil, err
	}

	cat := catalog.Default()
	if cfg.Catalog != "" {
		cat, err = catalog.LoadFile(cfg.Catalog)
		if err != nil {
			_ = logger.Sync()
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		for _, w := range cat.Lint() {
			logger.Warn("catalog content problem", zap.String("catalog", cfg.Catalog), zap.String("problem", w))
		}
	}

	st, err := store.Open(dbPath)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	profiles := profile.NewService(
		profile.OpenBlobs(cfg.ProfileApp, logger),
		profile.WithEventRepo(st.EventRepo()),
		profile.WithLogger(logger.Named("profile")),
	)

	return &deps{cfg: cfg, logger: logger, store: st, catalog: cat, profiles: profiles}, nil
}

func (d *deps) Close() {
	_ = d.store.Close()
	_ = d.logger.Sync()
}

// quizService builds the quiz service. Without a provider it serves the
// built-in questions.
func (d *deps) quizService(ctx context.Context) *quiz.Service {
	provider, err := llm.NewProviderFromConfig(ctx, d.cfg.LLM, d.store.EventRepo(), d.logger.Named("llm"))
	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			d.logger.Warn("LLM provider unavailable", zap.Error(err))
		}
		provider = nil
	}
	return quiz.NewService(provider,
		quiz.WithTimeout(d.cfg.LLM.Timeout),
		quiz.WithLogger(d.logger.Named("quiz")),
	)
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, skipWelcome bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	env := &screen.Env{
		Catalog:         d.catalog,
		Profiles:        d.profiles,
		Quiz:            d.quizService(ctx),
		Events:          d.store.EventRepo(),
		SettleDelay:     d.cfg.SettleDelay,
		Logger:          d.logger,
		DefaultLanguage: d.cfg.Language,
	}
	if sess, err := d.profiles.Resume(ctx); err == nil {
		env.Session = sess
	} else if !errors.Is(err, profile.ErrNoSession) {
		d.logger.Warn("session not resumed", zap.Error(err))
	}

	d.logger.Info("starting", zap.String("version", version), zap.Int("guardians", d.catalog.Len()))
	return app.Run(app.Options{
		Env:         env,
		Checker:     selfupdate.NewChecker(),
		Version:     version,
		SkipWelcome: skipWelcome,
	})
}

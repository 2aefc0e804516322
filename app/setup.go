package app

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/marathon/countdown"
	"github.com/ayoisaiah/marathon/internal/config"
	"github.com/ayoisaiah/marathon/internal/models"
	"github.com/ayoisaiah/marathon/internal/pathutil"
	"github.com/ayoisaiah/marathon/report"
	"github.com/ayoisaiah/marathon/store"
)

const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// loadConfig builds the configuration from the config file and the
// command-line flags. The first-run prompt is only shown when prompt is set.
func loadConfig(ctx *cli.Context, prompt bool) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	var opts []config.Option

	if prompt {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(
		opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	setupLogger(cfg)

	return cfg, nil
}

// setupLogger sends structured logs to a rotated file.
func setupLogger(cfg *config.Config) {
	var level slog.Level

	_ = level.UnmarshalText([]byte(cfg.Log.Level))

	w := &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
		Compress:   true,
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	slog.SetDefault(logger.With(slog.String("version", config.Version)))
}

// totalSeconds returns the configured countdown length in seconds.
func totalSeconds(cfg *config.Config) int {
	return int(cfg.Timer.Duration / time.Second)
}

// openStore opens the configured store. A nil DB is returned when
// persistence is disabled.
func openStore(cfg *config.Config, dbPath string) (store.DB, error) {
	if !cfg.Storage.Enabled {
		return nil, nil
	}

	return store.New(store.Backend(cfg.Storage.Backend), dbPath)
}

// newController creates the countdown, restoring any saved progress.
func newController(cfg *config.Config, db store.DB) *countdown.Timer {
	var st countdown.Store
	if db != nil {
		st = db
	}

	ctrl := countdown.New(countdown.Options{
		Store:         st,
		Logger:        slog.Default(),
		Total:         totalSeconds(cfg),
		WarningAt:     int(cfg.Timer.WarningAt / time.Second),
		AutosaveEvery: cfg.Timer.AutosaveEvery,
	})

	if err := ctrl.Open(); err != nil {
		report.Warn("Saved progress could not be read. Starting afresh.")
	}

	return ctrl
}

// openController opens the store and the countdown for a command that runs
// the timer. Failing to open the store is not fatal unless another instance
// holds it.
func openController(cfg *config.Config) (*countdown.Timer, func(), error) {
	db, err := openStore(cfg, cfg.DBPath())
	if err != nil {
		if errors.Is(err, store.ErrMarathonRunning) {
			return nil, nil, err
		}

		slog.Error("opening store", slog.Any("error", err))
		report.Warn("Progress will not be saved: " + err.Error())

		db = nil
	}

	ctrl := newController(cfg, db)

	closeFn := func() {
		_ = ctrl.Close()

		if db != nil {
			_ = db.Close()
		}
	}

	return ctrl, closeFn, nil
}

// currentStatus returns the countdown state without taking over the store.
// While another instance holds the bolt database, its status file is read
// instead.
func currentStatus(
	cfg *config.Config,
	dbPath, statusPath string,
) (models.Status, error) {
	if cfg.Storage.Enabled &&
		cfg.Storage.Backend == config.BackendBolt &&
		store.Locked(dbPath) {
		b, err := os.ReadFile(statusPath)
		if err != nil {
			return models.Status{}, errStateUnavailable
		}

		return models.DecodeStatus(b)
	}

	db, err := openStore(cfg, dbPath)
	if err != nil {
		return models.Status{}, err
	}

	if db != nil {
		defer db.Close()
	}

	ctrl := newController(cfg, db)

	return models.Status{
		Snapshot:  ctrl.Snapshot(),
		State:     string(ctrl.State()),
		Total:     ctrl.Total(),
		UpdatedAt: time.Now(),
	}, nil
}

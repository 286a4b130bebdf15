package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alicebob/miniredis/v2"

	"github.com/KirkDiggler/netherite-checklist/internal/config"
	"github.com/KirkDiggler/netherite-checklist/internal/entities/loadout"
	"github.com/KirkDiggler/netherite-checklist/internal/orchestrators/checklist"
	"github.com/KirkDiggler/netherite-checklist/internal/pkg/clock"
	"github.com/KirkDiggler/netherite-checklist/internal/redis"
	"github.com/KirkDiggler/netherite-checklist/internal/repositories/preferences"
	"github.com/KirkDiggler/netherite-checklist/internal/repositories/selection"
)

// app bundles everything a command needs
type app struct {
	selections selection.Repository
	service    checklist.Service
	out        io.Writer
	closers    []func()
}

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if redisAddr != "" {
		cfg.Redis.Endpoint = redisAddr
	}
	if profile != "" {
		cfg.Profile = profile
	}
	if viewFlag != "" {
		cfg.StartView = viewFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &app{out: os.Stdout}

	endpoint := cfg.Redis.Endpoint
	if ephemeral {
		mr, err := miniredis.Run()
		if err != nil {
			return nil, fmt.Errorf("failed to start in-process store: %w", err)
		}
		a.closers = append(a.closers, mr.Close)
		endpoint = mr.Addr()
	}

	client, err := redis.NewClient(endpoint, &redis.Options{
		PoolSize:        cfg.Redis.PoolSize,
		MinIdleConns:    cfg.Redis.MinIdleConns,
		MaxRetries:      cfg.Redis.MaxRetries,
		ConnMaxIdleTime: cfg.Redis.ConnMaxIdleTime,
		UseTLS:          cfg.Redis.UseTLS && !ephemeral,
	})
	if err != nil {
		a.close()
		return nil, err
	}
	a.closers = append(a.closers, func() { _ = client.Close() })

	a.selections, err = selection.NewRedis(&selection.RedisConfig{
		Client:    client,
		Namespace: cfg.Profile,
	})
	if err != nil {
		a.close()
		return nil, err
	}

	prefs, err := preferences.NewRedis(&preferences.RedisConfig{
		Client:    client,
		Namespace: cfg.Profile,
	})
	if err != nil {
		a.close()
		return nil, err
	}

	notifier := &consoleNotifier{w: os.Stderr}
	a.service, err = checklist.NewOrchestrator(ctx, &checklist.Config{
		Selections:  a.selections,
		Preferences: prefs,
		Notifier:    notifier,
		Clock:       clock.New(),
		StartView:   cfg.View(),
	})
	if err != nil {
		a.close()
		return nil, err
	}
	notifier.theme = a.service.Theme

	return a, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// withApp runs fn against a freshly built app and closes it afterwards
func withApp(fn func(ctx context.Context, a *app) error) error {
	ctx := context.Background()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(ctx, a)
}

// resolveItem accepts the full item name or the part after "Netherite ",
// case-insensitively
func resolveItem(board []loadout.DisplayState, arg string) (string, error) {
	want := strings.ToLower(strings.TrimSpace(arg))
	for _, item := range board {
		name := strings.ToLower(item.Name)
		if name == want || strings.TrimPrefix(name, "netherite ") == want {
			return item.Name, nil
		}
	}
	return "", fmt.Errorf("no item %q in this view", arg)
}

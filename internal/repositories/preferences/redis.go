package preferences

import (
	"context"

	"github.com/KirkDiggler/netherite-checklist/internal/entities/loadout"
	"github.com/KirkDiggler/netherite-checklist/internal/errors"
	redisclient "github.com/KirkDiggler/netherite-checklist/internal/redis"
)

const (
	thornsKey = "thornsEnabled"
	themeKey  = "theme"

	thornsOn  = "true"
	thornsOff = "false"
)

// RedisConfig contains configuration for the Redis preferences repository
type RedisConfig struct {
	Client    redisclient.Client
	Namespace string
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client    redisclient.Client
	namespace string
}

// NewRedis creates a Redis-backed preferences repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client:    cfg.Client,
		namespace: cfg.Namespace,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context) (*GetOutput, error) {
	values, err := r.client.MGet(ctx, r.key(thornsKey), r.key(themeKey)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preferences")
	}

	prefs := Preferences{Theme: loadout.ThemeDark}
	if len(values) == 2 {
		if raw, ok := values[0].(string); ok {
			// only the exact string "true" turns the flag on
			prefs.ThornsEnabled = raw == thornsOn
		}
		if raw, ok := values[1].(string); ok {
			prefs.Theme = loadout.ParseTheme(raw)
		}
	}

	return &GetOutput{
		Preferences: prefs,
	}, nil
}

func (r *redisRepository) SetThornsEnabled(ctx context.Context, input SetThornsEnabledInput) error {
	if err := r.client.Set(ctx, r.key(thornsKey), thornsValue(input.Enabled), 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store %s", thornsKey)
	}
	return nil
}

func (r *redisRepository) SetTheme(ctx context.Context, input SetThemeInput) error {
	if input.Theme != loadout.ThemeLight && input.Theme != loadout.ThemeDark {
		return errors.InvalidArgumentf("unknown theme %q", input.Theme)
	}
	if err := r.client.Set(ctx, r.key(themeKey), string(input.Theme), 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store %s", themeKey)
	}
	return nil
}

func (r *redisRepository) key(name string) string {
	if r.namespace != "" {
		return r.namespace + ":" + name
	}
	return name
}

func thornsValue(enabled bool) string {
	if enabled {
		return thornsOn
	}
	return thornsOff
}

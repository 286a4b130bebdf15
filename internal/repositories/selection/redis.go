package selection

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/netherite-checklist/internal/entities/loadout"
	"github.com/KirkDiggler/netherite-checklist/internal/errors"
	redisclient "github.com/KirkDiggler/netherite-checklist/internal/redis"
)

const (
	armorKey = "armorData"
	toolKey  = "toolData"

	errUnknownCategory = "unknown category"
)

// RedisConfig contains configuration for the Redis selection repository
type RedisConfig struct {
	Client redisclient.Client

	// Namespace prefixes every key as "<namespace>:armorData" so several
	// profiles can share one server. Empty uses the bare key names.
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

// NewRedis creates a Redis-backed selection repository
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

// Key returns the storage key for a category, without namespace
func Key(category loadout.Category) (string, bool) {
	switch category {
	case loadout.CategoryArmor:
		return armorKey, true
	case loadout.CategoryTools:
		return toolKey, true
	}
	return "", false
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	key, err := r.buildKey(input.Category)
	if err != nil {
		return nil, err
	}

	stored := make(loadout.Selections, len(input.Selections))
	for name, sel := range input.Selections {
		if sel == nil {
			continue
		}
		entry := *sel
		if entry.Enchantments == nil {
			entry.Enchantments = []string{}
		}
		if !input.Category.HasCosmetics() {
			entry.Trim = ""
			entry.Color = ""
		}
		stored[name] = &entry
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s selections", input.Category)
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store %s", key)
	}

	slog.DebugContext(ctx, "selections saved",
		"category", input.Category.String(),
		"key", key,
		"items", len(stored))

	return &SaveOutput{
		ItemCount: len(stored),
	}, nil
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	key, err := r.buildKey(input.Category)
	if err != nil {
		return nil, err
	}

	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return &LoadOutput{Selections: loadout.Selections{}}, nil
		}
		return nil, errors.Wrapf(err, "failed to load %s", key)
	}

	var stored loadout.Selections
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		slog.WarnContext(ctx, "ignoring unparseable selections",
			"key", key,
			"error", err)
		return &LoadOutput{Selections: loadout.Selections{}}, nil
	}

	selections := make(loadout.Selections, len(stored))
	for name, sel := range stored {
		if sel == nil {
			continue
		}
		selections[name] = sel.Normalized()
	}

	return &LoadOutput{
		Selections: selections,
	}, nil
}

func (r *redisRepository) Reset(ctx context.Context, input ResetInput) (*ResetOutput, error) {
	key, err := r.buildKey(input.Category)
	if err != nil {
		return nil, err
	}

	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete %s", key)
	}

	slog.DebugContext(ctx, "selections reset",
		"category", input.Category.String(),
		"key", key)

	return &ResetOutput{
		Existed: deleted > 0,
	}, nil
}

func (r *redisRepository) buildKey(category loadout.Category) (string, error) {
	key, ok := Key(category)
	if !ok {
		return "", errors.InvalidArgumentf("%s: %q", errUnknownCategory, category)
	}
	if r.namespace != "" {
		return r.namespace + ":" + key, nil
	}
	return key, nil
}

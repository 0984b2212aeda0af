package dataset

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/grimoire-api/internal/errors"
	redisclient "github.com/KirkDiggler/grimoire-api/internal/redis"
)

const (
	// DefaultRedisKey is where datasets are stored when no key is configured
	DefaultRedisKey = "grimoire:dataset"
)

// Store is a dataset repository that can also be written to
type Store interface {
	Repository

	// Save validates and stores a dataset, replacing the previous one
	// Returns errors.InvalidArgument when the data cannot be decoded
	// Returns errors.Unavailable for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

type redisRepository struct {
	client redisclient.Client
	key    string
	format Format
}

// RedisConfig contains configuration for the Redis dataset repository
type RedisConfig struct {
	Client redisclient.Client
	Key    string
	Format Format
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

// NewRedis creates a Redis-backed dataset store
func NewRedis(cfg *RedisConfig) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	key := cfg.Key
	if key == "" {
		key = DefaultRedisKey
	}
	format := cfg.Format
	if format == "" {
		format = FormatJSON
	}

	return &redisRepository{
		client: cfg.Client,
		key:    key,
		format: format,
	}, nil
}

func (r *redisRepository) Load(ctx context.Context, _ LoadInput) (*LoadOutput, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.Unavailablef("dataset key %s not found", r.key).WithMeta("key", r.key)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get dataset %s", r.key).
			WithMeta("key", r.key)
	}

	input, err := Decode(data, r.format)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset key %s", r.key).
			WithMeta("key", r.key)
	}

	return &LoadOutput{
		Input:  input,
		Source: r.source(),
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	format := input.Format
	if format == "" {
		format = r.format
	}

	decoded, err := Decode(input.Data, format)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "refusing to store malformed dataset")
	}

	data := input.Data
	if format != r.format {
		// Stored datasets always use the repository's own format
		if data, err = Encode(decoded, r.format); err != nil {
			return nil, errors.Wrapf(err, "failed to re-encode dataset as %s", r.format)
		}
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to store dataset %s", r.key).
			WithMeta("key", r.key)
	}

	return &SaveOutput{
		Source:  r.source(),
		Records: decoded.Len(),
	}, nil
}

func (r *redisRepository) source() string {
	return fmt.Sprintf("redis:%s", r.key)
}

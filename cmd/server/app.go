package main

import (
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/grimoire-api/internal/config"
	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/orchestrators/spellbook"
	"github.com/KirkDiggler/grimoire-api/internal/pkg/clock"
	"github.com/KirkDiggler/grimoire-api/internal/pkg/idgen"
	"github.com/KirkDiggler/grimoire-api/internal/pkg/logging"
	"github.com/KirkDiggler/grimoire-api/internal/redis"
	"github.com/KirkDiggler/grimoire-api/internal/repositories/dataset"
	"github.com/KirkDiggler/grimoire-api/internal/services/normalizer"
)

var (
	configPath    string
	datasetPath   string
	datasetSource string
	redisEndpoint string
	logLevel      string
	logPretty     bool

	cfg *config.Config
)

// loadConfig layers defaults, the config file, the environment and explicit flags
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := loaded.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dataset") {
		loaded.Dataset.Path = datasetPath
	}
	if flags.Changed("source") {
		loaded.Dataset.Source = datasetSource
	}
	if flags.Changed("redis") {
		loaded.Redis.Endpoint = redisEndpoint
	}
	if flags.Changed("log-level") {
		loaded.Log.Level = logLevel
	}
	if flags.Changed("pretty") {
		loaded.Log.Pretty = logPretty
	}
	applyServerFlags(cmd, loaded)

	if err := loaded.Validate(); err != nil {
		return err
	}
	if err := logging.Setup(loaded.Log.Level, loaded.Log.Pretty); err != nil {
		return err
	}

	cfg = loaded
	return nil
}

// newRedisClient connects to the configured Redis endpoint
func newRedisClient() (redis.Client, error) {
	client, err := redis.NewClient(cfg.Redis.Endpoint, &redis.Options{
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
	}
	return client, nil
}

// newRepository builds the dataset repository for the configured source.
// The returned cleanup releases any connection it opened.
func newRepository() (dataset.Repository, func(), error) {
	switch cfg.Dataset.Source {
	case config.SourceRedis:
		client, err := newRedisClient()
		if err != nil {
			return nil, nil, err
		}
		repo, err := dataset.NewRedis(&dataset.RedisConfig{
			Client: client,
			Key:    cfg.Dataset.RedisKey,
			Format: dataset.Format(cfg.Dataset.Format),
		})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil
	default:
		repo, err := dataset.NewFile(&dataset.FileConfig{
			Path:   cfg.Dataset.Path,
			Format: dataset.Format(cfg.Dataset.Format),
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}

// newSpellbook wires the orchestrator over the configured dataset
func newSpellbook() (spellbook.Service, func(), error) {
	repo, cleanup, err := newRepository()
	if err != nil {
		return nil, nil, err
	}

	svc, err := spellbook.NewOrchestrator(&spellbook.Config{
		Repository:  repo,
		Normalizer:  normalizer.New(),
		Roller:      dice.DefaultRoller,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("idx"),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	log.Debug().Str("source", cfg.Dataset.Source).Msg("Spellbook wired")
	return svc, cleanup, nil
}

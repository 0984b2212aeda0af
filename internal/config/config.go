// Package config loads grimoire-api configuration from YAML and the environment
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/pkg/logging"
)

// Dataset sources
const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

// Config holds all configuration for grimoire-api
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Server  ServerConfig  `yaml:"server"`
	Redis   RedisConfig   `yaml:"redis"`
	Log     LogConfig     `yaml:"log"`
	Query   QueryConfig   `yaml:"query"`
	SRD     SRDConfig     `yaml:"srd"`
}

// DatasetConfig selects where the raw spell dataset is read from
type DatasetConfig struct {
	Source string `yaml:"source"`
	Path   string `yaml:"path"`
	// Format forces json or yaml, empty means detect from the path
	Format   string `yaml:"format"`
	RedisKey string `yaml:"redisKey"`
}

// ServerConfig holds listener settings
type ServerConfig struct {
	GRPCPort        int           `yaml:"grpcPort"`
	HTTPPort        int           `yaml:"httpPort"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Endpoint string `yaml:"endpoint"`
	PoolSize int    `yaml:"poolSize"`
	UseTLS   bool   `yaml:"useTLS"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// QueryConfig holds query defaults applied by the transports
type QueryConfig struct {
	SuggestLimit int `yaml:"suggestLimit"`
}

// SRDConfig holds settings for importing spells from the D&D 5e API
type SRDConfig struct {
	BaseURL  string        `yaml:"baseURL"`
	CacheTTL time.Duration `yaml:"cacheTTL"`
	Workers  int           `yaml:"workers"`
}

// Defaults returns a Config populated with built-in default values
func Defaults() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Source:   SourceFile,
			Path:     "grimorio_completo.json",
			RedisKey: "grimoire:dataset",
		},
		Server: ServerConfig{
			GRPCPort:        50051,
			HTTPPort:        8080,
			ShutdownTimeout: 10 * time.Second,
		},
		Redis: RedisConfig{
			Endpoint: "localhost:6379",
			PoolSize: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
		Query: QueryConfig{
			SuggestLimit: 25,
		},
		SRD: SRDConfig{
			BaseURL:  "https://www.dnd5eapi.co/api/2014/",
			CacheTTL: 24 * time.Hour,
			Workers:  8,
		},
	}
}

// Load reads a YAML config file over the defaults. A missing file yields
// the defaults without error.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read config %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse config %s", path)
	}

	return cfg, nil
}

// ApplyEnv overrides values from the environment using lookup, normally os.LookupEnv
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	vb := errors.NewValidationBuilder()

	if v, ok := lookup("GRIMOIRE_DATASET"); ok && v != "" {
		c.Dataset.Path = v
	}
	if v, ok := lookup("REDIS_ENDPOINT"); ok && v != "" {
		c.Redis.Endpoint = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			vb.InvalidField("PORT", err.Error())
		}
		c.Server.HTTPPort = port
	}
	if v, ok := lookup("GRPC_PORT"); ok && v != "" {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			vb.InvalidField("GRPC_PORT", err.Error())
		}
		c.Server.GRPCPort = port
	}

	return vb.Build()
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("dataset.source", c.Dataset.Source, []string{SourceFile, SourceRedis}, vb)
	switch c.Dataset.Source {
	case SourceFile:
		errors.ValidateRequired("dataset.path", c.Dataset.Path, vb)
	case SourceRedis:
		errors.ValidateRequired("dataset.redisKey", c.Dataset.RedisKey, vb)
		errors.ValidateRequired("redis.endpoint", c.Redis.Endpoint, vb)
	}
	if c.Dataset.Format != "" {
		errors.ValidateEnum("dataset.format", c.Dataset.Format, []string{"json", "yaml"}, vb)
	}

	errors.ValidateRange("server.grpcPort", c.Server.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("server.httpPort", c.Server.HTTPPort, 1, 65535, vb)
	if c.Server.GRPCPort == c.Server.HTTPPort {
		vb.Field("server.httpPort", "must differ from server.grpcPort")
	}
	if c.Server.ShutdownTimeout < 0 {
		vb.Field("server.shutdownTimeout", "must not be negative")
	}

	errors.ValidateRange("query.suggestLimit", c.Query.SuggestLimit, 1, 25, vb)

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		vb.InvalidField("log.level", err.Error())
	}

	if c.SRD.Workers < 1 {
		vb.Field("srd.workers", "must be at least 1")
	}

	return vb.Build()
}

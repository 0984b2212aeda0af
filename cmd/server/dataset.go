package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/grimoire-api/internal/errors"
	"github.com/KirkDiggler/grimoire-api/internal/repositories/dataset"
	"github.com/KirkDiggler/grimoire-api/internal/services/normalizer"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage spell datasets",
}

var datasetPushCmd = &cobra.Command{
	Use:   "push <file>",
	Short: "Validate a dataset file and store it under the configured Redis key",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetPush,
}

var datasetCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Decode and normalize a dataset file, reporting what the server would load",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetCheck,
}

func init() {
	datasetCmd.AddCommand(datasetPushCmd)
	datasetCmd.AddCommand(datasetCheckCmd)
}

func runDatasetPush(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read %s", path).WithMeta("path", path)
	}

	client, err := newRedisClient()
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	store, err := dataset.NewRedis(&dataset.RedisConfig{
		Client: client,
		Key:    cfg.Dataset.RedisKey,
		Format: dataset.Format(cfg.Dataset.Format),
	})
	if err != nil {
		return err
	}

	out, err := store.Save(ctx, dataset.SaveInput{
		Data:   data,
		Format: dataset.FormatFromPath(path),
	})
	if err != nil {
		return err
	}

	log.Info().Int("records", out.Records).Str("source", out.Source).Msg("Dataset pushed")
	return nil
}

func runDatasetCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	repo, err := dataset.NewFile(&dataset.FileConfig{Path: args[0]})
	if err != nil {
		return err
	}

	loaded, err := repo.Load(ctx, dataset.LoadInput{})
	if err != nil {
		return err
	}

	report := normalizer.Check(loaded.Input)
	log.Info().
		Int("records", report.Records).
		Int("spells", report.Spells).
		Int("unnamed", report.Unnamed).
		Int("unknown_element", report.UnknownElement).
		Int("duplicate_names", report.DuplicateNames).
		Msg("Dataset checked")

	for _, name := range report.Duplicates {
		log.Warn().Str("name", name).Msg("Duplicate spell name, only the first is reachable by exact lookup")
	}
	return nil
}

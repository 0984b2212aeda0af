package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/grimoire-api/internal/repositories/dataset"
	"github.com/KirkDiggler/grimoire-api/internal/services/normalizer"
)

// Scans every grimoire dataset key in Redis and reports which ones the server
// could not load or would load with degraded records.
func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	pattern := os.Getenv("DATASET_PATTERN")
	if pattern == "" {
		pattern = "grimoire:*"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Printf("Scanning %s for unreadable datasets...\n", pattern)

	iter := client.Scan(ctx, 0, pattern, 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		input, err := dataset.Decode(data, dataset.FormatJSON)
		if err != nil {
			input, err = dataset.Decode(data, dataset.FormatYAML)
		}
		if err != nil {
			fmt.Printf("✗ Undecodable dataset in %s: %v\n", key, err)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		report := normalizer.Check(input)
		if report.Spells == 0 {
			fmt.Printf("✗ Empty dataset in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		fmt.Printf("✓ %s: %d spells, %d unnamed, %d unknown element, %d duplicate names\n",
			key, report.Spells, report.Unnamed, report.UnknownElement, report.DuplicateNames)
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d unusable datasets\n", checkedCount, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No unusable datasets found!")
		return
	}

	fmt.Println("\nUnusable keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	// Ask for confirmation before deletion
	fmt.Print("\nDo you want to DELETE these datasets? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response == "yes" {
		for _, key := range corruptedKeys {
			if err := client.Del(ctx, key).Err(); err != nil {
				fmt.Printf("Failed to delete %s: %v\n", key, err)
			} else {
				fmt.Printf("Deleted %s\n", key)
			}
		}
		fmt.Println("\nCleanup complete!")
	} else {
		fmt.Println("Aborted - no changes made")
	}
}

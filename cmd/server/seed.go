package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcforge/codex-api/internal/entities/arclight"
	"github.com/arcforge/codex-api/internal/redis"
	"github.com/arcforge/codex-api/internal/repositories/codex"
	"github.com/arcforge/codex-api/internal/rules"
)

var (
	seedRedisAddr string
	seedFile      string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the codex tables from a JSON file",
	Long:  `Replace the shared codex tables (part definitions, stock equipment, rule overrides) with the contents of a JSON file and bump the codex version.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedRedisAddr, "redis-addr", envOr("REDIS_ADDR", "localhost:6379"), "Redis address")
	seedCmd.Flags().StringVar(&seedFile, "file", "codex.json", "Path to the codex JSON file")
}

// codexDocument is the file format for seeding
type codexDocument struct {
	PowerParts     []arclight.Part  `json:"powerParts"`
	TechniqueParts []arclight.Part  `json:"techniqueParts"`
	ItemProperties []arclight.Part  `json:"itemProperties"`
	Equipment      []arclight.Item  `json:"equipment"`
	Rules          *rules.GameRules `json:"rules,omitempty"`
}

func runSeed(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read codex file: %w", err)
	}

	var doc codexDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse codex file: %w", err)
	}

	redisClient, err := redis.NewClient(seedRedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	codexRepo, err := codex.NewRedis(&codex.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create codex repository: %w", err)
	}

	out, err := codexRepo.Seed(context.Background(), codex.SeedInput{
		PowerParts:     doc.PowerParts,
		TechniqueParts: doc.TechniqueParts,
		ItemProperties: doc.ItemProperties,
		Equipment:      doc.Equipment,
		Rules:          doc.Rules,
	})
	if err != nil {
		return fmt.Errorf("failed to seed codex: %w", err)
	}

	fmt.Printf("Seeded codex version %d: %d power parts, %d technique parts, %d item properties, %d equipment entries\n",
		out.Version, len(doc.PowerParts), len(doc.TechniqueParts), len(doc.ItemProperties), len(doc.Equipment))
	return nil
}

// Copyright 2026 Resqnet Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/resqnet/protosearch"
	"github.com/resqnet/protosearch/ai"
	"github.com/resqnet/protosearch/core"
	"github.com/resqnet/protosearch/ingestion"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "protosearch",
		Usage: "Regional EMS procedure search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search procedure documents",
				ArgsUsage: "<query terms>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.Uint64Flag{
						Name:  "agency",
						Usage: "Registry agency ID to scope the search to",
					},
					&cli.Uint64Flag{
						Name:  "org",
						Usage: "Content-store org ID to scope the search to",
					},
					&cli.StringFlag{
						Name:  "region",
						Usage: "Two-letter region code to scope the search to",
					},
					&cli.StringFlag{
						Name:  "tier",
						Usage: "Tier to serve the response as (free, pro, enterprise)",
						Value: "free",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum results to print (0 uses the tier ceiling)",
					},
					&cli.BoolFlag{
						Name:  "answer",
						Usage: "Generate an answer from the top results",
					},
					&cli.StringFlag{
						Name:    "chat-host",
						Usage:   "OpenAI-compatible chat API host",
						EnvVars: []string{"PROTOSEARCH_CHAT_HOST"},
					},
					&cli.StringFlag{
						Name:    "chat-model",
						Usage:   "Chat model name",
						EnvVars: []string{"PROTOSEARCH_CHAT_MODEL"},
					},
					&cli.StringFlag{
						Name:    "api-key",
						Usage:   "Chat API key",
						EnvVars: []string{"PROTOSEARCH_API_KEY"},
					},
				},
			},
			{
				Name:   "import",
				Usage:  "Import procedure documents from a JSON file",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "src",
						Aliases:  []string{"s"},
						Usage:    "JSON file holding an array of documents",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "source",
						Usage: "Checkpoint name for the document set (defaults to the src path)",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of chunks written per transaction",
						Value: 64,
					},
				},
			},
			{
				Name:   "warmup",
				Usage:  "Build the agency identity mapping eagerly",
				Action: warmupCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Print corpus, resolver, and cache statistics",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("a query is required")
	}

	var opts []protosearch.ServiceOption
	if c.Bool("answer") {
		var configOpts []ai.ConfigOption
		if host := c.String("chat-host"); host != "" {
			configOpts = append(configOpts, ai.WithChatHost(host))
		}
		if model := c.String("chat-model"); model != "" {
			configOpts = append(configOpts, ai.WithChatModel(model))
		}
		configOpts = append(configOpts, ai.WithAPIKey(c.String("api-key")))
		opts = append(opts, protosearch.WithAIConfig(ai.NewConfig(configOpts...)))
	}

	service, err := protosearch.NewService(c.String("db"), opts...)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer service.Close()

	response, err := service.Search(ctx, protosearch.SearchRequest{
		RawQuery:   query,
		RegistryId: core.ID(c.Uint64("agency")),
		OrgId:      core.ID(c.Uint64("org")),
		RegionCode: c.String("region"),
		Limit:      c.Int("limit"),
		Tier:       core.ParseTier(c.String("tier")),
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Found %d hits for %q (cached=%t, %s)\n",
		response.TotalFound, response.NormalizedQuery, response.FromCache, response.Latency)
	for i, hit := range response.Results {
		agency := hit.AgencyName
		if agency == "" {
			agency = fmt.Sprintf("org %d", hit.OrgId)
		}
		fmt.Printf("%d: %s %s [%0.1f] %s\n   %s\n",
			i+1, hit.DocumentNumber, hit.Title, hit.Score, agency, hit.Preview)
	}

	if c.Bool("answer") && len(response.Results) > 0 {
		answer, err := service.GenerateAnswer(ctx, query, response.Results)
		if err != nil {
			return fmt.Errorf("answer generation failed: %w", err)
		}
		fmt.Printf("\n%s\n", answer)
	}

	return nil
}

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	docs, err := loadDocuments(c.String("src"))
	if err != nil {
		return fmt.Errorf("failed to load documents: %w", err)
	}

	source := c.String("source")
	if source == "" {
		source = c.String("src")
	}

	service, err := protosearch.NewService(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer service.Close()

	importer, err := service.NewImporter(
		ingestion.WithBatchSize(c.Int("batch-size")),
		ingestion.WithProgress(os.Stderr, 100),
	)
	if err != nil {
		return fmt.Errorf("failed to create importer: %w", err)
	}
	defer importer.Release()

	report, err := importer.Import(ctx, source, docs)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Imported %d documents (%d chunks, %d orgs, %d skipped)\n",
		report.Documents, report.Chunks, report.Orgs, report.Skipped)
	return nil
}

func warmupCommand(c *cli.Context) error {
	ctx := context.Background()

	service, err := protosearch.NewService(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer service.Close()

	if err := service.WarmUp(ctx); err != nil {
		return fmt.Errorf("warmup failed: %w", err)
	}

	stats, err := service.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Mapped %d of %d agencies onto %d content orgs\n",
		stats.Resolver.MappingCount, stats.Resolver.RegistrySize, stats.Resolver.ContentOrgSize)
	return nil
}

func statsCommand(c *cli.Context) error {
	ctx := context.Background()

	service, err := protosearch.NewService(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer service.Close()

	stats, err := service.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}

	fmt.Printf("Chunks: %d\n", stats.Content.TotalChunks)
	fmt.Printf("Orgs: %d\n", stats.Content.TotalOrgs)
	fmt.Printf("Regions: %d\n", stats.Content.RegionsCovered)
	return nil
}

// loadDocuments reads a JSON array of importable documents.
func loadDocuments(path string) ([]ingestion.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var docs []ingestion.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents in %s", path)
	}
	return docs, nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

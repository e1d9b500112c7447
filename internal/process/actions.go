// Package process implements the process CLI command: CSV in, flashcards out.
package process

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/mhofer/wortkarten/models"
	"github.com/mhofer/wortkarten/pkg/cards"
	"github.com/mhofer/wortkarten/pkg/db"
	"github.com/mhofer/wortkarten/pkg/fetcher"
	"github.com/mhofer/wortkarten/pkg/processor"
	"github.com/mhofer/wortkarten/pkg/vocabcsv"
)

// Flags returns the CLI flags of the process command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "vocabulary CSV file", Required: true},
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "config.yaml", Usage: "config file path"},
		&cli.StringFlag{Name: "collection", Usage: "target collection id (overrides config)"},
		&cli.BoolFlag{Name: "offline-dedup", Usage: "seed the duplicate set from the local mirror instead of the remote service"},
		&cli.StringFlag{Name: "format", Value: "yaml", Usage: "summary output format: yaml or json"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
	}
}

// Action runs a full processing run.
func Action(c *cli.Context) error {
	logger := newLogger(c.Bool("quiet"))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	collection := cfg.Flashcards.Collection
	if c.IsSet("collection") {
		collection = c.String("collection")
	}
	if collection == "" {
		fmt.Fprintln(os.Stderr, "Error: no target collection configured")
		fmt.Fprintln(os.Stderr, "Set flashcards.collection in the config file or pass --collection")
		os.Exit(1)
	}

	entries, err := vocabcsv.LoadFile(c.String("input"))
	if err != nil {
		// Structural input errors are fatal before anything is processed.
		logger.Error("failed to load vocabulary", "error", err)
		os.Exit(2)
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no vocabulary entries in input file")
		os.Exit(1)
	}

	mirror, err := db.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("failed to open card mirror", "error", err)
		os.Exit(2)
	}
	defer mirror.Close()

	client := cards.NewClient(cfg.Flashcards)

	var names []string
	if c.Bool("offline-dedup") {
		names, err = mirror.CleanNames(collection)
	} else {
		names, err = client.ListCardNames(c.Context, collection)
	}
	if err != nil {
		logger.Error("failed to load existing card names", "error", err)
		os.Exit(2)
	}
	logger.Info("existing cards loaded", "collection", collection, "count", len(names))

	proc := processor.New(logger, fetcher.New(cfg.Dictionary), client, mirror)
	summary, err := proc.Run(c.Context, entries, processor.Options{
		CollectionID:  collection,
		ExistingNames: processor.BuildExistingSet(names),
	})
	if err != nil {
		logger.Error("run aborted", "error", err)
		os.Exit(2)
	}

	if err := printSummary(summary, c.String("format")); err != nil {
		logger.Error("failed to render summary", "error", err)
		os.Exit(2)
	}

	if summary.FailureCount == summary.TotalRows {
		os.Exit(2)
	}
	if summary.FailureCount > 0 {
		os.Exit(1)
	}
	return nil
}

func printSummary(summary *models.ProcessingSummary, format string) error {
	var data []byte
	var err error
	if strings.EqualFold(format, "json") {
		data, err = json.MarshalIndent(summary, "", "  ")
	} else {
		data, err = yaml.Marshal(summary)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func newLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

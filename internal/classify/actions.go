// Package classify implements the classify CLI command: report the
// grammatical category the classifier infers for a page.
package classify

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mhofer/wortkarten/models"
	"github.com/mhofer/wortkarten/pkg/classifier"
	"github.com/mhofer/wortkarten/pkg/fetcher"
)

// Flags returns the CLI flags of the classify command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "word", Aliases: []string{"w"}, Usage: "word to fetch and classify"},
		&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "local HTML file to classify instead of fetching"},
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "config.yaml", Usage: "config file path"},
	}
}

// Action classifies one page and prints the decision.
func Action(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	var html string
	switch {
	case c.IsSet("file"):
		data, err := os.ReadFile(c.String("file"))
		if err != nil {
			logger.Error("failed to read file", "error", err)
			os.Exit(2)
		}
		html = string(data)
	case c.IsSet("word"):
		cfg, err := models.LoadConfig(c.String("config"))
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(2)
		}
		html, err = fetcher.New(cfg.Dictionary).FetchWordHTML(c.Context, c.String("word"))
		if err != nil {
			logger.Error("failed to fetch page", "error", err)
			os.Exit(2)
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: pass --word or --file")
		os.Exit(1)
	}

	vocType := classifier.Classify(html)
	if vocType == models.TypeUnset {
		fmt.Println("unset")
		return nil
	}
	fmt.Println(string(vocType))
	return nil
}

// Package inspect implements the inspect CLI command: a debugging surface for
// the fragile upstream markup. It fetches a word's page and shows what the
// readability pass and the classifier make of it before any extractor runs.
package inspect

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/mhofer/wortkarten/models"
	"github.com/mhofer/wortkarten/pkg/classifier"
	"github.com/mhofer/wortkarten/pkg/fetcher"
)

// Report is what inspect prints for one page.
type Report struct {
	Word       string `yaml:"word"`
	PageTitle  string `yaml:"page_title"`
	Excerpt    string `yaml:"excerpt,omitempty"`
	SiteName   string `yaml:"site_name,omitempty"`
	Classified string `yaml:"classified"`
}

// Flags returns the CLI flags of the inspect command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "word", Aliases: []string{"w"}, Usage: "word to inspect", Required: true},
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "config.yaml", Usage: "config file path"},
	}
}

// Action fetches one page and prints the inspection report.
func Action(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	word := c.String("word")
	html, err := fetcher.New(cfg.Dictionary).FetchWordHTML(c.Context, word)
	if err != nil {
		logger.Error("failed to fetch page", "error", err)
		os.Exit(2)
	}

	report := Report{
		Word:       word,
		Classified: classifiedLabel(classifier.Classify(html)),
	}

	pageURL, err := url.Parse(cfg.Dictionary.BaseURL)
	if err == nil {
		parser := readability.NewParser()
		article, parseErr := parser.Parse(strings.NewReader(html), pageURL)
		if parseErr != nil {
			logger.Warn("readability parse failed", "error", parseErr)
		} else {
			report.PageTitle = article.Title
			report.Excerpt = article.Excerpt
			report.SiteName = article.SiteName
		}
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		logger.Error("failed to render report", "error", err)
		os.Exit(2)
	}
	fmt.Println(string(data))
	return nil
}

func classifiedLabel(t models.VocabularyType) string {
	if t == models.TypeUnset {
		return "unset"
	}
	return string(t)
}

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mhofer/wortkarten/internal/classify"
	"github.com/mhofer/wortkarten/internal/inspect"
	"github.com/mhofer/wortkarten/internal/process"
)

func main() {
	app := &cli.App{
		Name:  "wortkarten",
		Usage: "turn German vocabulary lists into flashcards",
		Commands: []*cli.Command{
			{
				Name:   "process",
				Usage:  "process a vocabulary CSV into flashcards",
				Flags:  process.Flags(),
				Action: process.Action,
			},
			{
				Name:   "classify",
				Usage:  "classify the grammatical category of a word's dictionary page",
				Flags:  classify.Flags(),
				Action: classify.Action,
			},
			{
				Name:   "inspect",
				Usage:  "fetch a word's page and show readability metadata plus classification",
				Flags:  inspect.Flags(),
				Action: inspect.Action,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

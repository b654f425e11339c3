package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/sentsem/config"
	"github.com/revelaction/sentsem/render"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "sentsem: %v\n", err)
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   fmt.Sprintf("Output format %v", render.SupportedFormats()),
	}
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:                   "sentsem",
		Usage:                  "Semantic similarity of English sentences over a WordNet lexicon",
		UseShortOptionHandling: true,
		Writer:                 ui.Out,
		ErrWriter:              ui.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lexicon",
				Aliases: []string{"l"},
				Usage:   "Lexicon path: WordNet dict directory, JSON file or directory, or SQLite database (env " + config.EnvLexicon + ")",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML config file path",
				EnvVars: []string{config.EnvConfig},
			},
			&cli.StringFlag{
				Name:  "tagger",
				Usage: "Part of speech tagger (prose or lexical)",
			},
			&cli.StringFlag{
				Name:  "fallback",
				Usage: "Context of the satellite retry of the second sentence (own or first)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log debug messages to stderr",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "score",
				Usage:     "Print the similarity score of two sentences",
				ArgsUsage: "<sentence a> <sentence b>",
				Flags:     []cli.Flag{formatFlag()},
				Action: func(c *cli.Context) error {
					return scoreCommand(c, ui)
				},
			},
			{
				Name:      "explain",
				Usage:     "Show the senses, the similarity matrix and the score of two sentences",
				ArgsUsage: "<sentence a> <sentence b>",
				Action: func(c *cli.Context) error {
					return explainCommand(c, ui)
				},
			},
			{
				Name:      "batch",
				Usage:     "Score tab separated sentence pairs from a file or stdin",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					formatFlag(),
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "Number of concurrent scorers",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write results to file and show a progress bar",
					},
				},
				Action: func(c *cli.Context) error {
					return batchCommand(c, ui)
				},
			},
			{
				Name:  "query",
				Usage: "Compare sentences interactively",
				Flags: []cli.Flag{formatFlag()},
				Action: func(c *cli.Context) error {
					return queryCommand(c, ui)
				},
			},
			{
				Name:  "import",
				Usage: "Copy a lexicon into a SQLite database",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Usage: "Source lexicon path", Required: true},
					&cli.StringFlag{Name: "to", Usage: "Destination SQLite file", Required: true},
				},
				Action: func(c *cli.Context) error {
					return importCommand(c, ui)
				},
			},
			{
				Name:  "export",
				Usage: "Copy a lexicon into a JSON file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Usage: "Source lexicon path", Required: true},
					&cli.StringFlag{Name: "to", Usage: "Destination JSON file or directory", Required: true},
				},
				Action: func(c *cli.Context) error {
					return exportCommand(c, ui)
				},
			},
			{
				Name:  "stat",
				Usage: "Print lexicon statistics",
				Action: func(c *cli.Context) error {
					return statCommand(c, ui)
				},
			},
			{
				Name:  "bash",
				Usage: "Print the bash completion script",
				Action: func(c *cli.Context) error {
					return bashCommand(ui)
				},
			},
			{
				Name:            "complete",
				Hidden:          true,
				SkipFlagParsing: true,
				Action: func(c *cli.Context) error {
					return completeCommand(c.Args().Slice(), ui)
				},
			},
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
		},
	}
}

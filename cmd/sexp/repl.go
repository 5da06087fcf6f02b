package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"

	"github.com/sexpkit/sexp/ast"
	"github.com/sexpkit/sexp/parser"
)

const (
	historyFile = ".sexp_history"
	prompt      = "sexp> "
)

func replCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "parse lines interactively and print each tree",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "report malformed input instead of truncating",
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Value: parser.DefaultMaxDepth,
				Usage: "maximum group nesting depth",
			},
		},
		Action: func(ctx *cli.Context) error {
			return runRepl(parser.New(parserOptions(ctx)...))
		},
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

func runRepl(p *parser.Parser) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	if f, err := os.Open(historyPath()); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyPath()); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println("Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit.")

	for {
		input, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			// io.EOF on Ctrl+D
			fmt.Println()
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ":quit" {
			return nil
		}
		line.AppendHistory(input)

		root, err := p.Parse(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		ast.Print(root)
	}
}

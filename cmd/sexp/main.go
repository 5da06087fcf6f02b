package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/sexpkit/sexp/ast"
	"github.com/sexpkit/sexp/lexer"
	"github.com/sexpkit/sexp/parser"
)

func main() {
	app := &cli.App{
		Name:  "sexp",
		Usage: "parse S-expression sources into trees",
		Commands: []*cli.Command{
			parseCommand(),
			lexCommand(),
			replCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readSource(ctx *cli.Context) (string, error) {
	name := ctx.Args().First()
	if name == "" || name == "-" {
		in, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(in), nil
	}

	in, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(in), nil
}

func parserOptions(ctx *cli.Context) []parser.Option {
	opts := []parser.Option{
		parser.WithMaxDepth(ctx.Int("max-depth")),
	}
	if ctx.Bool("strict") {
		opts = append(opts, parser.WithStrict())
	}
	return opts
}

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "parse input and print the resulting tree",
		ArgsUsage: "[file|-]",
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
			src, err := readSource(ctx)
			if err != nil {
				return err
			}

			root, err := parser.New(parserOptions(ctx)...).Parse(src)
			if err != nil {
				return err
			}

			ast.Print(root)
			return nil
		},
	}
}

func lexCommand() *cli.Command {
	return &cli.Command{
		Name:      "lex",
		Usage:     "print the token stream, one unit per line",
		ArgsUsage: "[file|-]",
		Action: func(ctx *cli.Context) error {
			src, err := readSource(ctx)
			if err != nil {
				return err
			}

			for _, tok := range lexer.Tokenize(src) {
				fmt.Println(tok.String())
			}
			return nil
		},
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	fern "github.com/fernlang/fern"
	"github.com/fernlang/fern/arena"
)

// parseCommand implements `fern parse <file>`: run the lexer and parser,
// print the resulting AST (an indented s-expression dump, or --json), and
// exit nonzero if any diagnostics were produced.
func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "parse a file and print its AST",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print the AST as JSON instead of an s-expression dump"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("parse: missing <file> argument")
			}

			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			program, diags := fern.Parse(arena.New(), path, src)

			color := colorEnabled(cmd.Root().Bool("color"), cmd.Root().Bool("no-color"))
			for _, d := range diags {
				fmt.Fprint(os.Stderr, renderDiagnostic(d, string(src), color))
			}

			if cmd.Bool("json") {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")

				if err := enc.Encode(program); err != nil {
					return fmt.Errorf("parse: %w", err)
				}
			} else {
				fern.DumpProgram(os.Stdout, program)
			}

			if len(diags) > 0 {
				return cli.Exit("", 1)
			}

			return nil
		},
	}
}

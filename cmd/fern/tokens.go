package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	fern "github.com/fernlang/fern"
	"github.com/fernlang/fern/arena"
)

// tokensCommand implements `fern tokens <file>`: run the lexer alone and
// print every token it produces, including the synthetic layout tokens, one
// per line, in lexer order.
func tokensCommand() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "lex a file and print its token stream",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("tokens: missing <file> argument")
			}

			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("tokens: %w", err)
			}

			lexer := fern.NewLexer(arena.New(), path, src)

			for {
				tok := lexer.Next()
				fmt.Println(tok.String())

				if tok.Kind == fern.TokEOF {
					break
				}
			}

			return nil
		},
	}
}

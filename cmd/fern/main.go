// Command fern is the command-line front end for the Fern language: a
// lexer/parser pipeline with tokens/parse/check subcommands.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "fern",
		Usage: "Fern language front-end tooling",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "color", Usage: "force colored diagnostic output"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable colored diagnostic output"},
		},
		Commands: []*cli.Command{
			tokensCommand(),
			parseCommand(),
			checkCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/boyter/gocodewalker"
	"github.com/urfave/cli/v3"

	fern "github.com/fernlang/fern"
	"github.com/fernlang/fern/arena"
)

// checkCommand implements `fern check <path...>`: parse every module under
// the given paths (or under the current directory when none are given) and
// print any diagnostics, exiting nonzero if at least one file had an error.
// Only the file extension is taken from .fernrc.yaml; its root setting is
// not read here.
//
// check does not type-check; it exercises only the lex/parse front end. A
// later checker.TypeChecker implementation hooks in here once semantic
// analysis exists.
func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "parse a tree of Fern files and report diagnostics",
		ArgsUsage: "[path...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				args = []string{"."}
			}

			ext := "fn"
			if cfg, _, err := loadConfigWithDir(args[0]); err == nil {
				ext = cfg.Extension()
			}

			files, err := collectFernFiles(args, ext)
			if err != nil {
				return fmt.Errorf("check: %w", err)
			}

			color := colorEnabled(cmd.Root().Bool("color"), cmd.Root().Bool("no-color"))

			hadError := false

			for _, path := range files {
				src, err := os.ReadFile(path)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					hadError = true

					continue
				}

				_, diags := fern.Parse(arena.New(), path, src)
				for _, d := range diags {
					hadError = true

					fmt.Fprint(os.Stderr, renderDiagnostic(d, string(src), color))
				}
			}

			if hadError {
				return cli.Exit("", 1)
			}

			return nil
		},
	}
}

// collectFernFiles expands args (files or directories) to a flat list of
// source files with the given extension, walking directories with
// gocodewalker so vcs-ignored and binary-ish paths are skipped the same way
// a code-search tool would.
func collectFernFiles(args []string, ext string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		walked, err := walkFernDir(arg, ext)
		if err != nil {
			return nil, err
		}

		files = append(files, walked...)
	}

	return files, nil
}

func walkFernDir(dir, ext string) ([]string, error) {
	fileListQueue := make(chan *gocodewalker.File, 100)

	walker := gocodewalker.NewFileWalker(dir, fileListQueue)
	walker.AllowListExtensions = []string{ext}

	var walkErr error

	walker.SetErrorHandler(func(e error) bool {
		walkErr = e
		return true
	})

	go func() {
		_ = walker.Start()
	}()

	var files []string

	for f := range fileListQueue {
		if strings.HasSuffix(f.Location, "."+ext) {
			files = append(files, filepath.Clean(f.Location))
		}
	}

	return files, walkErr
}

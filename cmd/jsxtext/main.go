// Command jsxtext converts translation markup into i18next placeholder
// text, or extracts a resource catalog from source files.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/jsxtext/internal/catalog"
	"github.com/dgallion1/jsxtext/internal/jsx"
	"github.com/dgallion1/jsxtext/internal/pipeline"
	"github.com/dgallion1/jsxtext/internal/scan"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("jsxtext", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage:")
		_, _ = fmt.Fprintln(stderr, "  jsxtext [-s markup] [-tree]")
		_, _ = fmt.Fprintln(stderr, "  jsxtext -extract [-format json|yaml] [-sep .] [-prefix p] [-section-keys] files...")
		_, _ = fmt.Fprintln(stderr, "")
		_, _ = fmt.Fprintln(stderr, "Without -s, markup is read from stdin.")
		fs.PrintDefaults()
	}
	input := fs.String("s", "", "markup to convert (defaults to stdin)")
	tree := fs.Bool("tree", false, "print the parsed node forest as JSON")
	extract := fs.Bool("extract", false, "scan the given files and print a resource catalog")
	format := fs.String("format", "json", "catalog output format: json or yaml")
	sep := fs.String("sep", "", "nest catalog keys on this separator (empty keeps keys flat)")
	prefix := fs.String("prefix", "", "prefix for natural-language keys")
	sectionKeys := fs.Bool("section-keys", false, "derive natural keys from document headings (slugs joined by -sep, default \".\")")
	workers := fs.Int("j", 4, "files scanned concurrently")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *extract {
		if fs.NArg() == 0 {
			return fmt.Errorf("jsxtext: -extract needs at least one file")
		}
		opts := catalog.Options{KeyPrefix: *prefix, SectionKeys: *sectionKeys, KeySeparator: *sep}
		return extractFiles(fs.Args(), *workers, opts, *format, stdout, stderr)
	}

	src := *input
	if src == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		src = strings.TrimRight(string(b), "\r\n")
	}

	if *tree {
		nodes := jsx.ParseJSX(src)
		if nodes == nil {
			nodes = []*jsx.Node{}
		}
		enc := json.NewEncoder(stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	}

	_, err := fmt.Fprintln(stdout, jsx.JSXToText(src))
	return err
}

func extractFiles(paths []string, workers int, opts catalog.Options, format string, stdout, stderr io.Writer) error {
	files := make([]pipeline.File, 0, len(paths))
	for _, p := range paths {
		if !scan.IsSupportedExtension(p) {
			return fmt.Errorf("jsxtext: unsupported file type: %s", p)
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		files = append(files, pipeline.File{Name: filepath.ToSlash(p), Data: data})
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	results := pipeline.NewExtractor(workers, log).Run(context.Background(), files)

	var failed []string
	for _, r := range results {
		if r.Status == pipeline.StatusFailed {
			failed = append(failed, fmt.Sprintf("%s: %s", r.Filename, r.Error))
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("jsxtext: %s", strings.Join(failed, "; "))
	}

	cat := catalog.Build(pipeline.Messages(results), opts)
	for _, c := range cat.Conflicts {
		_, _ = fmt.Fprintf(stderr, "%s:%d: key %q already maps to %q, dropped %q\n", c.File, c.Line, c.Key, c.Kept, c.Dropped)
	}
	return catalog.Encode(stdout, cat.Resource(opts.KeySeparator), format)
}

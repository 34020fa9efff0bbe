// aas-refmap indexes element trees stored as YAML, resolves their cross
// references and writes the derived graph or nested document.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"aas-refmap/internal/config"
	"aas-refmap/internal/diagnostic"
	"aas-refmap/internal/document"
	"aas-refmap/internal/index"
	"aas-refmap/internal/logging"
	"aas-refmap/internal/match"
	"aas-refmap/internal/metrics"
	"aas-refmap/internal/report"
	"aas-refmap/internal/tree"
	"aas-refmap/internal/treefile"
	"aas-refmap/internal/treemap"
)

var version = "dev"

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	format      string
	metricsFile string
	debug       bool
	quiet       bool
	showVersion bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("aas-refmap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "usage: aas-refmap [flags] tree.yaml...")
		fs.PrintDefaults()
	}

	var opts options

	fs.StringVar(&opts.configPath, "config", "", "configuration file")
	fs.StringVar(&opts.format, "format", "", "output format: yaml, json or document (overrides config)")
	fs.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	fs.BoolVar(&opts.debug, "debug", false, "dump configuration and run statistics to stderr")
	fs.BoolVar(&opts.quiet, "q", false, "do not print the summary")
	fs.BoolVar(&opts.showVersion, "version", false, "show version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if opts.showVersion {
		_, _ = fmt.Fprintf(stdout, "aas-refmap %s\n", version)
		return nil
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no tree files given")
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format}, stderr)
	if err != nil {
		return err
	}

	if opts.debug {
		spew.Fdump(stderr, cfg)
	}

	roots, diags, err := loadTrees(ctx, fs.Args())
	if err != nil {
		return err
	}

	reg := metrics.NewRegistry()

	idx := index.New(index.WithLogger(logger))
	diags.Merge(idx.Index(roots))
	reg.RecordIndex(idx.Len())
	reg.RecordDiagnostics(diags)

	logger.Info().Int("roots", len(roots)).Int("nodes", idx.Len()).Msg("trees indexed")

	var (
		stats  treemap.Stats
		result *diagnostic.Diagnostics
	)

	if cfg.Output.Format == config.FormatDocument {
		stats, result, err = writeDocument(stdout, cfg, roots, idx, reg, logger)
	} else {
		stats, result, err = writeGraph(stdout, cfg, roots, idx, reg, logger)
	}

	if err != nil {
		return err
	}

	diags.Merge(result)

	if opts.debug {
		spew.Fdump(stderr, stats)
	}

	if opts.metricsFile != "" {
		if err := reg.WriteTextfile(opts.metricsFile); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	if !opts.quiet {
		return report.Summary(stderr, stats, diags, logging.IsTerminal(stderr))
	}

	return nil
}

func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		var err error

		if cfg, err = config.LoadFile(opts.configPath); err != nil {
			return nil, err
		}
	}

	if opts.format != "" {
		cfg.Output.Format = opts.format

		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// loadTrees reads the files concurrently and concatenates their roots in
// argument order.
func loadTrees(ctx context.Context, paths []string) ([]tree.Node, *diagnostic.Diagnostics, error) {
	type loaded struct {
		roots []tree.Node
		diags *diagnostic.Diagnostics
	}

	results := make([]loaded, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			roots, diags, err := treefile.LoadFile(path)
			if err != nil {
				return err
			}

			results[i] = loaded{roots: roots, diags: diags}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var roots []tree.Node

	diags := diagnostic.New()

	for _, r := range results {
		roots = append(roots, r.roots...)
		diags.Merge(r.diags)
	}

	return roots, diags, nil
}

func writeGraph(
	w io.Writer,
	cfg *config.Config,
	roots []tree.Node,
	idx *index.Index,
	reg *metrics.Registry,
	logger zerolog.Logger,
) (treemap.Stats, *diagnostic.Diagnostics, error) {
	opts, err := config.MapperOptions(cfg, idx, treemap.NewGraphFactory(idx), logger)
	if err != nil {
		return treemap.Stats{}, nil, err
	}

	m, err := treemap.New(opts)
	if err != nil {
		return treemap.Stats{}, nil, err
	}

	start := time.Now()
	res := m.Run(roots)
	metrics.RecordRun(reg, res, time.Since(start))

	if err := report.Write(w, cfg.Output.Format, report.New(res, idx)); err != nil {
		return treemap.Stats{}, nil, err
	}

	return res.Stats, res.Diagnostics, nil
}

func writeDocument(
	w io.Writer,
	cfg *config.Config,
	roots []tree.Node,
	idx *index.Index,
	reg *metrics.Registry,
	logger zerolog.Logger,
) (treemap.Stats, *diagnostic.Diagnostics, error) {
	opts := []document.Option{
		document.WithMaxDepth(cfg.Mapper.MaxDepth),
		document.WithLogger(logger),
	}

	if list := match.ParseSuppressionList(cfg.Mapper.Suppress); !list.IsEmpty() {
		opts = append(opts, document.WithSuppress(list.Matches))
	}

	start := time.Now()

	doc, err := document.Build(roots, idx, opts...)
	if err != nil {
		return treemap.Stats{}, nil, err
	}

	reg.RecordStats(doc.Stats, time.Since(start))
	reg.RecordLinks(doc.LinksEmitted, doc.Dropped)
	reg.RecordDiagnostics(doc.Diagnostics)

	if err := report.Write(w, "json", doc.Root); err != nil {
		return treemap.Stats{}, nil, err
	}

	return doc.Stats, doc.Diagnostics, nil
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cli-tabdb-helper/internal/config"
	"cli-tabdb-helper/internal/dataset"
	"cli-tabdb-helper/internal/filter"
	"cli-tabdb-helper/internal/prompt"
	"cli-tabdb-helper/internal/report"
	"cli-tabdb-helper/internal/stats"
)

type runner struct {
	cfg    config.Config
	opts   Options
	log    *slog.Logger
	report *report.Reporter
	stats  runStats
}

type runStats struct {
	records    int
	predicates int
	matches    int
	warnings   int
}

func newRunner(cfg config.Config, opts Options) *runner {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &runner{
		cfg:    cfg,
		opts:   opts,
		log:    slog.Default().With("component", "tabdb"),
		report: report.New(opts.Out),
	}
}

func (r *runner) Execute(ctx context.Context) error {
	switch r.opts.Mode {
	case ModeFilter:
		return r.filter(ctx)
	case ModeStats:
		return r.summarise()
	case ModePlays:
		return r.plays()
	case ModeRequests:
		return r.requests()
	default:
		return fmt.Errorf("unknown mode %d", r.opts.Mode)
	}
}

func (r *runner) filter(ctx context.Context) error {
	ds, err := r.loadTabDB()
	if err != nil {
		return err
	}

	raw, err := r.collect(ctx)
	if err != nil {
		return err
	}

	spec, warnings := filter.Coerce(raw)
	r.report.Warnings(warnings)
	r.stats.warnings = len(warnings)

	res := filter.Run(ds, spec)
	r.stats.predicates = res.Predicates
	r.stats.matches = len(res.Songs)
	r.report.Result(res)

	r.log.Debug("Filter complete",
		"records", r.stats.records,
		"predicates", r.stats.predicates,
		"matches", r.stats.matches,
		"warnings", r.stats.warnings)
	return nil
}

func (r *runner) collect(ctx context.Context) (filter.Raw, error) {
	if r.opts.QueryFile != "" {
		r.log.Debug("Reading filters from query file", "path", r.opts.QueryFile)
		return filter.LoadQueryFile(r.opts.QueryFile)
	}
	return prompt.NewCollector(r.opts.In, r.opts.Out).Collect(ctx)
}

func (r *runner) summarise() error {
	d, err := stats.ParseDimension(r.opts.Dimension)
	if err != nil {
		return err
	}
	ds, err := r.loadTabDB()
	if err != nil {
		return err
	}
	counts, err := stats.Counts(ds, d)
	if err != nil {
		return err
	}
	return r.report.Counts(d, counts)
}

func (r *runner) plays() error {
	path, err := r.locate(r.cfg.PlayDB)
	if err != nil {
		return err
	}
	history, err := dataset.LoadPlayLog(path)
	if err != nil {
		return fmt.Errorf("load play log: %w", err)
	}
	if r.opts.Song == "" {
		return r.report.Sessions(history.Sessions())
	}
	r.report.PlayCount(r.opts.Song, history.PlayCount(r.opts.Song))
	return nil
}

func (r *runner) requests() error {
	if r.opts.Artist == "" {
		return fmt.Errorf("artist is required")
	}
	path, err := r.locate(r.cfg.RequestDB)
	if err != nil {
		return err
	}
	all, err := dataset.LoadRequests(path)
	if err != nil {
		return fmt.Errorf("load requests: %w", err)
	}
	r.report.Requests(dataset.RequestsByArtist(all, r.opts.Artist))
	return nil
}

func (r *runner) loadTabDB() (*dataset.Dataset, error) {
	path, err := r.locate(r.cfg.TabDB)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load tab database: %w", err)
	}
	r.stats.records = ds.Len()
	r.log.Debug("Tab database ready", "path", ds.Path(), "records", ds.Len())
	return ds, nil
}

func (r *runner) locate(pattern string) (string, error) {
	path, err := dataset.Locate(r.cfg.DataDir, pattern)
	if err != nil {
		return "", err
	}
	r.log.Debug("Resolved data file", "pattern", pattern, "path", path)
	return path, nil
}

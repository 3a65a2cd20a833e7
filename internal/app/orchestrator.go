// Package app wires the loader, validator, reporter, and remote checker
// behind the CLI commands.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/domenicocinque/hooklint-go/internal/cache"
	"github.com/domenicocinque/hooklint-go/internal/config"
	"github.com/domenicocinque/hooklint-go/internal/domain"
	"github.com/domenicocinque/hooklint-go/internal/manifest"
	"github.com/domenicocinque/hooklint-go/internal/remote"
	"github.com/domenicocinque/hooklint-go/internal/report"
	"github.com/domenicocinque/hooklint-go/internal/utils"
	"github.com/domenicocinque/hooklint-go/internal/validator"
)

// Orchestrator coordinates manifest loading, validation, and reporting
type Orchestrator struct {
	config    *config.Config
	loader    *manifest.Loader
	validator *validator.Validator
	client    remote.Client
	logger    *utils.Logger
	out       io.Writer
	noCache   bool
	progress  bool
}

// Options contains options for creating an Orchestrator
type Options struct {
	Config  *config.Config
	Verbose bool
	NoCache bool

	// Out is where reports are written; defaults to stdout.
	Out io.Writer

	// Client overrides the git client, for tests.
	Client remote.Client

	// Progress enables the progress bar during remote checks.
	Progress bool
}

// New creates a new orchestrator with the given configuration
func New(opts Options) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logLevel := cfg.Logging.Level
	if opts.Verbose {
		logLevel = "debug"
	}
	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: opts.Verbose,
	})

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	client := opts.Client
	if client == nil {
		client = remote.NewClient()
	}

	return &Orchestrator{
		config:    cfg,
		loader:    manifest.NewLoader(),
		validator: validator.New(),
		client:    client,
		logger:    logger,
		out:       out,
		noCache:   opts.NoCache,
		progress:  opts.Progress,
	}, nil
}

// Validate loads the manifest at path, validates it, and writes the
// report. The returned Result carries the exit code; a non-nil error
// means the manifest could not be parsed at all.
func (o *Orchestrator) Validate(path string) (*report.Result, error) {
	cfg, err := o.loader.Load(path)
	if err != nil {
		return nil, err
	}

	violations := o.validator.Validate(cfg)
	if violations == nil {
		violations = []validator.Violation{}
	}

	result := &report.Result{
		Path:       path,
		Repos:      len(cfg.Repos),
		Hooks:      cfg.HookCount(),
		Violations: violations,
	}

	o.logger.Debug().
		Str("path", path).
		Int("repos", result.Repos).
		Int("hooks", result.Hooks).
		Int("violations", len(violations)).
		Msg("validation finished")

	reporter := report.NewReporter(o.out, o.config.Output.Format)
	if err := reporter.Write(result); err != nil {
		return nil, err
	}
	return result, nil
}

// List loads the manifest at path and writes its repos and hooks
func (o *Orchestrator) List(path string) error {
	cfg, err := o.loader.Load(path)
	if err != nil {
		return err
	}

	if o.config.Output.Format == report.FormatJSON {
		enc := json.NewEncoder(o.out)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	for _, repo := range cfg.Repos {
		if repo.Rev != "" {
			fmt.Fprintf(o.out, "%s @ %s\n", repo.Repo, repo.Rev)
		} else {
			fmt.Fprintf(o.out, "%s\n", repo.Repo)
		}
		for _, hook := range repo.Hooks {
			fmt.Fprintf(o.out, "  - %s\n", hook.DisplayName())
		}
	}
	return nil
}

// CheckRemote loads the manifest at path and verifies every pinned rev
// against its upstream repository. It returns the per-repo statuses and
// whether every pin resolved.
func (o *Orchestrator) CheckRemote(ctx context.Context, path string) ([]remote.Status, bool, error) {
	cfg, err := o.loader.Load(path)
	if err != nil {
		return nil, false, err
	}

	refCache, err := o.openCache()
	if err != nil {
		o.logger.Warn().Err(err).Msg("cache unavailable, checking without it")
	}
	if refCache != nil {
		defer refCache.Close()
	}

	checker := remote.NewChecker(remote.CheckerOptions{
		Client:   o.client,
		Cache:    refCache,
		Retrier:  remote.NewRetrier(remote.RetrierOptions{MaxRetries: o.config.Remote.MaxRetries}),
		CacheTTL: o.config.Cache.TTL,
		Workers:  o.config.Remote.Jobs,
		Logger:   o.logger,
	})

	remoteCount := 0
	for _, repo := range cfg.Repos {
		if repo.IsRemote() {
			remoteCount++
		}
	}

	var onProgress func()
	if o.progress && remoteCount > 0 {
		bar := utils.NewProgressBar(remoteCount, utils.DescChecking)
		defer bar.Finish()
		onProgress = func() { _ = bar.Add(1) }
	}

	checkCtx, cancel := context.WithTimeout(ctx, o.config.Remote.Timeout)
	defer cancel()

	statuses := checker.Check(checkCtx, cfg, onProgress)

	ok := true
	for _, status := range statuses {
		if !status.Found {
			ok = false
		}
	}

	if err := o.writeStatuses(statuses); err != nil {
		return statuses, ok, err
	}
	return statuses, ok, nil
}

func (o *Orchestrator) writeStatuses(statuses []remote.Status) error {
	if o.config.Output.Format == report.FormatJSON {
		enc := json.NewEncoder(o.out)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	for _, status := range statuses {
		state := "ok"
		switch {
		case status.Err != "":
			state = fmt.Sprintf("error: %s", status.Err)
		case !status.Found:
			state = "rev not found"
		case status.Stale():
			state = fmt.Sprintf("stale (latest: %s)", status.LatestTag)
		}
		if _, err := fmt.Fprintf(o.out, "%s @ %s: %s\n", status.Repo, status.Rev, state); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) openCache() (domain.Cache, error) {
	if o.noCache || !o.config.Cache.Enabled {
		return nil, nil
	}
	c, err := cache.NewBadgerCache(cache.Options{
		Directory: utils.ExpandPath(o.config.Cache.Directory),
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

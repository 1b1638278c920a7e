package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/briefwire/briefwire/pkg/config"
	"github.com/briefwire/briefwire/pkg/content"
	"github.com/briefwire/briefwire/pkg/digest"
	"github.com/briefwire/briefwire/pkg/feed"
	"github.com/briefwire/briefwire/pkg/llm"
	"github.com/briefwire/briefwire/pkg/scheduler"
	"github.com/briefwire/briefwire/pkg/store"
	"github.com/briefwire/briefwire/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address override"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		lgr.Printf("[ERROR] can't load config: %v", err)
		os.Exit(1)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	setupLog(opts.Debug, opts.NoColor, cfg.Oracle.APIKey)

	lgr.Printf("[INFO] starting briefwire version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		lgr.Printf("[ERROR] briefwire failed: %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

// run wires the store, oracle, pipeline and HTTP server together
func run(ctx context.Context, cfg *config.Config, debug bool) error {
	dataStore, err := store.NewStore(ctx, store.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if closeErr := dataStore.Close(); closeErr != nil {
			lgr.Printf("[WARN] store close error: %v", closeErr)
		}
	}()

	oracle := llm.NewOracle(cfg.GetOracleConfig())

	var enricher digest.Enricher
	if enrichCfg := cfg.GetEnrichmentConfig(); enrichCfg.Enabled {
		enricher = content.NewEnricher(content.EnricherParams{
			Timeout:       enrichCfg.Timeout,
			MaxConcurrent: enrichCfg.MaxConcurrent,
			MinTextLength: enrichCfg.MinTextLength,
			UserAgent:     enrichCfg.UserAgent,
		})
	}

	pipelineCfg := cfg.GetPipelineConfig()
	pipeline := digest.NewPipeline(digest.Params{
		Oracle:           oracle,
		Recipients:       dataStore,
		Enricher:         enricher,
		BatchSize:        pipelineCfg.BatchSize,
		PreFilterTarget:  pipelineCfg.PreFilterTarget,
		ScoreThreshold:   pipelineCfg.ScoreThreshold,
		MaxRetries:       pipelineCfg.MaxRetries,
		ContinuityTitles: pipelineCfg.ContinuityTitles,
	})

	if scheduleCfg := cfg.GetScheduleConfig(); scheduleCfg.Enabled {
		parser := feed.NewParser(30*time.Second, cfg.Enrichment.UserAgent)
		collector := feed.NewCollector(parser, cfg.Sources)
		sched := scheduler.NewScheduler(collector, pipeline, dataStore, scheduleCfg.Interval)
		sched.Start(ctx)
		defer sched.Stop()
	}

	srv := server.New(cfg, pipeline, dataStore, revision, debug)
	return srv.Run(ctx)
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	// keep API keys out of logs
	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}

	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

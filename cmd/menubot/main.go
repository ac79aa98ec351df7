package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/ajoubot/menubot/pkg/config"
	"github.com/ajoubot/menubot/pkg/menu"
	"github.com/ajoubot/menubot/pkg/notify"
	"github.com/ajoubot/menubot/pkg/repository"
	"github.com/ajoubot/menubot/pkg/scheduler"
	"github.com/ajoubot/menubot/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file"`

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

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires the application together and blocks until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	secrets := []string{}
	if cfg.Server.AdminKey != "" {
		secrets = append(secrets, cfg.Server.AdminKey)
	}
	if cfg.Kakao.ClientID != "" {
		secrets = append(secrets, cfg.Kakao.ClientID)
	}
	setupLog(opts.Debug, opts.NoColor, secrets...)

	log.Printf("[INFO] starting menubot version %s", revision)

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("failed to load timezone: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init repositories: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] can't close database: %v", err)
		}
	}()

	// menu pipeline: fetch -> aggregate -> digest
	sources := make([]menu.Source, 0, len(cfg.Menu.Sources))
	for _, src := range cfg.Menu.Sources {
		sources = append(sources, menu.Source{Name: src.Name, ArticleID: src.ArticleID})
	}
	fetcher := menu.NewHTTPFetcher(cfg.Menu.PageURL, cfg.Menu.UserAgent, cfg.Menu.Timeout)
	aggregator := menu.NewAggregator(fetcher, sources)
	builder := menu.NewBuilder(aggregator, cfg.Menu.Title, loc)

	// delivery channel, credential read from the repository at dispatch time
	notifier := notify.NewClient(cfg.Kakao.SendURL, cfg.Menu.PageURL, repos.Token, cfg.Kakao.Timeout)
	auth := notify.NewAuth(cfg.Kakao.AuthURL, cfg.Kakao.TokenURL, cfg.Kakao.ClientID, cfg.Kakao.Timeout)

	hour, minute, err := scheduler.ParseNotifyTime(cfg.Schedule.Time)
	if err != nil {
		return fmt.Errorf("failed to parse schedule time: %w", err)
	}

	sched, err := scheduler.New(scheduler.Params{
		Digester: builder,
		Notifier: notifier,
		Store:    repos.Setting,
		Location: loc,
		Hour:     hour,
		Minute:   minute,
	})
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	srv := server.New(cfg, server.Services{
		Digester:  builder,
		Notifier:  notifier,
		Scheduler: sched,
		Tokens:    repos.Token,
		Auth:      auth,
	}, revision, opts.Debug)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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

	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}

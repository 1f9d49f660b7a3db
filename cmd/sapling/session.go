package main

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/browser"
	"github.com/phanxgames/sapling/internal/config"
	"github.com/phanxgames/sapling/internal/logger"
)

// session is a configured browser app plus the loader feeding it.
type session struct {
	cfg    config.Config
	app    *browser.App
	log    zerolog.Logger
	cancel context.CancelFunc
	done   chan error
}

// newSession loads config, applies flag overrides and starts the page
// loader when a pages directory is set.
func newSession(ctx context.Context, flags *rootFlags, logOut io.Writer) (*session, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.font != "" {
		cfg.Font = flags.font
	}
	if flags.pagesDir != "" {
		cfg.PagesDir = flags.pagesDir
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{Level: cfg.LogLevel, HumanReadable: flags.humanLogs, Writer: logOut})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &session{cfg: cfg, log: log, cancel: cancel, done: make(chan error, 1)}

	inbox := browser.NewInbox(16)
	opts := browser.Options{
		Screen: sapling.NewRect(0, 0, cfg.Width, cfg.Height),
		Theme:  cfg.Theme,
		Font:   cfg.Font,
		Inbox:  inbox,
		Logger: &log,
	}

	if cfg.PagesDir != "" {
		fetcher := browser.DirFetcher{Dir: cfg.PagesDir}
		if cfg.StartPage != "" {
			page, err := fetcher.Fetch(ctx, cfg.StartPage)
			if err != nil {
				cancel()
				return nil, err
			}
			opts.StartPage = page
		}
		requests := make(chan string, 4)
		opts.Requests = requests
		loader := &browser.Loader{Fetcher: fetcher, Requests: requests, Inbox: inbox, Log: log}
		go func() { s.done <- loader.Run(ctx) }()
	} else {
		s.done <- nil
	}

	s.app = browser.New(opts)
	s.app.Scene.SetDebugMode(flags.debug)
	if cfg.AutoRedraw {
		s.app.Scene.SetAutoRedraw(true)
	}
	return s, nil
}

// Close stops the loader and waits for it.
func (s *session) Close() error {
	s.cancel()
	if err := <-s.done; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

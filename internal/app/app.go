// Package app wires the companion command: config -> logger -> pipeline.
// It prints the ranked recently-used files, acting as a reference host
// integration and a debugging aid for the library.
package app

import (
	"fmt"

	"github.com/editkit/recently/internal/config"
	"github.com/editkit/recently/internal/logger"
	"github.com/editkit/recently/internal/recent"
	"github.com/editkit/recently/internal/source"
	"github.com/editkit/recently/internal/version"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	svc    *recent.Service
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	svc := recent.NewService(recent.Options{
		BookmarkFile:   cfg.XbelFile,
		RemotePrefixes: cfg.RemotePrefixes,
	}, loggerClient)

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		svc:    svc,
	}
}

func (a *App) Run() error {
	a.logger.Debugf("recently %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)
	a.logger.Debug("reading bookmark file",
		logger.String("path", a.svc.BookmarkPath()))

	paths := a.svc.SystemPaths()
	if a.cfg.MaxEntries > 0 && len(paths) > a.cfg.MaxEntries {
		paths = paths[:a.cfg.MaxEntries]
	}

	if len(paths) == 0 {
		a.logger.Info("no recently used files found")
		return nil
	}

	for _, path := range paths {
		fmt.Println(source.AbbreviateHome(path))
	}

	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/shoptoolkit/toolkit/pkg/logger"
	"github.com/shoptoolkit/toolkit/pkg/timefmt"
)

// config holds settings read from the environment; flags override them.
type config struct {
	LogLevel  string `env:"TOOLKIT_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"TOOLKIT_LOG_FORMAT" envDefault:"text"`
	Timezone  string `env:"TOOLKIT_TIMEZONE"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// app carries what every subcommand needs once flags are resolved.
type app struct {
	log       *slog.Logger
	formatter *timefmt.Formatter
	clock     timefmt.Clock
	loc       *time.Location
}

func (a *app) now() time.Time {
	return a.clock.Now().In(a.loc)
}

func (c config) build(clock timefmt.Clock) (*app, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithExtractors(commandExtractor),
	)

	loc := time.Local
	if c.Timezone != "" {
		loc, err = time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
		}
	}

	return &app{
		log:   log,
		clock: clock,
		loc:   loc,
		formatter: timefmt.New(
			timefmt.WithClock(clock),
			timefmt.WithLocation(loc),
			timefmt.WithLogger(log),
		),
	}, nil
}

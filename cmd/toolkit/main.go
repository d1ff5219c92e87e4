// Package main provides the toolkit CLI, a thin shell over the timefmt and
// textutil packages.
//
// Usage:
//
//	toolkit date                          # 15/10/2026
//	toolkit time                          # 14:03:09
//	toolkit minutes 12:00:00              # minutes elapsed since noon
//	toolkit post-age 01/01/2025 09:30:00  # Posted 1 years
//	toolkit initials "Java Development Kit"
//	toolkit capitalize "ello world"
//	toolkit title "ello world"
//	toolkit spaced "Ello World"
//	toolkit password 'Hello#World' --min 8
//	toolkit copyright 2022
//
// Environment: TOOLKIT_LOG_LEVEL, TOOLKIT_LOG_FORMAT, TOOLKIT_TIMEZONE.
package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/shoptoolkit/toolkit/pkg/timefmt"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

type commandKey struct{}

func commandExtractor(ctx context.Context) (slog.Attr, bool) {
	if name, ok := ctx.Value(commandKey{}).(string); ok && name != "" {
		return slog.String("command", name), true
	}
	return slog.Attr{}, false
}

func main() {
	if err := newRootCmd(timefmt.SystemClock{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(clock timefmt.Clock) *cobra.Command {
	a := &app{}

	cfg, cfgErr := loadConfig()

	root := &cobra.Command{
		Use:          "toolkit",
		Short:        "String and date helpers for storefronts",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			built, err := cfg.build(clock)
			if err != nil {
				return err
			}
			*a = *built

			cmd.SetContext(context.WithValue(cmd.Context(), commandKey{}, cmd.Name()))
			a.log.DebugContext(cmd.Context(), "running", slog.Any("args", args))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json)")
	root.PersistentFlags().StringVar(&cfg.Timezone, "timezone", cfg.Timezone, "IANA time zone, defaults to local")

	root.AddCommand(
		dateCmd(a),
		timeCmd(a),
		minutesCmd(a),
		postAgeCmd(a),
		initialsCmd(),
		capitalizeCmd(),
		titleCmd(),
		spacedCmd(),
		passwordCmd(),
		copyrightCmd(a),
	)

	return root
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shoptoolkit/toolkit/pkg/timefmt"
)

func dateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "date",
		Short: "Print today's date as DD/MM/YYYY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.formatter.CurrentDate())
			return err
		},
	}
}

func timeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "time",
		Short: "Print the current time as HH:MM:SS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.formatter.CurrentTime())
			return err
		},
	}
}

func minutesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "minutes HH:MM:SS",
		Short: "Print minutes elapsed since a time of day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.formatter.MinutesSince(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), m)
			return err
		},
	}
}

func postAgeCmd(a *app) *cobra.Command {
	var advanced bool
	l := timefmt.Labels{
		NotRecent: "Posted",
		Recent:    "Just now",
		Day:       "days",
		Month:     "months",
		Year:      "years",
		Hour:      "hours",
		Minute:    "minutes",
	}

	cmd := &cobra.Command{
		Use:   "post-age DD/MM/YYYY HH:MM:SS",
		Short: "Describe how long ago a post was published",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			age, err := a.formatter.PostDuration(args[0], args[1], advanced, l)
			if err != nil {
				return err
			}
			a.log.DebugContext(cmd.Context(), "post age computed",
				slog.String("date", args[0]),
				slog.String("time", args[1]),
				slog.Bool("advanced", advanced),
			)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), age)
			return err
		},
	}

	f := cmd.Flags()
	f.BoolVar(&advanced, "advanced", false, "Print the post's clock time once it is 10+ hours old")
	f.StringVar(&l.NotRecent, "prefix", l.NotRecent, "Message before the elapsed time")
	f.StringVar(&l.Recent, "recent", l.Recent, "Message for posts under two minutes old")
	f.StringVar(&l.Day, "day-word", l.Day, "Word for days")
	f.StringVar(&l.Month, "month-word", l.Month, "Word for months")
	f.StringVar(&l.Year, "year-word", l.Year, "Word for years")
	f.StringVar(&l.Hour, "hour-word", l.Hour, "Word for hours")
	f.StringVar(&l.Minute, "minute-word", l.Minute, "Word for minutes")

	return cmd
}

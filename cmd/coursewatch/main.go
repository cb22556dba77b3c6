// Package main implements the coursewatch command line tool.
//
// coursewatch polls the NTUST QueryCourse service and reports enrollment
// changes live: as a typed feed under a pinned title, as plain timestamped
// lines, or as a full-screen dashboard. The serve subcommand runs a local
// mock of the upstream API for development.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/coursewatch/coursewatch/internal/backend"
	"github.com/coursewatch/coursewatch/internal/monitor"
	"github.com/coursewatch/coursewatch/internal/querycourse"
)

func rootCmd() (*cobra.Command, error) {
	config := monitor.DefaultConfig()
	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cmd := &cobra.Command{
		Use:   "coursewatch",
		Short: "Watch NTUST course enrollment changes live",
		Long: `Watch NTUST course enrollment changes live.

coursewatch polls the QueryCourse search endpoint every few seconds and
reports every change in a course's enrollment figure:
  • Seat movements typed out character by character under a pinned title
  • Red for a taken seat, green for a freed one
  • Plain timestamped lines for logs and CI (--line, or a non-terminal)
  • A full-screen dashboard with seat saturation and history (--tui)

The first successful poll only records the baseline; changes are reported
from the second poll on. Fetch failures never stop the watch.`,
		Example: `  # Watch the default semester
  coursewatch

  # Watch one course in plain line output
  coursewatch --course-no CS2006301 --line

  # Full-screen dashboard for a teacher's courses
  coursewatch --teacher 王 --tui

  # Watch against a locally served mock
  coursewatch --url http://localhost:8000/QueryCourse/api//courses`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup signal handling for graceful shutdown
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			m, err := monitor.NewWithConfig(querycourse.NewClient(config.URL), config)
			if err != nil {
				return fmt.Errorf("failed to initialize watching: %w", err)
			}

			return m.Run(ctx)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&config.URL, "url", config.URL, "course query endpoint")
	flags.StringVarP(&config.Semester, "semester", "S", config.Semester, "semester to watch (e.g. 1142)")
	flags.StringVar(&config.CourseNo, "course-no", config.CourseNo, "only watch matching course numbers")
	flags.StringVar(&config.CourseName, "course-name", config.CourseName, "only watch matching course names")
	flags.StringVar(&config.Teacher, "teacher", config.Teacher, "only watch matching teachers")
	flags.DurationVar(&config.Interval, "interval", config.Interval, "time between polls")
	flags.StringVar(&config.Title, "title", config.Title, "pinned header text")
	flags.BoolVar(&config.LineMode, "line", config.LineMode, "plain line output without animation")
	flags.BoolVar(&config.TUIMode, "tui", config.TUIMode, "full-screen dashboard")
	cmd.MarkFlagsMutuallyExclusive("line", "tui")

	serve, err := serveCmd()
	if err != nil {
		return nil, err
	}
	cmd.AddCommand(serve)

	return cmd, nil
}

func serveCmd() (*cobra.Command, error) {
	config := backend.Config{
		Addr:          backend.DefaultAddr,
		Upstream:      querycourse.DefaultURL,
		SimulateEvery: backend.DefaultSimulateEvery,
	}
	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local mock of the course query service",
		Long: `Run a local mock of the QueryCourse API.

The mock fetches one semester's full catalog from the real service at
startup, then serves it from memory while simulating registration churn,
so the watcher can be exercised without polling the production system.`,
		Example: `  # Serve semester 1142 on the default port
  coursewatch serve --semester 1142

  # Point the watcher at it
  coursewatch --url http://localhost:8000/QueryCourse/api//courses`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			s, err := backend.NewServer(config)
			if err != nil {
				return fmt.Errorf("failed to initialize course service: %w", err)
			}

			return s.Run(ctx)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&config.Addr, "addr", config.Addr, "listen address")
	flags.StringVarP(&config.Semester, "semester", "S", config.Semester, "semester to serve (e.g. 1142)")
	flags.StringVar(&config.Upstream, "upstream", config.Upstream, "real course query endpoint to load from")
	flags.DurationVar(&config.SimulateEvery, "simulate-every", config.SimulateEvery, "time between simulated enrollment batches")
	flags.Int64Var(&config.Seed, "seed", config.Seed, "random seed for the simulation (0 = random)")
	if config.Semester == "" {
		_ = cmd.MarkFlagRequired("semester")
	}

	return cmd, nil
}

func main() {
	cmd, err := rootCmd()
	if err == nil {
		err = cmd.Execute()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		os.Exit(1)
	}
}

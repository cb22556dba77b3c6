package monitor

// Architecture (MVC Pattern):
//   - Controller: Orchestrates the poll loop and owns per-run state
//   - View: Presentation layer interface (animated, line and tui variants)
//   - querycourse.Client: Data access layer for the remote search endpoint
//   - Types: Domain models and DTOs (internal/types)
//
// Data Flow: Client (QueryCourse API) → Controller → Differ → CycleSnapshot → View

import (
	"context"
	"errors"
	"os"
	"slices"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/coursewatch/coursewatch/internal/querycourse"
	"github.com/coursewatch/coursewatch/internal/tui"
	"github.com/coursewatch/coursewatch/internal/types"
)

// Controller drives the poll loop: fetch, sort, diff, render, wait.
type Controller struct {
	client *querycourse.Client
	differ *Differ
	view   types.View
	config Config
	cycle  int
}

// New creates a Controller with the default configuration.
func New(client *querycourse.Client) (*Controller, error) {
	return NewWithConfig(client, DefaultConfig())
}

// NewWithConfig creates a Controller with custom configuration.
func NewWithConfig(client *querycourse.Client, config Config) (*Controller, error) {
	if client == nil {
		return nil, errors.New("internal error: client is required")
	}
	if config.Semester == "" {
		return nil, errors.New("semester is required")
	}

	var view types.View
	switch {
	case config.TUIMode:
		view = tui.NewView()
	case config.LineMode || !term.IsTerminal(int(os.Stdout.Fd())):
		view = NewLineView(os.Stdout)
	default:
		view = NewAnimatedView(config)
	}

	return &Controller{
		client: client,
		differ: NewDiffer(),
		view:   view,
		config: config,
	}, nil
}

// Run starts the poll loop and blocks until the context is cancelled or the
// view exits. Fetch failures never stop the loop; they surface as failed
// cycles and the next tick proceeds on schedule. Returns nil on a clean
// interrupt so the process can exit zero.
func (c *Controller) Run(ctx context.Context) error {
	defer c.view.Shutdown()

	ticker := time.NewTicker(c.config.Interval)
	defer ticker.Stop()

	for {
		c.view.RenderCycle(c.processCycle(ctx))

		select {
		case <-ctx.Done():
			return nil // Interrupted; deferred Shutdown restores the terminal
		case <-c.view.Done():
			return nil // User quit via TUI
		case <-ticker.C:
		}
	}
}

// processCycle performs one fetch-diff round and packages the outcome.
// The Baseline flag is read before diffing, so the first successful cycle
// reports itself as the one that populated the retained state.
func (c *Controller) processCycle(ctx context.Context) *types.CycleSnapshot {
	c.cycle++
	snapshot := &types.CycleSnapshot{
		Semester: c.config.Semester,
		URL:      c.config.URL,
		Time:     time.Now(),
		Cycle:    c.cycle,
		Baseline: c.differ.Baseline(),
	}

	courses, err := c.client.Search(ctx, c.config.Query())
	if err != nil {
		snapshot.Err = err
		snapshot.Courses = c.differ.Tracked()
		return snapshot
	}

	slices.SortStableFunc(courses, func(a, b querycourse.Course) int {
		return strings.Compare(a.CourseNo, b.CourseNo)
	})

	snapshot.Deltas = c.differ.Diff(courses)
	snapshot.Courses = c.differ.Tracked()
	snapshot.Full, snapshot.Measurable = c.differ.Stats()
	return snapshot
}

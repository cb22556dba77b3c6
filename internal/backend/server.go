// This file contains the HTTP surface and lifecycle of the mock service.

package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/coursewatch/coursewatch/internal/querycourse"
)

const (
	// DefaultAddr is where the mock service listens.
	DefaultAddr = "localhost:8000"
	// DefaultSimulateEvery is the pause between enrollment simulation batches.
	DefaultSimulateEvery = time.Second

	// readHeaderTimeout limits how long the server waits for request headers.
	readHeaderTimeout = 5 * time.Second
	// shutdownTimeout limits how long in-flight requests may run during
	// graceful shutdown.
	shutdownTimeout = 5 * time.Second
)

// The upstream URL carries a double slash and the real service requires it
// verbatim, so the mock accepts both spellings.
const (
	queryPath      = "/QueryCourse/api//courses"
	queryPathClean = "/QueryCourse/api/courses"
	healthPath     = "/healthz"
)

// Config defines the inputs for the mock course service. The semester env
// variable is shared with the watcher, so one export covers both commands.
type Config struct {
	Addr          string        `env:"COURSEWATCH_ADDR"`
	Semester      string        `env:"COURSEWATCH_SEMESTER"`
	Upstream      string        `env:"COURSEWATCH_UPSTREAM"`
	SimulateEvery time.Duration `env:"COURSEWATCH_SIMULATE_EVERY"`
	Seed          int64         `env:"COURSEWATCH_SEED"` // 0 seeds from the clock
}

// Server hosts the mock QueryCourse API over a simulated catalog.
type Server struct {
	addr       string
	semester   string
	repo       *Repository
	client     *querycourse.Client
	httpServer *http.Server
	simEvery   time.Duration
	rng        *rand.Rand
}

// NewServer creates a server for the given configuration. Zero config
// fields fall back to defaults; Semester must be set.
func NewServer(config Config) (*Server, error) {
	if config.Semester == "" {
		return nil, errors.New("semester is required")
	}
	if config.Addr == "" {
		config.Addr = DefaultAddr
	}
	if config.Upstream == "" {
		config.Upstream = querycourse.DefaultURL
	}
	if config.SimulateEvery <= 0 {
		config.SimulateEvery = DefaultSimulateEvery
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	s := &Server{
		addr:     config.Addr,
		semester: config.Semester,
		repo:     NewRepository(),
		client:   querycourse.NewClient(config.Upstream),
		simEvery: config.SimulateEvery,
		rng:      rand.New(rand.NewSource(config.Seed)),
	}
	s.httpServer = &http.Server{
		Addr:              config.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s, nil
}

// Run loads the catalog, starts the enrollment simulation and serves HTTP
// until the context ends. A failed initial load is fatal; there is nothing
// to serve without it.
func (s *Server) Run(ctx context.Context) error {
	log.Printf("loading semester %s from %s", s.semester, s.client.URL())
	if err := s.repo.Load(ctx, s.client, s.semester); err != nil {
		return err
	}
	log.Printf("repository loaded: %d courses", s.repo.Count())

	go s.simulate(ctx)

	serveErr := make(chan error, 1)
	log.Printf("course service listening on %s", s.addr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		s.repo.Clear()
		if err != nil {
			return fmt.Errorf("shutdown course service: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve courses: %w", err)
	}
}

// simulate advances the enrollment simulation until the context ends.
func (s *Server) simulate(ctx context.Context) {
	ticker := time.NewTicker(s.simEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.repo.SimulateBatch(s.rng)
		}
	}
}

// routes dispatches on the raw request path. A ServeMux would collapse the
// double slash in the query path and redirect, which the watcher's client
// does not follow for POSTs.
func (s *Server) routes() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case queryPath, queryPathClean:
			s.handleQuery(w, r)
		case "/":
			s.handleRoot(w, r)
		case healthPath:
			s.handleHealth(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var query querycourse.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		writeError(w, http.StatusBadRequest, "malformed query")
		return
	}

	courses, err := s.repo.Search(query)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "data not initialized")
		return
	}

	log.Printf("query semester=%q no=%q name=%q teacher=%q dim=%q -> %d courses",
		query.Semester, query.CourseNo, query.CourseName, query.CourseTeacher, query.Dimension, len(courses))
	writeJSON(w, http.StatusOK, courses)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Course Query API (In-Memory) is running",
	})
}

// healthResponse reports readiness plus enough simulation state to see that
// the catalog is actually churning.
type healthResponse struct {
	Status       string `json:"status"`
	CoursesCount int    `json:"courses_count"`
	UpdateCursor int    `json:"update_cursor"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:       "healthy",
		CoursesCount: s.repo.Count(),
		UpdateCursor: s.repo.Cursor(),
	})
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	_ = encoder.Encode(payload)
}

// Package server exposes jump point search over HTTP.
//
// Routes:
//
//	GET  /healthz               liveness probe
//	GET  /maps                  loaded maps and their sizes
//	GET  /maps/:name            one map, rows drawn with map glyphs
//	POST /maps/:name/path       search; body {"from":[x,y],"to":[x,y],"classes":[...],"heuristic":"..."}
//	GET  /metrics               Prometheus metrics
//
// A grid holds the state of the search running on it, so searches on one map
// are serialized by a per-map mutex. Searches on different maps run in
// parallel and share one memory budget.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/jumppoint/grid"
	"github.com/katalvlaran/jumppoint/jps"
	"github.com/katalvlaran/jumppoint/mapfile"
	"github.com/katalvlaran/jumppoint/memory"
)

var (
	// ErrNilGrid indicates that AddMap received a nil grid.
	ErrNilGrid = errors.New("server: grid is nil")
	// ErrBadName indicates an empty map name or one containing '/'.
	ErrBadName = errors.New("server: invalid map name")
)

// mapExtensions lists the file suffixes LoadDir picks up.
var mapExtensions = []string{".map", ".map.zst", ".map.lz4", ".map.br"}

// Config configures a Server.
//
// Addr              – listen address for Run (default ":8080").
// RequestsPerSecond – process-wide request rate; 0 disables limiting.
// Burst             – limiter burst (default 1 when limiting).
// MemoryLimit       – bytes all concurrent searches may reserve; 0 is unlimited.
// ShutdownTimeout   – grace period for in-flight requests (default 5s).
// Logger            – structured logger (default no-op).
type Config struct {
	Addr              string
	RequestsPerSecond float64
	Burst             int
	MemoryLimit       int64
	ShutdownTimeout   time.Duration
	Logger            *jps.Logger
}

// DefaultConfig returns the defaults listed on Config.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ShutdownTimeout: 5 * time.Second,
		Logger:          jps.NoopLogger(),
	}
}

// Server serves path queries over a set of named maps.
type Server struct {
	cfg      Config
	router   *gin.Engine
	registry *prometheus.Registry
	metrics  *metrics
	limiter  *rate.Limiter // nil if unlimited
	budget   *memory.Budget

	mu   sync.RWMutex
	maps map[string]*entry
}

// entry is one loaded map. mu serializes searches on g.
type entry struct {
	name   string
	mu     sync.Mutex
	g      *grid.Grid
	labels map[grid.Mask]*grid.Labels // per-mask components, built on first use
}

// New builds a Server with its router and metrics. No map is loaded.
func New(cfg Config) *Server {
	def := DefaultConfig()
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = def.ShutdownTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}

	s := &Server{
		cfg:      cfg,
		registry: prometheus.NewRegistry(),
		budget:   memory.NewBudget(cfg.MemoryLimit),
		maps:     make(map[string]*entry),
	}
	if cfg.RequestsPerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), max(cfg.Burst, 1))
	}
	s.metrics = newMetrics(s.registry)
	s.router = s.routes()

	return s
}

// Handler returns the HTTP handler, for tests or custom servers.
func (s *Server) Handler() http.Handler {
	return s.router
}

// AddMap registers g under name, replacing any map of that name.
// The server owns g from now on; callers must not search it directly.
func (s *Server) AddMap(name string, g *grid.Grid) error {
	if name == "" || strings.ContainsRune(name, '/') {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	if g == nil {
		return ErrNilGrid
	}

	s.mu.Lock()
	s.maps[name] = &entry{name: name, g: g, labels: make(map[grid.Mask]*grid.Labels)}
	s.mu.Unlock()
	s.cfg.Logger.Info("map registered", "map", name, "width", g.Width, "height", g.Height)

	return nil
}

// LoadDir loads every map file of dir (plain or compressed). The map name is
// the file name without its map suffix. Returns the number of maps loaded.
func (s *Server) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		name, ok := mapName(de.Name())
		if !ok {
			continue
		}
		g, err := mapfile.LoadMap(filepath.Join(dir, de.Name()))
		if err != nil {
			return n, err
		}
		if err := s.AddMap(name, g); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func mapName(file string) (string, bool) {
	for _, ext := range mapExtensions {
		if strings.HasSuffix(file, ext) && len(file) > len(ext) {
			return strings.TrimSuffix(file, ext), true
		}
	}
	return "", false
}

// Maps returns the registered map names, sorted.
func (s *Server) Maps() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.maps))
	for name := range s.maps {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (s *Server) lookup(name string) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.maps[name]
	return e, ok
}

// Run serves on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.cfg.Logger.Info("server listening", "addr", s.cfg.Addr, "maps", len(s.Maps()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.cfg.Logger.Info("server shutting down")

	return srv.Shutdown(shutdownCtx)
}

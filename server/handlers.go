package server

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/jumppoint/grid"
	"github.com/katalvlaran/jumppoint/heuristic"
	"github.com/katalvlaran/jumppoint/jps"
	"github.com/katalvlaran/jumppoint/mapfile"
)

// PathRequest is the body of POST /maps/:name/path.
type PathRequest struct {
	From      [2]int   `json:"from"`
	To        [2]int   `json:"to"`
	Classes   []string `json:"classes,omitempty"`
	Heuristic string   `json:"heuristic,omitempty"`
}

// PathResponse is the answer to a path request.
type PathResponse struct {
	Status   string   `json:"status"`
	Path     [][2]int `json:"path"`
	Cost     float64  `json:"cost"`
	Expanded int      `json:"expanded"`
	Jumps    int      `json:"jumps"`
}

// MapInfo describes one loaded map.
type MapInfo struct {
	Name   string   `json:"name"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows,omitempty"`
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	api := r.Group("/maps", s.rateLimit())
	api.GET("", s.handleListMaps)
	api.GET("/:name", s.handleGetMap)
	api.POST("/:name/path", s.handleFindPath)

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleListMaps(c *gin.Context) {
	names := s.Maps()
	out := make([]MapInfo, 0, len(names))
	for _, name := range names {
		if e, ok := s.lookup(name); ok {
			out = append(out, MapInfo{Name: name, Width: e.g.Width, Height: e.g.Height})
		}
	}
	c.JSON(http.StatusOK, gin.H{"maps": out})
}

func (s *Server) handleGetMap(c *gin.Context) {
	e, ok := s.lookup(c.Param("name"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown map"})
		return
	}

	var buf bytes.Buffer
	if err := mapfile.Draw(&buf, e.g, nil); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	rows := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	c.JSON(http.StatusOK, MapInfo{Name: e.name, Width: e.g.Width, Height: e.g.Height, Rows: rows})
}

func (s *Server) handleFindPath(c *gin.Context) {
	e, ok := s.lookup(c.Param("name"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown map"})
		return
	}

	var req PathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	mask, err := mapfile.ClassMask(req.Classes...)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	opts := []jps.Option{jps.WithAllocator(s.budget), jps.WithLogger(s.cfg.Logger)}
	if req.Heuristic != "" {
		h, err := heuristic.ByName(req.Heuristic)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		opts = append(opts, jps.WithHeuristic(h))
	}

	res, took, err := e.search(req.From, req.To, mask, opts...)
	if errors.Is(err, errOutOfBounds) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.metrics.searches.WithLabelValues(res.Status.String()).Inc()
	s.metrics.duration.Observe(took.Seconds())
	s.metrics.expanded.Observe(float64(res.Expanded))

	body := PathResponse{
		Status:   res.Status.String(),
		Path:     res.Points(),
		Cost:     res.Cost,
		Expanded: res.Expanded,
		Jumps:    res.Jumps,
	}
	switch res.Status {
	case jps.StatusOK, jps.StatusTrivial, jps.StatusBlocked:
		c.JSON(http.StatusOK, body)
	case jps.StatusBadAlloc, jps.StatusBadRealloc:
		c.JSON(http.StatusServiceUnavailable, body)
	default:
		c.JSON(http.StatusBadRequest, body)
	}
}

var errOutOfBounds = errors.New("server: endpoint out of bounds")

// search runs one query on the map while holding its lock.
func (e *entry) search(from, to [2]int, mask grid.Mask, opts ...jps.Option) (jps.Result, time.Duration, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start, finish := e.g.Node(from[0], from[1]), e.g.Node(to[0], to[1])
	if start == nil || finish == nil {
		return jps.Result{Status: jps.StatusInvalid}, 0, errOutOfBounds
	}
	labels, ok := e.labels[mask]
	if !ok {
		labels = e.g.Label(mask)
		e.labels[mask] = labels
	}

	t0 := time.Now()
	res, err := jps.FindPath(e.g, start, finish, mask, append(opts, jps.WithLabels(labels))...)
	return res, time.Since(t0), err
}

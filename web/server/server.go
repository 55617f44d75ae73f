package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/golang/glog"
	"golang.org/x/xerrors"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Parameter limits shared by the render and inspect endpoints
const (
	minSize  = 1
	maxSize  = 2000
	minScale = 1
	maxScale = 8
)

// Server handles web requests for the raytracer
type Server struct {
	port     int
	registry *scene.Registry
}

// NewServer creates a new web server resolving scenes through registry
func NewServer(port int, registry *scene.Registry) *Server {
	return &Server{port: port, registry: registry}
}

// Register adds the API endpoints to m
func (s *Server) Register(m *http.ServeMux) {
	m.HandleFunc("/api/health", s.handleHealth)
	m.HandleFunc("/api/scenes", s.handleScenes)
	m.HandleFunc("/api/render", s.handleRender)
	m.HandleFunc("/api/inspect", s.handleInspect)
}

// Handler returns a mux serving the API
func (s *Server) Handler() http.Handler {
	m := http.NewServeMux()
	s.Register(m)
	return m
}

// Start starts the web server and blocks until it fails
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),

		ReadTimeout:    30 * time.Second,
		WriteTimeout:   5 * time.Minute,
		MaxHeaderBytes: 1 << 20,
	}
	glog.Infof("Starting web server on http://localhost%s", srv.Addr)
	return srv.ListenAndServe()
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and file scenes grouped for display
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := s.registry.List()
	if err != nil {
		glog.Errorf("Listing scenes: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list scenes")
		return
	}
	writeJSON(w, http.StatusOK, scene.Groups(scenes))
}

// loadScene resolves a scene name and applies the requested size. Only
// built-in and registry scenes resolve, and the final size must be within limits.
// It writes the error response itself and returns nil on failure.
func (s *Server) loadScene(w http.ResponseWriter, name string, width, height int) *scene.Scene {
	sceneObj, err := s.registry.Load(name, geometry.NewIDAllocator())
	if errors.Is(err, scene.ErrUnknownScene) {
		writeError(w, http.StatusNotFound, "unknown scene: "+name)
		return nil
	}
	if err != nil {
		glog.Errorf("Loading scene %q: %v", name, err)
		writeError(w, http.StatusInternalServerError, "failed to load scene: "+name)
		return nil
	}

	sw, sh := sceneObj.GetSize()
	if width > 0 {
		sw = width
	}
	if height > 0 {
		sh = height
	}
	if sw < minSize || sw > maxSize || sh < minSize || sh > maxSize {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("scene size %dx%d outside %d..%d", sw, sh, minSize, maxSize))
		return nil
	}
	sceneObj.SetSize(sw, sh)
	return sceneObj
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, xerrors.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, xerrors.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		glog.Warningf("Writing JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

package server

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/golang/glog"
	"golang.org/x/xerrors"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string // Scene name (e.g., "world")
	Width  int    // Image width, 0 keeps the scene's own
	Height int    // Image height, 0 keeps the scene's own
	Format string // "png" or "ppm"
	Scale  int    // Integer upscale factor, png only
}

// parseRenderRequest parses request parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{
		Scene:  query.Get("scene"),
		Format: query.Get("format"),
	}
	if req.Scene == "" {
		req.Scene = "default"
	}
	if req.Format == "" {
		req.Format = "png"
	}
	if req.Format != "png" && req.Format != "ppm" {
		return nil, xerrors.Errorf("format must be png or ppm, got: %s", req.Format)
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minSize, maxSize); err != nil {
		return nil, err
	}
	if req.Scale, err = parseIntParam(query, "scale", 1, minScale, maxScale); err != nil {
		return nil, err
	}
	if req.Scale > 1 && req.Format != "png" {
		return nil, xerrors.Errorf("scale applies to png output only")
	}
	return req, nil
}

// handleRender renders a scene and returns the encoded image. Render
// statistics are reported in X-Render-* headers.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	sceneObj := s.loadScene(w, req.Scene, req.Width, req.Height)
	if sceneObj == nil {
		return
	}

	logger := NewWebLogger(req.Scene)
	config := renderer.DefaultConfig()
	config.LogRows = bool(glog.V(3))

	// Use request context to detect client disconnection
	canvas, stats, err := renderer.NewRaytracer(sceneObj, config, logger).Render(r.Context())
	if err != nil {
		logger.Printf("Render aborted: %v", err)
		writeError(w, http.StatusServiceUnavailable, "render aborted")
		return
	}

	var buf bytes.Buffer
	contentType := "image/png"
	if req.Format == "ppm" {
		contentType = "image/x-portable-pixmap"
		err = renderer.WritePPM(&buf, canvas)
	} else {
		err = renderer.WritePNG(&buf, canvas, req.Scale)
	}
	if err != nil {
		logger.Printf("Encoding failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to encode image")
		return
	}

	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("X-Render-Width", strconv.Itoa(stats.Width))
	h.Set("X-Render-Height", strconv.Itoa(stats.Height))
	h.Set("X-Render-Hit-Pixels", strconv.Itoa(stats.HitPixels))
	h.Set("X-Render-Elapsed-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Printf("Writing response: %v", err)
	}
}

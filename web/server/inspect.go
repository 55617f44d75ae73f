package server

import (
	"net/http"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit           bool                   `json:"hit"`
	GeometryType  string                 `json:"geometryType,omitempty"`
	ObjectID      int                    `json:"objectId,omitempty"`
	Point         [3]float64             `json:"point"`
	Normal        [3]float64             `json:"normal"`
	Distance      float64                `json:"distance"`
	FrontFace     bool                   `json:"frontFace"`
	Color         [3]float64             `json:"color"`
	Intersections []float64              `json:"intersections"`
	Material      map[string]interface{} `json:"material,omitempty"`
}

// inspectPixel casts the primary ray for a pixel and describes the first object hit
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResponse {
	ray := sceneObj.RayForPixel(pixelX, pixelY)
	xs := sceneObj.World.Intersect(ray)

	response := InspectResponse{Intersections: xs.Ts()}
	hit, ok := xs.Hit()
	if !ok {
		return response
	}

	point := ray.Position(hit.T)
	normal := hit.Object.NormalAt(point)
	col := sceneObj.ColorAt(ray)

	response.Hit = true
	response.GeometryType = hit.Object.Kind().String()
	response.ObjectID = hit.Object.ID()
	response.Point = tupleArray(point)
	response.Normal = tupleArray(normal)
	response.Distance = hit.T
	response.FrontFace = normal.Dot(ray.Direction) < 0
	response.Color = [3]float64{col.R, col.G, col.B}
	response.Material = materialInfo(hit.Object.GetMaterial())
	return response
}

func materialInfo(m material.Material) map[string]interface{} {
	return map[string]interface{}{
		"color":     [3]float64{m.Color.R, m.Color.G, m.Color.B},
		"ambient":   m.Ambient,
		"diffuse":   m.Diffuse,
		"specular":  m.Specular,
		"shininess": m.Shininess,
	}
}

func tupleArray(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name := query.Get("scene")
	if name == "" {
		name = "default"
	}

	width, err := parseIntParam(query, "width", 0, minSize, maxSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	height, err := parseIntParam(query, "height", 0, minSize, maxSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	sceneObj := s.loadScene(w, name, width, height)
	if sceneObj == nil {
		return
	}
	sw, sh := sceneObj.GetSize()

	// Pixel coordinates are required and must lie inside the image
	if query.Get("x") == "" || query.Get("y") == "" {
		writeError(w, http.StatusBadRequest, "x and y are required")
		return
	}
	pixelX, err := parseIntParam(query, "x", 0, 0, sw-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	pixelY, err := parseIntParam(query, "y", 0, 0, sh-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, pixelX, pixelY))
}

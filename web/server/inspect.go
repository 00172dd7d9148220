package server

import (
	"net/http"
	"strconv"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/material"
	"github.com/df07/go-smallpt/pkg/renderer"
	"github.com/df07/go-smallpt/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit            bool                   `json:"hit"`
	PrimitiveIndex int                    `json:"primitiveIndex"`
	MaterialType   string                 `json:"materialType"`
	GeometryType   string                 `json:"geometryType"`
	Point          [3]float64             `json:"point"`
	Normal         [3]float64             `json:"normal"`
	Distance       float64                `json:"distance"`
	Properties     map[string]interface{} `json:"properties"`
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X(), v.Y(), v.Z()}
}

// extractMaterialInfo describes how a material is shaded in sc
func extractMaterialInfo(sc *scene.Scene, idx int) (string, map[string]interface{}) {
	m := sc.Material(idx)
	properties := map[string]interface{}{
		"diffuse":  vecArray(m.Diffuse),
		"specular": vecArray(m.Specular),
		"emission": vecArray(m.Emission),
	}

	if sc.HasEmission(idx) {
		return "emissive", properties
	}
	switch sc.BxDF(idx).(type) {
	case *material.Lambertian:
		return "lambertian", properties
	case *material.IdealSpecular:
		return "mirror", properties
	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		properties["inward"] = geom.Inward
		return "sphere", properties

	case *geometry.Plane:
		properties["corner"] = vecArray(geom.Corner)
		properties["right"] = vecArray(geom.Right)
		properties["up"] = vecArray(geom.Up)
		properties["normal"] = vecArray(geom.Normal)
		return "plane", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts a ray through the center of a pixel and returns the first hit
func inspectPixel(setup *scene.Setup, width, height, pixelX, pixelY int) (*geometry.GlobalHit, bool) {
	u, v := renderer.SensorCoords(float64(pixelX)+0.5, float64(pixelY)+0.5, width, height)
	return setup.Scene.Hit(setup.Camera.GetRay(u, v))
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sceneID := query.Get("scene")
	if sceneID == "" {
		sceneID = "cornell"
	}
	setup, err := scene.Create(sceneID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	width, err := parseIntParam(query, "width", setup.Width, 1, 10000)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := parseIntParam(query, "height", setup.Height, 1, 10000)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pixelX, err := strconv.Atoi(query.Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(query.Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= width || pixelY < 0 || pixelY >= height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	hit, isHit := inspectPixel(setup, width, height, pixelX, pixelY)
	if !isHit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, PrimitiveIndex: -1})
		return
	}

	materialType, materialProps := extractMaterialInfo(setup.Scene, hit.PrimIndex)
	geometryType, geometryProps := extractGeometryInfo(setup.Scene.Shape(hit.PrimIndex))

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:            true,
		PrimitiveIndex: hit.PrimIndex,
		MaterialType:   materialType,
		GeometryType:   geometryType,
		Point:          vecArray(hit.Point),
		Normal:         vecArray(hit.Normal),
		Distance:       hit.T,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}

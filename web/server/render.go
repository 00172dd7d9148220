package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/df07/go-smallpt/pkg/integrator"
	"github.com/df07/go-smallpt/pkg/renderer"
	"github.com/df07/go-smallpt/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene        string `json:"scene"`        // Built-in scene id
	Width        int    `json:"width"`        // Image width
	Height       int    `json:"height"`       // Image height
	SamplesPass  int    `json:"samplesPass"`  // Samples per pixel rendered in each pass
	MaxPasses    int    `json:"maxPasses"`    // Number of passes to average
	MaxDepth     int    `json:"maxDepth"`     // Maximum bounces per path
	RRMinBounces int    `json:"rrMinBounces"` // Bounces before Russian roulette
	Seed         uint64 `json:"seed"`         // Seed of the first pass
	Integrator   string `json:"integrator"`   // "path" or "normal"
}

// ProgressUpdate represents a single progressive update sent via SSE
type ProgressUpdate struct {
	PassNumber  int    `json:"passNumber"`
	TotalPasses int    `json:"totalPasses"`
	ImageData   string `json:"imageData"` // Base64 encoded PNG
	Stats       Stats  `json:"stats"`
	IsComplete  bool   `json:"isComplete"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// Stats represents cumulative render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	Escaped        int     `json:"escaped"`
	Absorbed       int     `json:"absorbed"`
	HitLight       int     `json:"hitLight"`
	Truncated      int     `json:"truncated"`
	AverageBounces float64 `json:"averageBounces"`
}

func newStats(rs renderer.RenderStats, pixels int) Stats {
	return Stats{
		TotalPixels:    pixels,
		TotalSamples:   rs.TotalSamples,
		AverageSamples: float64(rs.TotalSamples) / float64(pixels),
		Escaped:        rs.Terminations[integrator.Escaped],
		Absorbed:       rs.Terminations[integrator.Absorbed],
		HitLight:       rs.Terminations[integrator.HitLight],
		Truncated:      rs.Terminations[integrator.Truncated],
		AverageBounces: rs.AverageBounces(),
	}
}

// handleRender renders a scene progressively: every pass is an independent frame with
// its own seed, and the running mean of the passes is streamed as SSE events.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	setup, err := scene.Create(req.Scene)
	if err != nil {
		s.sendSSEError(w, err.Error())
		return
	}

	var integ integrator.Integrator
	switch req.Integrator {
	case "path":
		integ = integrator.NewPathTracingIntegrator(integrator.Config{
			MaxDepth:                  req.MaxDepth,
			RussianRouletteMinBounces: req.RRMinBounces,
		})
	case "normal":
		integ = integrator.NewNormalIntegrator()
	default:
		s.sendSSEError(w, "Unknown integrator: "+req.Integrator)
		return
	}

	// Use request context to detect client disconnection
	ctx := r.Context()
	startTime := time.Now()
	accum := renderer.NewImage(req.Width, req.Height)
	var total renderer.RenderStats

	logger.Infof("web render %s %dx%d, %d passes of %d spp", req.Scene, req.Width, req.Height, req.MaxPasses, req.SamplesPass)
	for pass := 1; pass <= req.MaxPasses; pass++ {
		rend, err := renderer.New(setup.Scene, setup.Camera, integ, renderer.Options{
			Width:           req.Width,
			Height:          req.Height,
			SamplesPerPixel: req.SamplesPass,
			Seed:            req.Seed + uint64(pass-1),
		})
		if err != nil {
			s.sendSSEError(w, err.Error())
			return
		}

		frame, stats, err := rend.Render(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Infof("web render cancelled before pass %d completed", pass)
				return
			}
			s.sendSSEError(w, fmt.Sprintf("Render error: %v", err))
			return
		}
		accum.Accumulate(frame, pass-1)
		total.Merge(stats)

		imageData, err := imageToBase64PNG(accum)
		if err != nil {
			s.sendSSEError(w, fmt.Sprintf("failed to encode image: %v", err))
			return
		}

		update := ProgressUpdate{
			PassNumber:  pass,
			TotalPasses: req.MaxPasses,
			ImageData:   imageData,
			Stats:       newStats(total, req.Width*req.Height),
			IsComplete:  pass == req.MaxPasses,
			ElapsedMs:   time.Since(startTime).Milliseconds(),
		}
		if err := s.sendSSEUpdate(w, update); err != nil {
			logger.Warningf("failed to send pass %d: %v", pass, err)
			return
		}
	}

	s.sendSSEEvent(w, "complete", "Rendering completed")
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{
		Scene:      query.Get("scene"),
		Integrator: query.Get("integrator"),
	}
	if req.Scene == "" {
		req.Scene = "cornell"
	}
	if req.Integrator == "" {
		req.Integrator = "path"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 8, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 400, 8, 2000); err != nil {
		return nil, err
	}
	if req.SamplesPass, err = parseIntParam(query, "samplesPass", 4, 1, 1000); err != nil {
		return nil, err
	}
	if req.MaxPasses, err = parseIntParam(query, "maxPasses", 8, 1, 1000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", 50, 0, 1000); err != nil {
		return nil, err
	}
	if req.RRMinBounces, err = parseIntParam(query, "rrMinBounces", 0, 0, 1000); err != nil {
		return nil, err
	}
	if req.Seed, err = parseUintParam(query, "seed", 0); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.SamplesPass*req.MaxPasses > 100 {
		logger.Warning("large image with high sample count may render slowly")
	}

	return req, nil
}

func imageToBase64PNG(img *renderer.Image) (string, error) {
	var buf bytes.Buffer
	if err := img.WritePNG(&buf, renderer.DefaultGamma); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (s *Server) sendSSEUpdate(w http.ResponseWriter, update ProgressUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, "progress", string(data))
}

func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	return s.sendSSEEvent(w, "error", message)
}

func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	return nil
}

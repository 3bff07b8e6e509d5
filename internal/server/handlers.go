package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rasterlab/geotool/internal/clip"
	"github.com/rasterlab/geotool/internal/convert"
	"github.com/rasterlab/geotool/internal/info"
	"github.com/rasterlab/geotool/internal/raster"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Time    string `json:"time"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// clipRequest is the POST /api/v1/clip body.
type clipRequest struct {
	InputPath  string        `json:"input_path"`
	OutputPath string        `json:"output_path"`
	Window     raster.Window `json:"window"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: s.version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "missing required query parameter: path")
		return
	}

	report, err := info.Analyze(path)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	path := q.Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "missing required query parameter: path")
		return
	}

	opts := convert.DefaultOptions()
	var err error
	if opts.Stretch.TruncatedValue, err = floatParam(q.Get("truncate"), opts.Stretch.TruncatedValue); err != nil {
		writeError(w, http.StatusBadRequest, "invalid truncate: "+err.Error())
		return
	}
	if opts.Stretch.MinOut, err = intParam(q.Get("min_out"), opts.Stretch.MinOut); err != nil {
		writeError(w, http.StatusBadRequest, "invalid min_out: "+err.Error())
		return
	}
	if opts.Stretch.MaxOut, err = intParam(q.Get("max_out"), opts.Stretch.MaxOut); err != nil {
		writeError(w, http.StatusBadRequest, "invalid max_out: "+err.Error())
		return
	}
	if opts.Downsample, err = intParam(q.Get("downsample"), opts.Downsample); err != nil {
		writeError(w, http.StatusBadRequest, "invalid downsample: "+err.Error())
		return
	}
	if opts.BlurSigma, err = floatParam(q.Get("blur_sigma"), opts.BlurSigma); err != nil {
		writeError(w, http.StatusBadRequest, "invalid blur_sigma: "+err.Error())
		return
	}
	opts.Colormap = q.Get("colormap")

	// Render to a temp file so a failed conversion never produces a
	// half-written HTTP body.
	tmp, err := os.CreateTemp("", "geotool-*.png")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to allocate temp file: "+err.Error())
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	os.Remove(tmpPath)
	defer os.Remove(tmpPath)

	if _, err := convert.TIFFToPNG(path, tmpPath, opts); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	f, err := os.Open(tmpPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read rendering: "+err.Error())
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `inline; filename="`+pngName(path)+`"`)
	http.ServeContent(w, r, "", time.Time{}, f)
}

func (s *Server) handleClip(w http.ResponseWriter, r *http.Request) {
	var req clipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.InputPath == "" || req.OutputPath == "" {
		writeError(w, http.StatusBadRequest, "input_path and output_path are required")
		return
	}

	res, err := clip.File(req.InputPath, req.OutputPath, req.Window)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// statusFor maps operation errors to HTTP status codes: caller mistakes
// (bad windows, unsupported sample types, bad parameters) get 400,
// unreadable inputs get 404, everything else 500.
func statusFor(err error) int {
	var be *raster.BoundsError
	var ute *raster.UnsupportedTypeError
	switch {
	case errors.As(err, &be), errors.As(err, &ute):
		return http.StatusBadRequest
	case errors.Is(err, os.ErrNotExist), strings.Contains(err.Error(), "failed to open"):
		return http.StatusNotFound
	case strings.Contains(err.Error(), "out of range"),
		strings.Contains(err.Error(), "invalid"),
		strings.Contains(err.Error(), "unknown colormap"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func intParam(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func floatParam(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}

func pngName(srcPath string) string {
	base := filepath.Base(srcPath)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".png"
}

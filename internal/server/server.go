// Package server exposes the converter over HTTP.
package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/gogpu/vectorize"
	"github.com/gogpu/vectorize/internal/cache"
	"github.com/gogpu/vectorize/internal/config"
	"github.com/gogpu/vectorize/internal/filter"
	imgio "github.com/gogpu/vectorize/internal/image"
	"github.com/gogpu/vectorize/internal/logging"
	"github.com/gogpu/vectorize/internal/metrics"
)

// Response headers.
const (
	ConversionIDHeader = "X-Conversion-ID"
	CacheHeader        = "X-Cache" // "hit" or "miss"
)

// Server handles conversion requests.
type Server struct {
	cfg     config.Config
	metrics *metrics.Metrics
	logger  *slog.Logger
	results *cache.Cache[cache.Key, []byte]
}

// New creates a Server. A nil logger discards output.
func New(cfg config.Config, m *metrics.Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	if m == nil {
		m = metrics.New()
	}
	return &Server{
		cfg:     cfg,
		metrics: m,
		logger:  logger,
		results: cache.New[cache.Key, []byte](cfg.Server.CacheEntries),
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	r.Post("/v1/convert", s.convert)
	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func (s *Server) convert(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	log := s.logger.With(
		"conversion_id", id,
		"request_id", middleware.GetReqID(r.Context()),
	)
	w.Header().Set(ConversionIDHeader, id)

	tolerance := s.cfg.Tolerance
	if q := r.URL.Query().Get("tolerance"); q != "" {
		v, err := strconv.ParseFloat(q, 64)
		if err != nil || math.IsNaN(v) || v < 0 {
			http.Error(w, fmt.Sprintf("invalid tolerance %q", q), http.StatusBadRequest)
			return
		}
		tolerance = v
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, fmt.Sprintf("image exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	key := cache.NewKey(data, tolerance, s.cfg.MinPoints, s.cfg.Preprocess.Blur, s.cfg.Preprocess.Threshold)
	if s.cfg.Server.CacheEntries > 0 {
		out, ok := s.results.Get(key)
		s.metrics.ObserveCache(ok)
		if ok {
			log.Info("served from cache", "bytes", len(data))
			writeSVG(w, out, "hit")
			return
		}
	}

	img, format, err := imgio.DecodeBytes(data)
	if err != nil {
		log.Warn("decode failed", "error", err)
		switch {
		case errors.Is(err, imgio.ErrUnsupportedFormat):
			http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	conv := vectorize.NewConverter(
		vectorize.WithTolerance(tolerance),
		vectorize.WithMinPoints(s.cfg.MinPoints),
		vectorize.WithPreprocessor(filter.Pipeline(s.cfg.Preprocess.Blur, uint8(s.cfg.Preprocess.Threshold))),
		vectorize.WithLogger(log),
	)
	start := time.Now()
	doc, err := conv.ConvertImage(img)
	s.metrics.Observe(doc, time.Since(start), err)
	if err != nil {
		log.Error("conversion failed", "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	out, err := doc.SVG()
	if err != nil {
		log.Error("render failed", "error", err)
		http.Error(w, "failed to render SVG", http.StatusInternalServerError)
		return
	}

	s.results.Set(key, out)
	log.Info("converted", "format", format, "paths", len(doc.Paths), "bytes", len(data))
	writeSVG(w, out, "miss")
}

func writeSVG(w http.ResponseWriter, svg []byte, cacheResult string) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set(CacheHeader, cacheResult)
	_, _ = w.Write(svg)
}

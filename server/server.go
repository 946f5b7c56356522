// Package server exposes the recommendation pipeline over HTTP for the
// presentation layer. The canonical table is loaded once at startup and only
// read afterwards, so handlers share it without locking.
package server

import (
	"bytes"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"

	"github.com/sourcelens-org/sourcelens/dataset"
	"github.com/sourcelens-org/sourcelens/engine"
	"github.com/sourcelens-org/sourcelens/export"
	"github.com/sourcelens-org/sourcelens/fallback"
)

const exportFilename = "hasil_rekomendasi_supplier.csv"

// Server serves recommendation queries over the canonical table.
type Server struct {
	table   *dataset.Table
	log     *slog.Logger
	metrics *Metrics
	app     *fiber.App
}

// queryResponse statuses.
const (
	statusOK       = "ok"       // exact matches found
	statusFallback = "fallback" // only relaxed-criteria alternatives
	statusEmpty    = "empty"    // nothing, even relaxed
)

type queryResponse struct {
	Status  string         `json:"status"`
	Result  *engine.Result `json:"result,omitempty"`
	Charts  *chartSet      `json:"charts,omitempty"`
	Message string         `json:"message,omitempty"`
}

type chartSet struct {
	Quantity *engine.ChartConfig `json:"quantity,omitempty"`
	Defect   *engine.ChartConfig `json:"defect,omitempty"`
}

// New builds a server over a prepared table.
func New(table *dataset.Table, log *slog.Logger) *Server {
	s := &Server{
		table:   table,
		log:     log,
		metrics: NewMetrics(),
		app:     fiber.New(),
	}
	s.metrics.DatasetRows.Set(float64(table.Len()))
	s.register()
	return s
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen blocks serving HTTP on addr.
func (s *Server) Listen(addr string) error {
	s.log.Info("listening", "addr", addr, "rows", s.table.Len())
	return s.app.Listen(addr)
}

func (s *Server) register() {
	s.app.Get("/healthz", s.health)
	s.app.Get("/metrics", adaptor.HTTPHandler(s.metrics.Handler()))

	api := s.app.Group("/api")
	api.Get("/categories", s.categories)
	api.Post("/recommendations", s.recommend)
	api.Post("/recommendations/export", s.exportCSV)
}

func (s *Server) health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "rows": s.table.Len()})
}

func (s *Server) categories(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": s.table.Categories()})
}

func (s *Server) recommend(c fiber.Ctx) error {
	criteria, err := s.bindCriteria(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(s.query(criteria))
}

// exportCSV runs the same pipeline and streams the result table as a CSV
// download.
func (s *Server) exportCSV(c fiber.Ctx) error {
	criteria, err := s.bindCriteria(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resp := s.query(criteria)
	if resp.Status == statusEmpty {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": resp.Message})
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, resp.Result); err != nil {
		s.log.Error("csv export failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "export failed"})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+exportFilename+`"`)
	return c.Send(buf.Bytes())
}

func (s *Server) bindCriteria(c fiber.Ctx) (engine.Criteria, error) {
	var criteria engine.Criteria
	if err := c.Bind().Body(&criteria); err != nil {
		return engine.Criteria{}, err
	}
	if err := criteria.Validate(); err != nil {
		return engine.Criteria{}, err
	}
	return criteria, nil
}

// query runs recommend-then-fallback and records metrics.
func (s *Server) query(criteria engine.Criteria) queryResponse {
	start := time.Now()
	s.metrics.Queries.Inc()
	defer func() {
		s.metrics.Duration.Observe(time.Since(start).Seconds())
	}()

	res := engine.Recommend(s.table, criteria)
	if !res.Empty() {
		s.log.Info("recommendation served",
			"category", criteria.ItemCategory, "groups", len(res.Rows))
		return queryResponse{
			Status: statusOK,
			Result: res,
			Charts: &chartSet{
				Quantity: engine.BuildQuantityChart(res),
				Defect:   engine.BuildDefectChart(res),
			},
		}
	}

	advice, ok := fallback.Advise(s.table, criteria)
	if !ok {
		s.metrics.EmptyResults.Inc()
		s.log.Info("no suppliers matched", "category", criteria.ItemCategory)
		return queryResponse{
			Status:  statusEmpty,
			Message: "Tidak ada supplier yang memenuhi semua kriteria dan tidak ada alternatif yang cukup mendekati.",
		}
	}

	s.metrics.Fallbacks.Inc()
	s.log.Info("fallback recommendation served",
		"category", criteria.ItemCategory, "groups", len(advice.Result.Rows))
	return queryResponse{
		Status:  statusFallback,
		Result:  advice.Result,
		Message: "Tidak ada supplier yang memenuhi semua kriteria; menampilkan alternatif yang hampir memenuhi.",
	}
}

package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aqualens/backend/internal/domain"
	"github.com/aqualens/backend/internal/infrastructure/export"
)

// Scanner runs one classification run. Implemented by usecase.AnalysisService.
type Scanner interface {
	Scan(ctx context.Context, request domain.ScanRequest) (*domain.AnalysisReport, error)
}

// Handler holds dependencies for HTTP handlers. The latest completed report
// is kept here, behind a lock, so the dashboard and download endpoints can
// serve it; the pipeline itself stays stateless per run.
type Handler struct {
	scanner  Scanner
	exporter *export.Writer

	mu   sync.RWMutex
	last *domain.AnalysisReport
}

// NewHandler creates a new HTTP handler. The exporter may be nil, in which
// case no CSV snapshots are written after scans.
func NewHandler(scanner Scanner, exporter *export.Writer) *Handler {
	return &Handler{scanner: scanner, exporter: exporter}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "aqualens-backend",
		"version": "1.0.0",
	})
}

// Scan runs a classification run and returns the resulting report
func (h *Handler) Scan(c *gin.Context) {
	var request domain.ScanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	report, err := h.scanner.Scan(c.Request.Context(), request)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.mu.Lock()
	h.last = report
	h.mu.Unlock()

	if h.exporter != nil {
		if _, err := h.exporter.WriteSnapshot(report); err != nil {
			// Snapshots are best-effort; the report still goes out.
			log.Printf("[EXPORT] Failed to write CSV snapshot: %v", err)
		}
	}

	c.JSON(http.StatusOK, report)
}

// LatestReport returns the most recently completed report
func (h *Handler) LatestReport(c *gin.Context) {
	report := h.latest()
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrNoReport.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// DownloadProducts serves the latest record set as CSV
func (h *Handler) DownloadProducts(c *gin.Context) {
	h.download(c, "amazon_products", export.ProductsCSV)
}

// DownloadPriceTable serves the latest price pivot as CSV
func (h *Handler) DownloadPriceTable(c *gin.Context) {
	h.download(c, "price_table", export.PriceTableCSV)
}

// DownloadStats serves the latest price statistics as CSV
func (h *Handler) DownloadStats(c *gin.Context) {
	h.download(c, "price_analysis", export.StatsCSV)
}

func (h *Handler) download(c *gin.Context, prefix string, render func(*domain.AnalysisReport) ([]byte, error)) {
	report := h.latest()
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrNoReport.Error()})
		return
	}

	data, err := render(report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render CSV: " + err.Error()})
		return
	}

	filename := fmt.Sprintf("%s_%s.csv", prefix, time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *Handler) latest() *domain.AnalysisReport {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.last
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNoListings):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrMarketUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

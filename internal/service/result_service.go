package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aptipro/teacher-api/internal/models"
	appErrors "github.com/aptipro/teacher-api/pkg/errors"
	"github.com/aptipro/teacher-api/pkg/export"
)

type resultFeed interface {
	ListByTeacher(ctx context.Context, email string) ([]models.ResultRecord, error)
}

type resultCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ResultConfig tunes result-feed caching.
type ResultConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

// ResultExport is a rendered result feed ready for download.
type ResultExport struct {
	Bytes       []byte
	Filename    string
	ContentType string
}

// ResultService serves and exports the per-teacher result feed.
type ResultService struct {
	results resultFeed
	cache   resultCache
	metrics *MetricsService
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
	cfg     ResultConfig
}

// NewResultService constructs a ResultService.
func NewResultService(results resultFeed, cache resultCache, metrics *MetricsService, cfg ResultConfig, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ResultService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NewMetricsService()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	return &ResultService{
		results: results,
		cache:   cache,
		metrics: metrics,
		csv:     csv,
		pdf:     pdf,
		logger:  logger,
		cfg:     cfg,
	}
}

// List returns the teacher's result feed, newest first. A teacher with no
// results gets an empty list, never an error.
func (s *ResultService) List(ctx context.Context, email string) ([]models.ResultRecord, error) {
	if email == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Teacher email is required")
	}

	key := "results:" + email
	if s.cfg.CacheEnabled && s.cache != nil {
		start := time.Now()
		var cached []models.ResultRecord
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			s.metrics.RecordCacheOperation(true, time.Since(start))
			return cached, nil
		}
		s.metrics.RecordCacheOperation(false, time.Since(start))
		if err != appErrors.ErrCacheMiss {
			s.logger.Warn("result cache read failed", zap.Error(err))
		}
	}

	start := time.Now()
	records, err := s.results.ListByTeacher(ctx, email)
	s.metrics.ObserveDBQuery("results_list", time.Since(start))
	if err != nil {
		return nil, storeError(err, "failed to fetch results")
	}

	if s.cfg.CacheEnabled && s.cache != nil {
		if err := s.cache.Set(ctx, key, records, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("result cache write failed", zap.Error(err))
		}
	}

	return records, nil
}

// Export renders the teacher's result feed as a CSV or PDF attachment.
func (s *ResultService) Export(ctx context.Context, email, format string) (*ResultExport, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "pdf" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	records, err := s.List(ctx, email)
	if err != nil {
		return nil, err
	}

	dataset := buildResultDataset(records)
	stamp := time.Now().UTC().Format("20060102")

	switch format {
	case "pdf":
		payload, err := s.pdf.Render(dataset, fmt.Sprintf("Results for %s", email))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
		}
		return &ResultExport{
			Bytes:       payload,
			Filename:    fmt.Sprintf("results-%s.pdf", stamp),
			ContentType: "application/pdf",
		}, nil
	default:
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
		}
		return &ResultExport{
			Bytes:       payload,
			Filename:    fmt.Sprintf("results-%s.csv", stamp),
			ContentType: "text/csv",
		}, nil
	}
}

func buildResultDataset(records []models.ResultRecord) export.Dataset {
	headers := []string{"Student", "Student Email", "Test", "Score", "Total Marks", "Submitted At"}
	rows := make([]map[string]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, map[string]string{
			"Student":       rec.StudentName,
			"Student Email": rec.StudentEmail,
			"Test":          rec.TestName,
			"Score":         strconv.Itoa(rec.Score),
			"Total Marks":   strconv.Itoa(rec.TotalMarks),
			"Submitted At":  rec.SubmittedAt.UTC().Format(time.RFC3339),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

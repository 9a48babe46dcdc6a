package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/placement-api/internal/models"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
	"github.com/noah-isme/placement-api/pkg/export"
)

type placementReportSource interface {
	ListForCollege(ctx context.Context, collegeID int64) ([]models.PlacementReportRow, error)
}

type collegeLookup interface {
	CollegeByID(ctx context.Context, id int64) (*models.College, error)
}

type renderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportResult is a rendered report ready to be streamed.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders placement reports.
type ExportService struct {
	placements placementReportSource
	colleges   collegeLookup
	renderers  map[models.ReportFormat]renderer
	logger     *zap.Logger
	now        func() time.Time
}

// NewExportService constructs an ExportService with the CSV, PDF and XLSX exporters.
func NewExportService(placements placementReportSource, colleges collegeLookup, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		placements: placements,
		colleges:   colleges,
		renderers: map[models.ReportFormat]renderer{
			models.ReportFormatCSV:  export.NewCSVExporter(),
			models.ReportFormatPDF:  export.NewPDFExporter(),
			models.ReportFormatXLSX: export.NewXLSXExporter(),
		},
		logger: logger,
		now:    time.Now,
	}
}

var placementReportHeaders = []string{"Student", "Enrollment", "Department", "Company", "Position", "Package", "Joining Date", "Status"}

// PlacementReport renders the placements of a college in format.
func (s *ExportService) PlacementReport(ctx context.Context, collegeID int64, format models.ReportFormat) (*ExportResult, error) {
	r, ok := s.renderers[format]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported format %q", format))
	}

	college, err := s.colleges.CollegeByID(ctx, collegeID)
	if err != nil {
		return nil, err
	}
	if college == nil {
		return nil, notFound("college not found")
	}

	rows, err := s.placements.ListForCollege(ctx, collegeID)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: placementReportHeaders}
	for _, row := range rows {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Student":      row.FullName,
			"Enrollment":   deref(row.EnrollmentNumber),
			"Department":   deref(row.Department),
			"Company":      row.CompanyName,
			"Position":     row.Title,
			"Package":      formatPackage(row.PackageOffered),
			"Joining Date": formatDate(row.JoiningDate),
			"Status":       string(row.Status),
		})
	}

	title := fmt.Sprintf("Placement Report - %s", college.CollegeName)
	payload, err := r.Render(dataset, title)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
	}

	s.logger.Info("placement report rendered",
		zap.Int64("college_id", collegeID),
		zap.String("format", string(format)),
		zap.Int("rows", len(rows)),
	)
	return &ExportResult{
		Filename:    fmt.Sprintf("placements_%d_%s.%s", collegeID, s.now().UTC().Format("20060102"), format),
		ContentType: format.ContentType(),
		Data:        payload,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatPackage(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

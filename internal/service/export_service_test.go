package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/placement-api/internal/models"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
)

type fakeReportSource struct {
	rows []models.PlacementReportRow
}

func (f fakeReportSource) ListForCollege(ctx context.Context, collegeID int64) ([]models.PlacementReportRow, error) {
	return f.rows, nil
}

type fakeCollegeLookup map[int64]*models.College

func (f fakeCollegeLookup) CollegeByID(ctx context.Context, id int64) (*models.College, error) {
	return f[id], nil
}

func newExportFixture() *ExportService {
	pkg := 12.5
	joining := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	source := fakeReportSource{rows: []models.PlacementReportRow{{
		PlacementID: 1, FullName: "Alice", EnrollmentNumber: strPtr("EN-1"),
		CompanyName: "Acme", Title: "Engineer", PackageOffered: &pkg, JoiningDate: &joining,
		Status: models.PlacementJoined,
	}}}
	svc := NewExportService(source, fakeCollegeLookup{4: {ID: 4, CollegeName: "Tech"}}, nil)
	svc.now = func() time.Time { return time.Date(2024, 8, 2, 10, 0, 0, 0, time.UTC) }
	return svc
}

func strPtr(s string) *string { return &s }

func TestPlacementReportCSV(t *testing.T) {
	svc := newExportFixture()

	res, err := svc.PlacementReport(context.Background(), 4, models.ReportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "placements_4_20240802.csv", res.Filename)
	assert.Equal(t, models.ReportFormatCSV.ContentType(), res.ContentType)

	records, err := csv.NewReader(bytes.NewReader(res.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, placementReportHeaders, records[0])
	assert.Equal(t, []string{"Alice", "EN-1", "", "Acme", "Engineer", "12.50", "2024-07-01", "joined"}, records[1])
}

func TestPlacementReportBinaryFormats(t *testing.T) {
	svc := newExportFixture()

	pdf, err := svc.PlacementReport(context.Background(), 4, models.ReportFormatPDF)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf.Data, []byte("%PDF")))

	xlsx, err := svc.PlacementReport(context.Background(), 4, models.ReportFormatXLSX)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(xlsx.Data, []byte("PK")))
}

func TestPlacementReportErrors(t *testing.T) {
	svc := newExportFixture()

	_, err := svc.PlacementReport(context.Background(), 4, "docx")
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.PlacementReport(context.Background(), 99, models.ReportFormatCSV)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

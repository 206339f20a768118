package service

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakhadjo/internhub/internal/models"
)

type memArtifacts struct {
	files      map[string][]byte
	cleanupTTL time.Duration
	expired    []string
}

func newMemArtifacts() *memArtifacts {
	return &memArtifacts{files: map[string][]byte{}}
}

func (m *memArtifacts) Save(filename string, data []byte) (string, error) {
	m.files[filename] = data
	return filename, nil
}

func (m *memArtifacts) Path(filename string) string {
	return filepath.Join("exports", filename)
}

func (m *memArtifacts) CleanupOlderThan(ttl time.Duration) ([]string, error) {
	m.cleanupTTL = ttl
	for _, name := range m.expired {
		delete(m.files, name)
	}
	return m.expired, nil
}

func newExportForTest() (*ExportService, *memArtifacts) {
	store := newMemArtifacts()
	svc := NewExportService(store, nil, nil, "interns", 24*time.Hour, nil)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}
	return svc, store
}

func exportRows() []models.Intern {
	return []models.Intern{
		{
			ID:             "INT-2",
			Name:           "Ana Silva",
			Email:          "ana@corp.io",
			ActivityStatus: models.ActivityActive,
			ExcelSubmitted: models.Yes,
			AIChatAdded:    true,
			SpeakersCount:  120,
			SpeakersTarget: 100,
			Performance:    models.PerformanceGood,
			SheetStatus:    models.SheetGreen,
			DataRepurposed: models.No,
		},
		{
			ID:             "INT-1",
			Name:           `He said "hi"`,
			ActivityStatus: models.ActivityLeave,
			ExcelSubmitted: models.No,
			SpeakersTarget: 100,
			Performance:    models.PerformanceWeak,
			Segregation:    models.SegregationTerminated,
			SheetStatus:    models.SheetBlack,
			DataRepurposed: models.Yes,
		},
	}
}

func TestRenderInternsCSVIsIdempotent(t *testing.T) {
	svc, _ := newExportForTest()
	rows := exportRows()

	first, err := svc.RenderInternsCSV(rows)
	require.NoError(t, err)
	second, err := svc.RenderInternsCSV(rows)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderInternsCSVContent(t *testing.T) {
	svc, _ := newExportForTest()
	payload, err := svc.RenderInternsCSV(exportRows())
	require.NoError(t, err)

	lines := strings.Split(string(payload), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"ID","Name","Email","Activity Status","Excel Submitted","AI Chat","Data Mining GC","Speakers Count","Speakers Target","Performance","Segregation","Sheet Status","Data Repurposed"`, lines[0])
	assert.Equal(t, `"INT-2","Ana Silva","ana@corp.io","Active","Yes","Yes","No","120","100","Good","","Green","No"`, lines[1])
	assert.Contains(t, lines[2], `"He said ""hi"""`)
	assert.Contains(t, lines[2], `"Terminated"`)
}

func TestExportInternsWritesDatedCSV(t *testing.T) {
	svc, store := newExportForTest()
	result, err := svc.ExportInterns(exportRows(), FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "interns-2026-08-30.csv", result.Filename)
	assert.Equal(t, "text/csv;charset=utf-8", result.ContentType)
	assert.Equal(t, filepath.Join("exports", "interns-2026-08-30.csv"), result.Path)
	assert.Equal(t, result.Size, len(store.files[result.Filename]))
	assert.NotZero(t, result.Size)
}

func TestExportInternsPDF(t *testing.T) {
	svc, store := newExportForTest()
	result, err := svc.ExportInterns(exportRows(), FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, "interns-2026-08-30.pdf", result.Filename)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.NotEmpty(t, store.files[result.Filename])
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	svc, _ := newExportForTest()
	_, err := svc.ExportInterns(exportRows(), ExportFormat("xlsx"))
	require.Error(t, err)
}

func TestCleanupExpiredUsesConfiguredTTL(t *testing.T) {
	svc, store := newExportForTest()
	store.files["interns-2026-01-01.csv"] = []byte("stale")
	store.expired = []string{"interns-2026-01-01.csv"}

	deleted, err := svc.CleanupExpired()
	require.NoError(t, err)
	assert.Equal(t, []string{"interns-2026-01-01.csv"}, deleted)
	assert.Equal(t, 24*time.Hour, store.cleanupTTL)
	assert.NotContains(t, store.files, "interns-2026-01-01.csv")
}

func TestCleanupTTLDefaultsToOneDay(t *testing.T) {
	store := newMemArtifacts()
	svc := NewExportService(store, nil, nil, "interns", 0, nil)

	_, err := svc.CleanupExpired()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, store.cleanupTTL)
}

func TestExportCandidatesCSV(t *testing.T) {
	svc, _ := newExportForTest()
	rows := []models.Candidate{
		{ID: "c1", Name: "Ana", Department: "Data", Mentor: "S. Chen", StartDate: "2026-02-01", Status: models.CandidateOffer, Score: 75},
	}
	result, err := svc.ExportCandidates(rows, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "interns-2026-08-30.csv", result.Filename)

	payload, err := svc.RenderCandidatesCSV(rows)
	require.NoError(t, err)
	lines := strings.Split(string(payload), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"ID","Name","Email","Department","Mentor","Start Date","Status","Score"`, lines[0])
	assert.Equal(t, `"c1","Ana","","Data","S. Chen","2026-02-01","Offer","75"`, lines[1])
}

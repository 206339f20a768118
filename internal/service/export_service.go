package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"go.uber.org/zap"

	"github.com/rakhadjo/internhub/internal/models"
	"github.com/rakhadjo/internhub/pkg/export"
)

// ExportFormat selects the artifact encoding.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// Column orders are fixed per roster variant.
var (
	internColumns = []string{
		"ID", "Name", "Email", "Activity Status", "Excel Submitted",
		"AI Chat", "Data Mining GC", "Speakers Count", "Speakers Target",
		"Performance", "Segregation", "Sheet Status", "Data Repurposed",
	}
	candidateColumns = []string{
		"ID", "Name", "Email", "Department", "Mentor", "Start Date",
		"Status", "Score",
	}
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

type artifactStore interface {
	Save(filename string, data []byte) (string, error)
	Path(filename string) string
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

// ExportResult describes a written artifact.
type ExportResult struct {
	Filename    string
	Path        string
	ContentType string
	Size        int
}

// ExportService renders already-filtered roster rows into downloadable
// artifacts. Callers pass the exact rows to write; no filtering happens here.
type ExportService struct {
	storage artifactStore
	csv     csvRenderer
	pdf     pdfRenderer
	logger  *zap.Logger
	prefix  string
	ttl     time.Duration
	now     func() time.Time
}

// NewExportService constructs an ExportService. The filename prefix defaults
// to "interns" and the artifact TTL to 24 hours.
func NewExportService(storage artifactStore, csv csvRenderer, pdf pdfRenderer, prefix string, ttl time.Duration, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if prefix == "" {
		prefix = "interns"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{storage: storage, csv: csv, pdf: pdf, logger: logger, prefix: prefix, ttl: ttl, now: time.Now}
}

// CleanupExpired removes artifacts older than the configured TTL and returns
// the deleted filenames.
func (s *ExportService) CleanupExpired() ([]string, error) {
	deleted, err := s.storage.CleanupOlderThan(s.ttl)
	if err != nil {
		return deleted, err
	}
	if len(deleted) > 0 {
		s.logger.Info("expired exports removed",
			zap.Int("count", len(deleted)),
			zap.Duration("ttl", s.ttl),
		)
	}
	return deleted, nil
}

// RenderInternsCSV returns the CSV bytes for the given rows without touching
// storage. Rendering the same rows twice yields identical bytes.
func (s *ExportService) RenderInternsCSV(rows []models.Intern) ([]byte, error) {
	return s.csv.Render(InternDataset(rows))
}

// RenderCandidatesCSV is the candidate-roster counterpart of RenderInternsCSV.
func (s *ExportService) RenderCandidatesCSV(rows []models.Candidate) ([]byte, error) {
	return s.csv.Render(CandidateDataset(rows))
}

// ExportInterns renders the rows and writes the dated artifact.
func (s *ExportService) ExportInterns(rows []models.Intern, format ExportFormat) (*ExportResult, error) {
	return s.write(InternDataset(rows), format)
}

// ExportCandidates renders the rows and writes the dated artifact.
func (s *ExportService) ExportCandidates(rows []models.Candidate, format ExportFormat) (*ExportResult, error) {
	return s.write(CandidateDataset(rows), format)
}

func (s *ExportService) write(dataset export.Dataset, format ExportFormat) (*ExportResult, error) {
	var payload []byte
	var err error
	contentType := export.CSVContentType
	switch format {
	case FormatCSV, "":
		format = FormatCSV
		payload, err = s.csv.Render(dataset)
	case FormatPDF:
		contentType = export.PDFContentType
		payload, err = s.pdf.Render(dataset, s.prefix)
	default:
		err = fmt.Errorf("unsupported format %s", format)
	}
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("%s-%s.%s", s.prefix, s.now().UTC().Format("2006-01-02"), format)
	if _, err := s.storage.Save(filename, payload); err != nil {
		return nil, err
	}
	s.logger.Info("export written",
		zap.String("filename", filename),
		zap.Int("rows", len(dataset.Rows)),
		zap.String("format", string(format)),
	)
	return &ExportResult{
		Filename:    filename,
		Path:        s.storage.Path(filename),
		ContentType: contentType,
		Size:        len(payload),
	}, nil
}

// InternDataset converts tracker rows to the export table using their display
// strings: flags become Yes/No and an absent segregation becomes "".
func InternDataset(rows []models.Intern) export.Dataset {
	return export.Dataset{
		Headers: internColumns,
		Rows: slice.Map(rows, func(idx int, in models.Intern) map[string]string {
			return map[string]string{
				"ID":              in.ID,
				"Name":            in.Name,
				"Email":           in.Email,
				"Activity Status": in.ActivityStatus.Display(),
				"Excel Submitted": in.ExcelSubmitted.Display(),
				"AI Chat":         yesNoLabel(in.AIChatAdded),
				"Data Mining GC":  yesNoLabel(in.DataMiningGC),
				"Speakers Count":  strconv.Itoa(in.SpeakersCount),
				"Speakers Target": strconv.Itoa(in.SpeakersTarget),
				"Performance":     in.Performance.Display(),
				"Segregation":     in.Segregation.Display(),
				"Sheet Status":    in.SheetStatus.Display(),
				"Data Repurposed": in.DataRepurposed.Display(),
			}
		}),
	}
}

// CandidateDataset converts candidate rows to the export table.
func CandidateDataset(rows []models.Candidate) export.Dataset {
	return export.Dataset{
		Headers: candidateColumns,
		Rows: slice.Map(rows, func(idx int, c models.Candidate) map[string]string {
			return map[string]string{
				"ID":         c.ID,
				"Name":       c.Name,
				"Email":      c.Email,
				"Department": c.Department,
				"Mentor":     c.Mentor,
				"Start Date": c.StartDate,
				"Status":     c.Status.Display(),
				"Score":      strconv.Itoa(c.Score),
			}
		}),
	}
}

func yesNoLabel(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

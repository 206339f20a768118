package service

import (
	"math"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rakhadjo/internhub/internal/models"
	appErrors "github.com/rakhadjo/internhub/pkg/errors"
)

type candidateStore interface {
	Snapshot() []models.Candidate
	FindByID(id string) (models.Candidate, bool)
	Insert(c models.Candidate)
	Update(id string, fn func(models.Candidate) models.Candidate) (models.Candidate, bool)
	Count() int
}

// CandidateRequest holds the payload for creating or updating a candidate.
type CandidateRequest struct {
	Name       string                 `json:"name" validate:"required"`
	Email      string                 `json:"email" validate:"omitempty,email"`
	Department string                 `json:"department"`
	Mentor     string                 `json:"mentor"`
	StartDate  string                 `json:"start_date" validate:"required,datetime=2006-01-02"`
	Status     models.CandidateStatus `json:"status" validate:"omitempty,oneof=active offer completed offboarded"`
	Score      int                    `json:"score" validate:"gte=0,lte=100"`
}

// CandidateService owns the simpler CRUD roster.
type CandidateService struct {
	repo      candidateStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCandidateService constructs the candidate service.
func NewCandidateService(repo candidateStore, validate *validator.Validate, logger *zap.Logger) *CandidateService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CandidateService{repo: repo, validator: validate, logger: logger}
}

// Create registers a new candidate.
func (s *CandidateService) Create(req CandidateRequest) (models.Candidate, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Candidate{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid candidate payload")
	}
	status := req.Status
	if status == "" {
		status = models.CandidateActive
	}
	c := models.Candidate{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Mentor:     req.Mentor,
		StartDate:  req.StartDate,
		Status:     status,
		Score:      req.Score,
	}
	s.repo.Insert(c)
	s.logger.Debug("candidate added", zap.String("id", c.ID))
	return c, nil
}

// Update replaces every editable field of the candidate with the payload,
// preserving the ID.
func (s *CandidateService) Update(id string, req CandidateRequest) (models.Candidate, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Candidate{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid candidate payload")
	}
	status := req.Status
	if status == "" {
		status = models.CandidateActive
	}
	c, ok := s.repo.Update(id, func(c models.Candidate) models.Candidate {
		c.Name = req.Name
		c.Email = req.Email
		c.Department = req.Department
		c.Mentor = req.Mentor
		c.StartDate = req.StartDate
		c.Status = status
		c.Score = req.Score
		return c
	})
	if !ok {
		return models.Candidate{}, appErrors.Clone(appErrors.ErrNotFound, "candidate not found")
	}
	return c, nil
}

// Get returns a single candidate.
func (s *CandidateService) Get(id string) (models.Candidate, error) {
	c, ok := s.repo.FindByID(id)
	if !ok {
		return models.Candidate{}, appErrors.Clone(appErrors.ErrNotFound, "candidate not found")
	}
	return c, nil
}

// List applies the filter, orders newest start date first and returns the
// requested page plus pagination metadata.
func (s *CandidateService) List(filter models.CandidateFilter) ([]models.Candidate, models.Pagination) {
	rows := filterCandidates(s.repo.Snapshot(), filter)
	sortCandidatesByStartDate(rows)
	return paginate(rows, filter.Page, filter.PageSize)
}

// Summary reduces the full candidate set to pipeline counts and the rounded
// average score. An empty store yields a zero average, never a division error.
func (s *CandidateService) Summary() models.CandidateSummary {
	var sum models.CandidateSummary
	scoreTotal := 0
	for _, c := range s.repo.Snapshot() {
		sum.Total++
		scoreTotal += c.Score
		switch c.Status {
		case models.CandidateActive:
			sum.Active++
		case models.CandidateOffer:
			sum.Offer++
		case models.CandidateCompleted:
			sum.Completed++
		}
	}
	if sum.Total > 0 {
		sum.AvgScore = int(math.Round(float64(scoreTotal) / float64(sum.Total)))
	}
	return sum
}

func filterCandidates(all []models.Candidate, filter models.CandidateFilter) []models.Candidate {
	query := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]models.Candidate, 0, len(all))
	for _, c := range all {
		if filter.Department != "" && c.Department != filter.Department {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if query != "" && !matchesCandidate(c, query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesCandidate(c models.Candidate, query string) bool {
	return strings.Contains(strings.ToLower(c.Name), query) ||
		strings.Contains(strings.ToLower(c.Email), query) ||
		strings.Contains(strings.ToLower(c.Mentor), query) ||
		strings.Contains(strings.ToLower(c.Department), query)
}

// sortCandidatesByStartDate orders most recent first. StartDate is ISO-8601,
// so plain string comparison is date-order-correct.
func sortCandidatesByStartDate(rows []models.Candidate) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].StartDate > rows[j].StartDate
	})
}

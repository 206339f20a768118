package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rakhadjo/internhub/internal/models"
	appErrors "github.com/rakhadjo/internhub/pkg/errors"
	"github.com/rakhadjo/internhub/pkg/identity"
)

type internStore interface {
	Snapshot() []models.Intern
	FindByID(id string) (models.Intern, bool)
	Insert(in models.Intern)
	InsertBatch(batch []models.Intern)
	Update(id string, fn func(models.Intern) models.Intern) (models.Intern, bool)
	Count() int
}

type idGenerator interface {
	NextID() string
}

// CreateInternRequest holds the payload for adding a single intern.
type CreateInternRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

// RosterService owns the tracker roster: additions, field mutations with the
// consistency rules applied, and the pure list/summary derivations.
type RosterService struct {
	repo      internStore
	ids       idGenerator
	validator *validator.Validate
	logger    *zap.Logger
	target    int
}

// NewRosterService constructs the roster service.
func NewRosterService(repo internStore, ids idGenerator, validate *validator.Validate, logger *zap.Logger, speakersTarget int) *RosterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if speakersTarget <= 0 {
		speakersTarget = models.DefaultSpeakersTarget
	}
	return &RosterService{repo: repo, ids: ids, validator: validate, logger: logger, target: speakersTarget}
}

// Add registers a single intern with user-supplied fields. New records start
// inactive on no tasks, so the sheet status derives to red.
func (s *RosterService) Add(req CreateInternRequest) (models.Intern, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Intern{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid intern payload")
	}
	in := models.Intern{
		ID:             s.ids.NextID(),
		Name:           req.Name,
		Email:          req.Email,
		ActivityStatus: models.ActivityActive,
		ExcelSubmitted: models.No,
		SpeakersTarget: s.target,
		Performance:    models.PerformanceGood,
		SheetStatus:    models.SheetRed,
		DataRepurposed: models.No,
	}
	s.repo.Insert(in)
	s.logger.Debug("intern added", zap.String("id", in.ID))
	return in, nil
}

// Seed appends a pre-built batch, typically from the seed factory.
func (s *RosterService) Seed(batch []models.Intern) {
	s.repo.InsertBatch(batch)
	s.logger.Debug("roster seeded", zap.Int("count", len(batch)))
}

// Get returns a single record.
func (s *RosterService) Get(id string) (models.Intern, error) {
	in, ok := s.repo.FindByID(id)
	if !ok {
		return models.Intern{}, appErrors.Clone(appErrors.ErrNotFound, "intern not found")
	}
	return in, nil
}

// List applies the filter, orders by insertion recency and returns the
// requested page plus pagination metadata. An empty page is a valid result.
func (s *RosterService) List(filter models.InternFilter) ([]models.Intern, models.Pagination) {
	rows := filterInterns(s.repo.Snapshot(), filter)
	sortInternsByRecency(rows)
	return paginate(rows, filter.Page, filter.PageSize)
}

// Summary reduces the full, unfiltered roster to aggregate counts.
func (s *RosterService) Summary() models.InternSummary {
	var sum models.InternSummary
	for _, in := range s.repo.Snapshot() {
		sum.Total++
		switch in.SheetStatus {
		case models.SheetGreen:
			sum.Green++
		case models.SheetBlack:
			sum.Black++
		default:
			sum.Red++
		}
		if in.ActivityStatus == models.ActivityActive {
			sum.Active++
		} else {
			sum.Inactive++
		}
		if in.ExcelSubmitted == models.Yes {
			sum.ExcelYes++
		} else {
			sum.ExcelNo++
		}
		if in.Performance == models.PerformanceWeak {
			sum.Weak++
		} else {
			sum.Good++
		}
		if in.DataRepurposed == models.Yes {
			sum.RepurposedYes++
		} else {
			sum.RepurposedNo++
		}
		if in.TasksCompleted() {
			sum.TasksCompleted++
		}
	}
	return sum
}

// UpdateSpeakers parses the raw count (empty or non-numeric input counts as
// zero), clamps it and applies the green promotion rule.
func (s *RosterService) UpdateSpeakers(id string, raw string) (models.Intern, error) {
	count := parseCount(raw)
	return s.update(id, func(in models.Intern) models.Intern {
		return models.ApplySpeakers(in, count)
	})
}

// UpdateSegregation applies the classification and the black forcing rule.
func (s *RosterService) UpdateSegregation(id string, seg models.Segregation) (models.Intern, error) {
	return s.update(id, func(in models.Intern) models.Intern {
		return models.ApplySegregation(in, seg)
	})
}

// SetName replaces the display name.
func (s *RosterService) SetName(id, name string) (models.Intern, error) {
	return s.update(id, func(in models.Intern) models.Intern {
		in.Name = name
		return in
	})
}

// SetEmail replaces the contact email.
func (s *RosterService) SetEmail(id, email string) (models.Intern, error) {
	return s.update(id, func(in models.Intern) models.Intern {
		in.Email = email
		return in
	})
}

// SetActivityStatus replaces the activity status.
func (s *RosterService) SetActivityStatus(id string, v models.ActivityStatus) (models.Intern, error) {
	return s.update(id, func(in models.Intern) models.Intern {
		in.ActivityStatus = v
		return in
	})
}

// SetExcelSubmitted replaces the excel flag.
func (s *RosterService) SetExcelSubmitted(id string, v models.YesNo) (models.Intern, error) {
	return s.update(id, func(in models.Intern) models.Intern {
		in.ExcelSubmitted = v
		return in
	})
}

// SetPerformance replaces the performance grade.
func (s *RosterService) SetPerformance(id string, v models.Performance) (models.Intern, error) {
	return s.update(id, func(in models.Intern) models.Intern {
		in.Performance = v
		return in
	})
}

// SetSheetStatus replaces the sheet status directly, with no side effects on
// segregation or speakers.
func (s *RosterService) SetSheetStatus(id string, v models.SheetStatus) (models.Intern, error) {
	return s.update(id, func(in models.Intern) models.Intern {
		in.SheetStatus = v
		return in
	})
}

// SetDataRepurposed replaces the repurposed flag.
func (s *RosterService) SetDataRepurposed(id string, v models.YesNo) (models.Intern, error) {
	return s.update(id, func(in models.Intern) models.Intern {
		in.DataRepurposed = v
		return in
	})
}

// ToggleAIChat flips the AI chat task flag.
func (s *RosterService) ToggleAIChat(id string) (models.Intern, error) {
	return s.update(id, func(in models.Intern) models.Intern {
		in.AIChatAdded = !in.AIChatAdded
		return in
	})
}

// ToggleDataMining flips the data mining task flag.
func (s *RosterService) ToggleDataMining(id string) (models.Intern, error) {
	return s.update(id, func(in models.Intern) models.Intern {
		in.DataMiningGC = !in.DataMiningGC
		return in
	})
}

func (s *RosterService) update(id string, fn func(models.Intern) models.Intern) (models.Intern, error) {
	in, ok := s.repo.Update(id, fn)
	if !ok {
		return models.Intern{}, appErrors.Clone(appErrors.ErrNotFound, "intern not found")
	}
	return in, nil
}

// filterInterns keeps records satisfying all selected filters and, when the
// query is non-empty, a case-insensitive substring match over name, email or
// segregation label. Source order is preserved.
func filterInterns(all []models.Intern, filter models.InternFilter) []models.Intern {
	query := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]models.Intern, 0, len(all))
	for _, in := range all {
		if filter.SheetStatus != "" && in.SheetStatus != filter.SheetStatus {
			continue
		}
		if filter.Performance != "" && in.Performance != filter.Performance {
			continue
		}
		if query != "" && !matchesIntern(in, query) {
			continue
		}
		out = append(out, in)
	}
	return out
}

func matchesIntern(in models.Intern, query string) bool {
	return strings.Contains(strings.ToLower(in.Name), query) ||
		strings.Contains(strings.ToLower(in.Email), query) ||
		strings.Contains(strings.ToLower(string(in.Segregation)), query)
}

// sortInternsByRecency orders newest first using the numeric ID suffix, which
// encodes creation sequence.
func sortInternsByRecency(rows []models.Intern) {
	sort.SliceStable(rows, func(i, j int) bool {
		return identity.NumericSuffix(rows[i].ID) > identity.NumericSuffix(rows[j].ID)
	})
}

// paginate slices one 1-based page out of rows. The page size falls back to
// the default when it is not a selectable value; pages below 1 are clamped to
// the first page, pages past the end come back empty.
func paginate[T any](rows []T, page, size int) ([]T, models.Pagination) {
	if !models.ValidPageSize(size) {
		size = models.DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	total := len(rows)
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	pg := models.Pagination{Page: page, PageSize: size, TotalCount: total, TotalPages: totalPages}
	return rows[start:end], pg
}

// parseCount tolerates empty and non-numeric numeric-field input by treating
// it as zero.
func parseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

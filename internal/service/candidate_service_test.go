package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakhadjo/internhub/internal/models"
	"github.com/rakhadjo/internhub/internal/repository"
	appErrors "github.com/rakhadjo/internhub/pkg/errors"
)

func newCandidatesForTest() *CandidateService {
	return NewCandidateService(repository.NewCandidateRepository(), nil, nil)
}

func mustCreate(t *testing.T, svc *CandidateService, req CandidateRequest) models.Candidate {
	t.Helper()
	c, err := svc.Create(req)
	require.NoError(t, err)
	return c
}

func TestCandidateCreateAssignsIDAndDefaultStatus(t *testing.T) {
	svc := newCandidatesForTest()
	c := mustCreate(t, svc, CandidateRequest{Name: "Ana", StartDate: "2026-02-01", Score: 70})
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, models.CandidateActive, c.Status)
}

func TestCandidateCreateValidation(t *testing.T) {
	svc := newCandidatesForTest()

	_, err := svc.Create(CandidateRequest{StartDate: "2026-02-01"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Create(CandidateRequest{Name: "Ana", StartDate: "01/02/2026"})
	require.Error(t, err)

	_, err = svc.Create(CandidateRequest{Name: "Ana", StartDate: "2026-02-01", Score: 101})
	require.Error(t, err)

	_, err = svc.Create(CandidateRequest{Name: "Ana", StartDate: "2026-02-01", Status: "paused"})
	require.Error(t, err)
}

func TestCandidateUpdateReplacesFieldsKeepingID(t *testing.T) {
	svc := newCandidatesForTest()
	c := mustCreate(t, svc, CandidateRequest{Name: "Ana", StartDate: "2026-02-01", Score: 50})

	updated, err := svc.Update(c.ID, CandidateRequest{
		Name:       "Ana Silva",
		Department: "Data",
		Mentor:     "S. Chen",
		StartDate:  "2026-02-15",
		Status:     models.CandidateOffer,
		Score:      65,
	})
	require.NoError(t, err)
	assert.Equal(t, c.ID, updated.ID)
	assert.Equal(t, "Ana Silva", updated.Name)
	assert.Equal(t, models.CandidateOffer, updated.Status)
	assert.Equal(t, 65, updated.Score)

	_, err = svc.Update("missing", CandidateRequest{Name: "x", StartDate: "2026-01-01"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCandidateListSortsByStartDateDescending(t *testing.T) {
	svc := newCandidatesForTest()
	mustCreate(t, svc, CandidateRequest{Name: "Old", StartDate: "2025-01-10"})
	mustCreate(t, svc, CandidateRequest{Name: "New", StartDate: "2026-06-01"})
	mustCreate(t, svc, CandidateRequest{Name: "Mid", StartDate: "2025-12-31"})

	rows, pg := svc.List(models.CandidateFilter{Page: 1, PageSize: 25})
	require.Len(t, rows, 3)
	assert.Equal(t, "New", rows[0].Name)
	assert.Equal(t, "Mid", rows[1].Name)
	assert.Equal(t, "Old", rows[2].Name)
	assert.Equal(t, 3, pg.TotalCount)
}

func TestCandidateListFilters(t *testing.T) {
	svc := newCandidatesForTest()
	mustCreate(t, svc, CandidateRequest{Name: "Ana", Department: "Engineering", Mentor: "R. Patel", StartDate: "2026-01-01"})
	mustCreate(t, svc, CandidateRequest{Name: "Budi", Department: "Data", Mentor: "S. Chen", StartDate: "2026-01-02", Status: models.CandidateOffer})
	mustCreate(t, svc, CandidateRequest{Name: "Citra", Department: "Engineering", Mentor: "S. Chen", StartDate: "2026-01-03"})

	byDept, _ := svc.List(models.CandidateFilter{Department: "Engineering", Page: 1, PageSize: 25})
	assert.Len(t, byDept, 2)

	byStatus, _ := svc.List(models.CandidateFilter{Status: models.CandidateOffer, Page: 1, PageSize: 25})
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Budi", byStatus[0].Name)

	byMentor, _ := svc.List(models.CandidateFilter{Search: "chen", Page: 1, PageSize: 25})
	assert.Len(t, byMentor, 2)

	combined, _ := svc.List(models.CandidateFilter{Search: "chen", Department: "Engineering", Page: 1, PageSize: 25})
	require.Len(t, combined, 1)
	assert.Equal(t, "Citra", combined[0].Name)
}

func TestCandidateSummaryEmptyStoreHasZeroAverage(t *testing.T) {
	svc := newCandidatesForTest()
	sum := svc.Summary()
	assert.Equal(t, 0, sum.Total)
	assert.Equal(t, 0, sum.AvgScore)
}

func TestCandidateSummaryCountsAndRoundedAverage(t *testing.T) {
	svc := newCandidatesForTest()
	mustCreate(t, svc, CandidateRequest{Name: "A", StartDate: "2026-01-01", Score: 1})
	mustCreate(t, svc, CandidateRequest{Name: "B", StartDate: "2026-01-02", Score: 2, Status: models.CandidateOffer})
	mustCreate(t, svc, CandidateRequest{Name: "C", StartDate: "2026-01-03", Score: 2, Status: models.CandidateCompleted})

	sum := svc.Summary()
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 1, sum.Active)
	assert.Equal(t, 1, sum.Offer)
	assert.Equal(t, 1, sum.Completed)
	// 5/3 = 1.67 rounds to 2.
	assert.Equal(t, 2, sum.AvgScore)
}

package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rakhadjo/internhub/internal/models"
)

func TestPageSizeChangeResetsPage(t *testing.T) {
	vs := NewViewState()
	vs.SetPageSize(50)
	vs.Page = 3

	vs.SetPageSize(25)
	assert.Equal(t, 25, vs.PageSize)
	assert.Equal(t, 1, vs.Page)
}

func TestInvalidPageSizeIsIgnored(t *testing.T) {
	vs := NewViewState()
	vs.Page = 2

	vs.SetPageSize(33)
	assert.Equal(t, models.DefaultPageSize, vs.PageSize)
	assert.Equal(t, 2, vs.Page)
}

func TestNavigationSaturates(t *testing.T) {
	vs := NewViewState()

	vs.PrevPage()
	assert.Equal(t, 1, vs.Page)

	vs.NextPage(3)
	vs.NextPage(3)
	vs.NextPage(3)
	assert.Equal(t, 3, vs.Page)

	vs.PrevPage()
	assert.Equal(t, 2, vs.Page)
}

func TestFilterChangesResetPage(t *testing.T) {
	vs := NewViewState()
	vs.Page = 4

	vs.SetQuery("ana")
	assert.Equal(t, 1, vs.Page)

	vs.Page = 4
	vs.SetSheetStatus(models.SheetGreen)
	assert.Equal(t, 1, vs.Page)

	vs.Page = 4
	vs.SetPerformance(models.PerformanceWeak)
	assert.Equal(t, 1, vs.Page)

	vs.Page = 4
	vs.SetDepartment("Data")
	assert.Equal(t, 1, vs.Page)

	vs.Page = 4
	vs.SetStatus(models.CandidateOffer)
	assert.Equal(t, 1, vs.Page)
}

func TestFilterProjections(t *testing.T) {
	vs := NewViewState()
	vs.SetQuery("ana")
	vs.SetSheetStatus(models.SheetGreen)
	vs.SetPageSize(50)

	f := vs.InternFilter()
	assert.Equal(t, "ana", f.Search)
	assert.Equal(t, models.SheetGreen, f.SheetStatus)
	assert.Equal(t, 50, f.PageSize)
	assert.Equal(t, 1, f.Page)

	vs.SetDepartment("Data")
	cf := vs.CandidateFilter()
	assert.Equal(t, "ana", cf.Search)
	assert.Equal(t, "Data", cf.Department)
}

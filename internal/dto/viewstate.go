package dto

import "github.com/rakhadjo/internhub/internal/models"

// ViewState holds the transient list selections a presentation layer carries
// between renders: search text, categorical filters, page and page size. It is
// a plain value passed into the derivation services, never ambient state.
type ViewState struct {
	Query       string
	SheetStatus models.SheetStatus
	Performance models.Performance
	Department  string
	Status      models.CandidateStatus
	Page        int
	PageSize    int
}

// NewViewState returns a view-state positioned on the first page with the
// default page size and no filters.
func NewViewState() ViewState {
	return ViewState{Page: 1, PageSize: models.DefaultPageSize}
}

// SetQuery replaces the search text and returns to the first page.
func (v *ViewState) SetQuery(q string) {
	v.Query = q
	v.Page = 1
}

// SetSheetStatus selects a sheet-status filter; empty clears it.
func (v *ViewState) SetSheetStatus(s models.SheetStatus) {
	v.SheetStatus = s
	v.Page = 1
}

// SetPerformance selects a performance filter; empty clears it.
func (v *ViewState) SetPerformance(p models.Performance) {
	v.Performance = p
	v.Page = 1
}

// SetDepartment selects a department filter; empty clears it.
func (v *ViewState) SetDepartment(d string) {
	v.Department = d
	v.Page = 1
}

// SetStatus selects a candidate-status filter; empty clears it.
func (v *ViewState) SetStatus(s models.CandidateStatus) {
	v.Status = s
	v.Page = 1
}

// SetPageSize switches the page size and returns to the first page. Sizes
// outside the selectable set are ignored.
func (v *ViewState) SetPageSize(size int) {
	if !models.ValidPageSize(size) {
		return
	}
	v.PageSize = size
	v.Page = 1
}

// NextPage advances one page, saturating at totalPages.
func (v *ViewState) NextPage(totalPages int) {
	if v.Page < totalPages {
		v.Page++
	}
}

// PrevPage steps back one page, saturating at 1.
func (v *ViewState) PrevPage() {
	if v.Page > 1 {
		v.Page--
	}
}

// InternFilter projects the view-state onto a tracker list query.
func (v ViewState) InternFilter() models.InternFilter {
	return models.InternFilter{
		Search:      v.Query,
		SheetStatus: v.SheetStatus,
		Performance: v.Performance,
		Page:        v.Page,
		PageSize:    v.PageSize,
	}
}

// CandidateFilter projects the view-state onto a candidate list query.
func (v ViewState) CandidateFilter() models.CandidateFilter {
	return models.CandidateFilter{
		Search:     v.Query,
		Department: v.Department,
		Status:     v.Status,
		Page:       v.Page,
		PageSize:   v.PageSize,
	}
}

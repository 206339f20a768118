package models

// CandidateStatus tracks a candidate through the internship pipeline.
type CandidateStatus string

const (
	CandidateActive     CandidateStatus = "active"
	CandidateOffer      CandidateStatus = "offer"
	CandidateCompleted  CandidateStatus = "completed"
	CandidateOffboarded CandidateStatus = "offboarded"
)

// Departments offered in the candidate form. The field is an open string;
// this set only seeds the select options.
var Departments = []string{
	"Engineering",
	"Data",
	"Design",
	"Marketing",
	"Operations",
}

// Candidate is the simpler CRUD roster record. StartDate is an ISO-8601
// calendar date (YYYY-MM-DD); lexicographic comparison of that format is
// date-order-correct.
type Candidate struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Department string          `json:"department"`
	Mentor     string          `json:"mentor"`
	StartDate  string          `json:"start_date"`
	Status     CandidateStatus `json:"status"`
	Score      int             `json:"score"`
}

// CandidateFilter captures the list query for the candidate roster. Empty
// fields impose no constraint.
type CandidateFilter struct {
	Search     string
	Department string
	Status     CandidateStatus
	Page       int
	PageSize   int
}

// CandidateSummary aggregates counts and the rounded average score over the
// full candidate set.
type CandidateSummary struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Offer     int `json:"offer"`
	Completed int `json:"completed"`
	AvgScore  int `json:"avg_score"`
}

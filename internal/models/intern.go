package models

// ActivityStatus captures whether an intern is currently engaged.
type ActivityStatus string

const (
	ActivityActive   ActivityStatus = "active"
	ActivityInactive ActivityStatus = "inactive"
	ActivityLeave    ActivityStatus = "leave"
)

// YesNo is a two-state flag rendered as "Yes"/"No" in exports.
type YesNo string

const (
	Yes YesNo = "yes"
	No  YesNo = "no"
)

// Display returns the export label for the flag.
func (y YesNo) Display() string {
	if y == Yes {
		return "Yes"
	}
	return "No"
}

// Performance grades an intern's overall output.
type Performance string

const (
	PerformanceGood Performance = "good"
	PerformanceWeak Performance = "weak"
)

// Segregation is an exit or disciplinary classification. The zero value
// (SegregationNone) means no classification has been applied.
type Segregation string

const (
	SegregationNone       Segregation = ""
	SegregationResign     Segregation = "resign"
	SegregationWarning    Segregation = "warning"
	SegregationTerminated Segregation = "terminated"
	SegregationRelocated  Segregation = "relocated"
)

// Disqualifying reports whether the classification ends the internship,
// which forces the sheet status to black and blocks the green promotion.
func (s Segregation) Disqualifying() bool {
	return s == SegregationTerminated || s == SegregationRelocated
}

// SheetStatus is the coarse tri-state standing derived from the other fields:
// green = good standing, red = at risk, black = exited.
type SheetStatus string

const (
	SheetGreen SheetStatus = "green"
	SheetRed   SheetStatus = "red"
	SheetBlack SheetStatus = "black"
)

// Speaker count bounds applied on every mutation.
const (
	SpeakersMin           = 0
	SpeakersMax           = 1000
	DefaultSpeakersTarget = 100
)

// Intern is a tracker roster record. The ID has the form "INT-<n>" where n is
// a monotonically increasing numeric component, so recency ordering can be
// recovered from the ID alone.
type Intern struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	ActivityStatus ActivityStatus `json:"activity_status"`
	ExcelSubmitted YesNo          `json:"excel_submitted"`
	AIChatAdded    bool           `json:"ai_chat_added"`
	DataMiningGC   bool           `json:"data_mining_gc"`
	SpeakersCount  int            `json:"speakers_count"`
	SpeakersTarget int            `json:"speakers_target"`
	Performance    Performance    `json:"performance"`
	Segregation    Segregation    `json:"segregation,omitempty"`
	SheetStatus    SheetStatus    `json:"sheet_status"`
	DataRepurposed YesNo          `json:"data_repurposed"`
}

// TasksCompleted reports whether every tracked task is done: both boolean
// tasks plus the speaker recruitment target.
func (i Intern) TasksCompleted() bool {
	return i.AIChatAdded && i.DataMiningGC && i.SpeakersCount >= i.SpeakersTarget
}

// InternFilter captures the list query for the tracker roster. Empty fields
// impose no constraint.
type InternFilter struct {
	Search      string
	SheetStatus SheetStatus
	Performance Performance
	Page        int
	PageSize    int
}

// InternSummary aggregates counts over the full roster.
type InternSummary struct {
	Total          int `json:"total"`
	Green          int `json:"green"`
	Red            int `json:"red"`
	Black          int `json:"black"`
	Active         int `json:"active"`
	Inactive       int `json:"inactive"`
	ExcelYes       int `json:"excel_yes"`
	ExcelNo        int `json:"excel_no"`
	Good           int `json:"good"`
	Weak           int `json:"weak"`
	RepurposedYes  int `json:"repurposed_yes"`
	RepurposedNo   int `json:"repurposed_no"`
	TasksCompleted int `json:"tasks_completed"`
}

package models

// Display labels used in exports and the CLI table view.

func (a ActivityStatus) Display() string {
	switch a {
	case ActivityActive:
		return "Active"
	case ActivityLeave:
		return "Leave"
	default:
		return "Inactive"
	}
}

func (p Performance) Display() string {
	if p == PerformanceWeak {
		return "Weak"
	}
	return "Good"
}

func (s Segregation) Display() string {
	switch s {
	case SegregationResign:
		return "Resign"
	case SegregationWarning:
		return "Warning"
	case SegregationTerminated:
		return "Terminated"
	case SegregationRelocated:
		return "Relocated"
	default:
		return ""
	}
}

func (s SheetStatus) Display() string {
	switch s {
	case SheetGreen:
		return "Green"
	case SheetBlack:
		return "Black"
	default:
		return "Red"
	}
}

func (c CandidateStatus) Display() string {
	switch c {
	case CandidateOffer:
		return "Offer"
	case CandidateCompleted:
		return "Completed"
	case CandidateOffboarded:
		return "Offboarded"
	default:
		return "Active"
	}
}

package models

// ClampSpeakers bounds a speaker count to the allowed range.
func ClampSpeakers(n int) int {
	if n < SpeakersMin {
		return SpeakersMin
	}
	if n > SpeakersMax {
		return SpeakersMax
	}
	return n
}

// ApplySpeakers sets the speaker count (clamped) and promotes the sheet
// status to green when the target is reached and no disqualifying segregation
// applies. The promotion is one-way: a count dropping back below the target
// never downgrades an earlier green.
func ApplySpeakers(in Intern, count int) Intern {
	in.SpeakersCount = ClampSpeakers(count)
	target := in.SpeakersTarget
	if target <= 0 {
		target = DefaultSpeakersTarget
	}
	if in.SpeakersCount >= target && !in.Segregation.Disqualifying() {
		in.SheetStatus = SheetGreen
	}
	return in
}

// ApplySegregation sets the segregation classification and forces the sheet
// status to black when it is disqualifying. Clearing a disqualifying value
// leaves the sheet status untouched.
func ApplySegregation(in Intern, s Segregation) Intern {
	in.Segregation = s
	if s.Disqualifying() {
		in.SheetStatus = SheetBlack
	}
	return in
}

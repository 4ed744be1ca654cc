package model

// StudyHabits are the self-reported figures of the study questionnaire.
type StudyHabits struct {
	// AttendanceHours out of 10 spent attending class
	AttendanceHours int `json:"attendance_hours"`
	// CodingHours out of 10 spent practicing and reviewing each week
	CodingHours float64 `json:"coding_hours"`
	// FocusHours of deep, distraction-free study per week
	FocusHours float64 `json:"focus_hours"`
	// SleepHours per night
	SleepHours float64 `json:"sleep_hours"`
	// ExerciseHours out of 10 of exercise, hobbies or social time per week
	ExerciseHours float64 `json:"exercise_hours"`
	AsksForHelp   bool    `json:"asks_for_help"`
}

// Recommendation is a translation key for an advice line. Detail
// recommendations are printed nested under FocusHabits.
type Recommendation string

const (
	RecommendFocusHabits Recommendation = "study.recommend.focus"
	RecommendSleep       Recommendation = "study.recommend.sleep"
	RecommendDeepFocus   Recommendation = "study.recommend.deep_focus"
	RecommendAttendance  Recommendation = "study.recommend.attendance"
	RecommendCoding      Recommendation = "study.recommend.coding"
	RecommendAskForHelp  Recommendation = "study.recommend.help"
)

// IsDetail reports whether r is a sub-item of RecommendFocusHabits.
func (r Recommendation) IsDetail() bool {
	return r == RecommendSleep || r == RecommendDeepFocus
}

// StudyReport is the outcome of scoring a StudyHabits questionnaire.
type StudyReport struct {
	Score float64 `json:"score"`
	// Focus is the multiplier derived from sleep and focus hours
	Focus           float64          `json:"focus"`
	OnTrack         bool             `json:"on_track"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

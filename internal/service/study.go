package service

import (
	"github.com/guttosm/rocket-sim/internal/domain/model"
)

// Score weights.
const (
	WeightStudy      = 0.55
	WeightAttendance = 0.3
	WeightPractice   = 0.7
	WeightWellness   = 0.25
	WeightHelp       = 0.2
)

// Factor values and recommendation thresholds.
const (
	FocusGood        = 1.0
	FocusPoor        = 0.8
	SleepThreshold   = 6
	FocusThreshold   = 3
	AttendanceTarget = 3
	CodingTarget     = 4
	OnTrackScore     = 0.7
)

// ScoreStudyHabits computes the study success score and, when the score is
// below OnTrackScore, the recommendations for improving it.
func ScoreStudyHabits(h model.StudyHabits) model.StudyReport {
	focus := FocusPoor
	if h.SleepHours >= SleepThreshold && h.FocusHours >= FocusThreshold {
		focus = FocusGood
	}

	help := 0.0
	if h.AsksForHelp {
		help = 1
	}

	study := float64(h.AttendanceHours)/10*WeightAttendance + h.CodingHours/10*WeightPractice
	score := round2(WeightStudy*focus*study + WeightWellness*h.ExerciseHours/10 + WeightHelp*help)

	report := model.StudyReport{
		Score:   score,
		Focus:   focus,
		OnTrack: score >= OnTrackScore,
	}
	if report.OnTrack {
		return report
	}

	if focus < FocusGood {
		report.Recommendations = append(report.Recommendations, model.RecommendFocusHabits)
		if h.SleepHours < SleepThreshold {
			report.Recommendations = append(report.Recommendations, model.RecommendSleep)
		}
		if h.FocusHours < FocusThreshold {
			report.Recommendations = append(report.Recommendations, model.RecommendDeepFocus)
		}
	}
	if h.AttendanceHours < AttendanceTarget {
		report.Recommendations = append(report.Recommendations, model.RecommendAttendance)
	}
	if h.CodingHours <= CodingTarget {
		report.Recommendations = append(report.Recommendations, model.RecommendCoding)
	}
	if !h.AsksForHelp {
		report.Recommendations = append(report.Recommendations, model.RecommendAskForHelp)
	}
	return report
}

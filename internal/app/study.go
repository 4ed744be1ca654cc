package app

import (
	"fmt"

	"github.com/guttosm/rocket-sim/internal/console"
	"github.com/guttosm/rocket-sim/internal/domain/model"
	"github.com/guttosm/rocket-sim/internal/i18n"
	"github.com/guttosm/rocket-sim/internal/service"
)

// RunStudy runs the study habit questionnaire and prints the score with
// recommendations.
func RunStudy(p *console.Prompter) error {
	var (
		h   model.StudyHabits
		err error
	)

	if h.AttendanceHours, err = p.AskInt(i18n.KeyPromptAttendance); err != nil {
		return fmt.Errorf("attendance: %w", err)
	}

	figures := []struct {
		key string
		dst *float64
	}{
		{i18n.KeyPromptCoding, &h.CodingHours},
		{i18n.KeyPromptFocus, &h.FocusHours},
		{i18n.KeyPromptSleep, &h.SleepHours},
		{i18n.KeyPromptExercise, &h.ExerciseHours},
	}
	for _, f := range figures {
		if *f.dst, err = p.AskFloat(f.key); err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
	}

	help, err := p.AskString(i18n.KeyPromptHelp)
	if err != nil {
		return fmt.Errorf("help: %w", err)
	}
	h.AsksForHelp = help == p.Translate(i18n.KeyAnswerYes)

	printStudyReport(p, service.AdviseStudy(h))
	return nil
}

func printStudyReport(p *console.Prompter, report model.StudyReport) {
	p.Say(i18n.KeyStudyScore, console.FormatNumber(report.Score))

	if report.OnTrack {
		p.Say(i18n.KeyStudyOnTrack)
		return
	}

	p.Say(i18n.KeyStudyLow)
	for _, r := range report.Recommendations {
		bullet := "    * "
		if r.IsDetail() {
			bullet = "        + "
		}
		p.Println(bullet + p.Translate(string(r)))
	}
}

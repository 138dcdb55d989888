package service

import (
	"math"

	"climatewise/internal/model"
)

// Score sums the points across all responses. Order-independent.
func Score(responses []model.SurveyResponse) int {
	total := 0
	for _, r := range responses {
		total += r.Points
	}
	return total
}

// Percentage converts a total into 0..100, assuming every answered question
// could have scored model.MaxPointsPerQuestion. Returns 0 for no responses.
func Percentage(total int, responses []model.SurveyResponse) int {
	if len(responses) == 0 {
		return 0
	}
	max := len(responses) * model.MaxPointsPerQuestion
	pct := int(math.Round(float64(total) / float64(max) * 100))
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// gradeBands are checked in order, highest threshold first. Lower bounds
// are inclusive.
var gradeBands = []struct {
	min   int
	grade model.Grade
}{
	{90, model.GradeAPlus},
	{80, model.GradeA},
	{70, model.GradeBPlus},
	{60, model.GradeB},
	{50, model.GradeCPlus},
	{40, model.GradeC},
	{30, model.GradeD},
}

// GradeFor maps a percentage to its letter grade.
func GradeFor(percentage int) model.Grade {
	for _, band := range gradeBands {
		if percentage >= band.min {
			return band.grade
		}
	}
	return model.GradeF
}

// levelBands is the single canonical level/badge table, applied uniformly
// to scoring, certificates and the dashboard. Thresholds assume the
// standard ten-question survey (max score 60).
var levelBands = []struct {
	minScore int
	level    model.Level
	badge    string
}{
	{40, model.LevelExpert, "🏆"},
	{25, model.LevelAdvanced, "🌳"},
	{15, model.LevelIntermediate, "🌱"},
	{0, model.LevelBeginner, "🌿"},
}

// LevelForScore maps a total score to its level and badge.
func LevelForScore(score int) (model.Level, string) {
	for _, band := range levelBands {
		if score >= band.minScore {
			return band.level, band.badge
		}
	}
	last := levelBands[len(levelBands)-1]
	return last.level, last.badge
}

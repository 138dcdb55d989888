package service

import (
	"testing"

	"climatewise/internal/model"
)

func responsesWithPoints(points ...int) []model.SurveyResponse {
	out := make([]model.SurveyResponse, len(points))
	for i, p := range points {
		out[i] = model.SurveyResponse{QuestionID: "q", SelectedValue: "v", Points: p}
	}
	return out
}

func TestScore(t *testing.T) {
	if got := Score(nil); got != 0 {
		t.Fatalf("Score(nil)=%d, want 0", got)
	}
	if got := Score(responsesWithPoints(6, 4, 0, 2)); got != 12 {
		t.Fatalf("Score=%d, want 12", got)
	}
	// Order-independent
	if Score(responsesWithPoints(1, 2, 3)) != Score(responsesWithPoints(3, 1, 2)) {
		t.Fatal("Score should be idempotent under reordering")
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		name   string
		points []int
		want   int
	}{
		{"empty", nil, 0},
		{"perfect ten", []int{6, 6, 6, 6, 6, 6, 6, 6, 6, 6}, 100},
		{"all zero", []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 0},
		{"half", []int{0, 6}, 50},
		{"rounds", []int{4}, 67},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			responses := responsesWithPoints(c.points...)
			if got := Percentage(Score(responses), responses); got != c.want {
				t.Fatalf("Percentage=%d, want %d", got, c.want)
			}
		})
	}

	// Always clamped to [0,100]
	responses := responsesWithPoints(6)
	if got := Percentage(999, responses); got != 100 {
		t.Fatalf("Percentage(999)=%d, want clamp to 100", got)
	}
}

func TestGradeFor(t *testing.T) {
	cases := []struct {
		percentage int
		want       model.Grade
	}{
		{100, model.GradeAPlus},
		{90, model.GradeAPlus},
		{89, model.GradeA},
		{80, model.GradeA},
		{79, model.GradeBPlus},
		{70, model.GradeBPlus},
		{60, model.GradeB},
		{50, model.GradeCPlus},
		{40, model.GradeC},
		{30, model.GradeD},
		{29, model.GradeF},
		{0, model.GradeF},
	}
	for _, c := range cases {
		if got := GradeFor(c.percentage); got != c.want {
			t.Fatalf("GradeFor(%d)=%s, want %s", c.percentage, got, c.want)
		}
	}
}

// Higher percentage must never yield a lower grade.
func TestGradeForMonotonic(t *testing.T) {
	rank := map[model.Grade]int{
		model.GradeF: 0, model.GradeD: 1, model.GradeC: 2, model.GradeCPlus: 3,
		model.GradeB: 4, model.GradeBPlus: 5, model.GradeA: 6, model.GradeAPlus: 7,
	}
	prev := GradeFor(0)
	for pct := 1; pct <= 100; pct++ {
		got := GradeFor(pct)
		if rank[got] < rank[prev] {
			t.Fatalf("grade dropped from %s to %s at %d%%", prev, got, pct)
		}
		prev = got
	}
}

func TestLevelForScore(t *testing.T) {
	cases := []struct {
		score int
		level model.Level
		badge string
	}{
		{0, model.LevelBeginner, "🌿"},
		{14, model.LevelBeginner, "🌿"},
		{15, model.LevelIntermediate, "🌱"},
		{24, model.LevelIntermediate, "🌱"},
		{25, model.LevelAdvanced, "🌳"},
		{39, model.LevelAdvanced, "🌳"},
		{40, model.LevelExpert, "🏆"},
		{60, model.LevelExpert, "🏆"},
	}
	for _, c := range cases {
		level, badge := LevelForScore(c.score)
		if level != c.level || badge != c.badge {
			t.Fatalf("LevelForScore(%d)=(%s,%s), want (%s,%s)", c.score, level, badge, c.level, c.badge)
		}
	}
}

// Ten perfect answers: score 60, 100%, A+, expert.
func TestScoringEndToEnd(t *testing.T) {
	responses := responsesWithPoints(6, 6, 6, 6, 6, 6, 6, 6, 6, 6)
	total := Score(responses)
	if total != 60 {
		t.Fatalf("score=%d, want 60", total)
	}
	if pct := Percentage(total, responses); pct != 100 {
		t.Fatalf("percentage=%d, want 100", pct)
	}
	if grade := GradeFor(100); grade != model.GradeAPlus {
		t.Fatalf("grade=%s, want A+", grade)
	}
	level, badge := LevelForScore(total)
	if level != model.LevelExpert || badge != "🏆" {
		t.Fatalf("level=(%s,%s), want (expert,🏆)", level, badge)
	}
}

// Ten zero answers: score 0, 0%, F, beginner with the 🌿 badge.
func TestScoringFloor(t *testing.T) {
	responses := responsesWithPoints(0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	total := Score(responses)
	if total != 0 {
		t.Fatalf("score=%d, want 0", total)
	}
	if pct := Percentage(total, responses); pct != 0 {
		t.Fatalf("percentage=%d, want 0", pct)
	}
	if grade := GradeFor(0); grade != model.GradeF {
		t.Fatalf("grade=%s, want F", grade)
	}
	level, badge := LevelForScore(total)
	if level != model.LevelBeginner || badge != "🌿" {
		t.Fatalf("level=(%s,%s), want (beginner,🌿)", level, badge)
	}
}

package catalog

import (
	"strings"
	"testing"

	"climatewise/internal/model"
)

func TestDefaultCatalogValid(t *testing.T) {
	// Default panics on invalid built-in data; construct explicitly so a
	// data mistake fails the test instead of crashing it.
	store, err := NewStore(DefaultQuestions(), DefaultRecommendations(), DefaultFacts())
	if err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}

	for _, q := range store.Questions() {
		if q.Text.EN == "" || q.Text.PT == "" {
			t.Errorf("question %s missing a language variant", q.ID)
		}
		if len(q.Options) < 2 {
			t.Errorf("question %s has fewer than 2 options", q.ID)
		}
		maxPoints := 0
		for _, opt := range q.Options {
			if opt.Points > maxPoints {
				maxPoints = opt.Points
			}
			if opt.Points > model.MaxPointsPerQuestion {
				t.Errorf("question %s option %s exceeds the per-question maximum", q.ID, opt.Value)
			}
		}
		if maxPoints != model.MaxPointsPerQuestion {
			t.Errorf("question %s has no full-credit option (max %d)", q.ID, maxPoints)
		}
	}

	for _, r := range store.Recommendations() {
		if r.ID == "" || r.Content.EN == "" || r.Content.PT == "" {
			t.Errorf("recommendation %s incomplete", r.ID)
		}
	}
	for _, f := range store.Facts() {
		if f.ID == "" || f.Content.EN == "" || f.Content.PT == "" {
			t.Errorf("fact %s incomplete", f.ID)
		}
		if f.Kind == "" {
			t.Errorf("fact %s has no kind", f.ID)
		}
	}
}

func TestDefaultQuestionSetResolves(t *testing.T) {
	set := Default().DefaultQuestionSet()
	if len(set) != 10 {
		t.Fatalf("default set resolved %d questions, want 10", len(set))
	}
	for _, q := range set {
		if !q.IsActive {
			t.Errorf("default set contains inactive question %s", q.ID)
		}
	}
}

func TestStoreLookups(t *testing.T) {
	store := Default()

	q := store.QuestionByID("q_home_energy")
	if q == nil || q.ID != "q_home_energy" {
		t.Fatalf("QuestionByID: got %+v", q)
	}
	if store.QuestionByID("q_nope") != nil {
		t.Fatal("unknown question id should return nil")
	}
	if store.RecommendationByID(RecScoreLow) == nil {
		t.Fatal("engine copy missing from catalog")
	}

	for _, kind := range []Kind{KindQuestion, KindRecommendation, KindFact} {
		n, err := store.Count(kind)
		if err != nil || n == 0 {
			t.Fatalf("Count(%s)=%d, %v", kind, n, err)
		}
	}
	if _, err := store.Count(Kind("rumors")); err == nil {
		t.Fatal("unknown kind should error")
	}
}

func TestNewStoreRejectsInvalidData(t *testing.T) {
	option := []model.QuestionOption{{Value: "yes", Points: 6}}

	cases := []struct {
		name      string
		questions []model.QuestionDefinition
		wantErr   string
	}{
		{
			"duplicate id",
			[]model.QuestionDefinition{
				{ID: "q_dup", Options: option},
				{ID: "q_dup", Options: option},
			},
			"duplicate",
		},
		{
			"missing id",
			[]model.QuestionDefinition{{Options: option}},
			"no id",
		},
		{
			"no options",
			[]model.QuestionDefinition{{ID: "q_empty"}},
			"no options",
		},
		{
			"negative points",
			[]model.QuestionDefinition{
				{ID: "q_neg", Options: []model.QuestionOption{{Value: "bad", Points: -1}}},
			},
			"negative",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewStore(c.questions, nil, nil)
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("got %v, want error containing %q", err, c.wantErr)
			}
		})
	}

	if _, err := NewStore(nil, []model.RecommendationEntry{{ID: "r"}, {ID: "r"}}, nil); err == nil {
		t.Fatal("duplicate recommendation id should error")
	}
	if _, err := NewStore(nil, nil, []model.FactEntry{{ID: "f"}, {ID: "f"}}); err == nil {
		t.Fatal("duplicate fact id should error")
	}
}

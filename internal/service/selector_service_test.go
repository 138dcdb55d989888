package service

import (
	"reflect"
	"testing"

	"climatewise/internal/catalog"
	"climatewise/internal/model"
)

func singleOption() []model.QuestionOption {
	return []model.QuestionOption{
		{Value: "yes", Label: model.LocalizedText{EN: "Yes"}, Points: 6},
	}
}

func question(id string, priority int, mutate func(*model.QuestionDefinition)) model.QuestionDefinition {
	q := model.QuestionDefinition{
		ID:       id,
		Priority: priority,
		IsActive: true,
		Options:  singleOption(),
	}
	if mutate != nil {
		mutate(&q)
	}
	return q
}

func selectorWith(t *testing.T, questions ...model.QuestionDefinition) *SelectorService {
	t.Helper()
	store, err := catalog.NewStore(questions, nil, nil)
	if err != nil {
		t.Fatalf("invalid fixture catalog: %v", err)
	}
	return NewSelectorService(store)
}

func ids(questions []model.QuestionDefinition) []string {
	out := make([]string, len(questions))
	for i, q := range questions {
		out[i] = q.ID
	}
	return out
}

func TestSelectQuestionsUnionSemantics(t *testing.T) {
	// A location tag pulls in a question even when its category does not
	// match: the filters are a union, not an intersection.
	svc := selectorWith(t,
		question("cat_match", 5, func(q *model.QuestionDefinition) {
			q.Categories = []model.Category{model.CategoryStudent}
		}),
		question("loc_only", 4, func(q *model.QuestionDefinition) {
			q.Categories = []model.Category{model.CategoryGovernment}
			q.Locations = []string{"SP"}
		}),
		question("no_match", 9, func(q *model.QuestionDefinition) {
			q.Categories = []model.Category{model.CategoryEmployee}
		}),
	)

	profile := &model.UserProfile{Category: model.CategoryStudent, State: "SP", City: "São Paulo"}
	got := ids(svc.SelectQuestions(profile, 10))
	want := []string{"cat_match", "loc_only"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSelectQuestionsCityMatch(t *testing.T) {
	svc := selectorWith(t,
		question("city_tag", 5, func(q *model.QuestionDefinition) {
			q.Categories = []model.Category{model.CategoryGovernment}
			q.Locations = []string{"São Paulo"}
		}),
	)
	profile := &model.UserProfile{Category: model.CategoryStudent, State: "RJ", City: "São Paulo"}
	if got := ids(svc.SelectQuestions(profile, 5)); !reflect.DeepEqual(got, []string{"city_tag"}) {
		t.Fatalf("city tag should match, got %v", got)
	}
}

func TestSelectQuestionsIndustrySubstring(t *testing.T) {
	svc := selectorWith(t,
		question("tech_q", 5, func(q *model.QuestionDefinition) {
			q.Categories = []model.Category{model.CategoryGovernment}
			q.Industries = []string{"technology"}
		}),
	)

	// Case-insensitive substring match in either direction.
	for _, industry := range []string{"Technology", "Agro Technology Ltda", "tech"} {
		profile := &model.UserProfile{Category: model.CategoryStudent, Industry: industry}
		if got := ids(svc.SelectQuestions(profile, 5)); !reflect.DeepEqual(got, []string{"tech_q"}) {
			t.Fatalf("industry %q should match, got %v", industry, got)
		}
	}

	profile := &model.UserProfile{Category: model.CategoryStudent, Industry: "finance"}
	if got := svc.SelectQuestions(profile, 5); len(got) != 0 {
		t.Fatalf("industry finance should not match, got %v", ids(got))
	}
}

func TestSelectQuestionsInterestExact(t *testing.T) {
	svc := selectorWith(t,
		question("recycle_q", 5, func(q *model.QuestionDefinition) {
			q.Categories = []model.Category{model.CategoryGovernment}
			q.Interests = []string{"recycling"}
		}),
	)

	profile := &model.UserProfile{Category: model.CategoryStudent, Interests: []string{"recycling"}}
	if got := ids(svc.SelectQuestions(profile, 5)); !reflect.DeepEqual(got, []string{"recycle_q"}) {
		t.Fatalf("interest should match, got %v", got)
	}

	// Interest matching is exact, unlike industry matching.
	profile = &model.UserProfile{Category: model.CategoryStudent, Interests: []string{"Recycling"}}
	if got := svc.SelectQuestions(profile, 5); len(got) != 0 {
		t.Fatalf("interest match must be case-sensitive, got %v", ids(got))
	}
}

func TestSelectQuestionsDeduplicatesAndSorts(t *testing.T) {
	// Matches by category AND interest; must appear once. Priority orders
	// the result, with ties keeping their match order (stable sort).
	svc := selectorWith(t,
		question("both", 3, func(q *model.QuestionDefinition) {
			q.Categories = []model.Category{model.CategoryStudent}
			q.Interests = []string{"water"}
		}),
		question("high", 9, func(q *model.QuestionDefinition) {
			q.Categories = []model.Category{model.CategoryStudent}
		}),
		question("tie_a", 5, func(q *model.QuestionDefinition) {
			q.Categories = []model.Category{model.CategoryStudent}
		}),
		question("tie_b", 5, func(q *model.QuestionDefinition) {
			q.Categories = []model.Category{model.CategoryStudent}
		}),
	)

	profile := &model.UserProfile{Category: model.CategoryStudent, Interests: []string{"water"}}
	got := ids(svc.SelectQuestions(profile, 10))
	want := []string{"high", "tie_a", "tie_b", "both"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSelectQuestionsTruncatesToCount(t *testing.T) {
	svc := selectorWith(t,
		question("a", 3, func(q *model.QuestionDefinition) { q.Categories = []model.Category{model.CategoryStudent} }),
		question("b", 2, func(q *model.QuestionDefinition) { q.Categories = []model.Category{model.CategoryStudent} }),
		question("c", 1, func(q *model.QuestionDefinition) { q.Categories = []model.Category{model.CategoryStudent} }),
	)

	profile := &model.UserProfile{Category: model.CategoryStudent}
	if got := ids(svc.SelectQuestions(profile, 2)); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("got %v, want [a b]", got)
	}

	// Fewer matches than count: return what matched, no padding, no error.
	if got := svc.SelectQuestions(profile, 50); len(got) != 3 {
		t.Fatalf("expected all 3 matches, got %d", len(got))
	}
}

func TestSelectQuestionsSkipsInactive(t *testing.T) {
	svc := selectorWith(t,
		question("active", 1, func(q *model.QuestionDefinition) { q.Categories = []model.Category{model.CategoryStudent} }),
		question("retired", 9, func(q *model.QuestionDefinition) {
			q.Categories = []model.Category{model.CategoryStudent}
			q.IsActive = false
		}),
	)

	profile := &model.UserProfile{Category: model.CategoryStudent}
	if got := ids(svc.SelectQuestions(profile, 10)); !reflect.DeepEqual(got, []string{"active"}) {
		t.Fatalf("inactive question selected: %v", got)
	}
}

func TestSelectQuestionsNoMatches(t *testing.T) {
	svc := selectorWith(t,
		question("gov_only", 5, func(q *model.QuestionDefinition) {
			q.Categories = []model.Category{model.CategoryGovernment}
		}),
	)
	profile := &model.UserProfile{Category: model.CategoryStudent}
	if got := svc.SelectQuestions(profile, 10); len(got) != 0 {
		t.Fatalf("expected empty selection, got %v", ids(got))
	}
}

func TestSelectQuestionsDeterministic(t *testing.T) {
	svc := NewSelectorService(catalog.Default())
	profile := &model.UserProfile{
		Category:  model.CategoryStudent,
		State:     "SP",
		City:      "São Paulo",
		Industry:  "technology",
		Interests: []string{"recycling", "renewable_energy"},
	}

	first := ids(svc.SelectQuestions(profile, 10))
	for i := 0; i < 5; i++ {
		if got := ids(svc.SelectQuestions(profile, 10)); !reflect.DeepEqual(got, first) {
			t.Fatalf("selection not deterministic: %v vs %v", got, first)
		}
	}

	if len(first) > 10 {
		t.Fatalf("selection returned more than count: %d", len(first))
	}
	seen := make(map[string]bool)
	for _, id := range first {
		if seen[id] {
			t.Fatalf("duplicate question id %s", id)
		}
		seen[id] = true
	}
}

package catalog

import (
	"errors"
	"fmt"

	"climatewise/internal/model"
)

// Kind names a catalog record type. Kinds double as Mongo collection names.
type Kind string

const (
	KindQuestion       Kind = "questions"
	KindRecommendation Kind = "recommendations"
	KindFact           Kind = "facts"
)

var ErrUnknownKind = errors.New("unknown catalog kind")

// Store holds the full catalog in memory: every question, recommendation
// and fact with its targeting metadata. Read-only after construction.
type Store struct {
	questions       []model.QuestionDefinition
	recommendations []model.RecommendationEntry
	facts           []model.FactEntry

	questionByID       map[string]*model.QuestionDefinition
	recommendationByID map[string]*model.RecommendationEntry
	factByID           map[string]*model.FactEntry
}

// NewStore builds a Store and validates catalog invariants: unique ids per
// kind, at least one option per question, non-negative option points.
func NewStore(questions []model.QuestionDefinition, recommendations []model.RecommendationEntry, facts []model.FactEntry) (*Store, error) {
	s := &Store{
		questions:          questions,
		recommendations:    recommendations,
		facts:              facts,
		questionByID:       make(map[string]*model.QuestionDefinition, len(questions)),
		recommendationByID: make(map[string]*model.RecommendationEntry, len(recommendations)),
		factByID:           make(map[string]*model.FactEntry, len(facts)),
	}

	for i := range s.questions {
		q := &s.questions[i]
		if q.ID == "" {
			return nil, fmt.Errorf("question at index %d has no id", i)
		}
		if _, dup := s.questionByID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %q has no options", q.ID)
		}
		for _, opt := range q.Options {
			if opt.Points < 0 {
				return nil, fmt.Errorf("question %q option %q has negative points", q.ID, opt.Value)
			}
		}
		s.questionByID[q.ID] = q
	}

	for i := range s.recommendations {
		r := &s.recommendations[i]
		if _, dup := s.recommendationByID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate recommendation id %q", r.ID)
		}
		s.recommendationByID[r.ID] = r
	}

	for i := range s.facts {
		f := &s.facts[i]
		if _, dup := s.factByID[f.ID]; dup {
			return nil, fmt.Errorf("duplicate fact id %q", f.ID)
		}
		s.factByID[f.ID] = f
	}

	return s, nil
}

// Default returns a Store built from the built-in catalog data. Panics on
// invalid built-in data, which is a programming error caught by tests.
func Default() *Store {
	s, err := NewStore(DefaultQuestions(), DefaultRecommendations(), DefaultFacts())
	if err != nil {
		panic("catalog: invalid built-in data: " + err.Error())
	}
	return s
}

// Questions returns all question definitions in catalog order.
func (s *Store) Questions() []model.QuestionDefinition {
	return s.questions
}

// Recommendations returns all recommendation entries in catalog order.
func (s *Store) Recommendations() []model.RecommendationEntry {
	return s.recommendations
}

// Facts returns all fact entries in catalog order.
func (s *Store) Facts() []model.FactEntry {
	return s.facts
}

// QuestionByID returns the question with the given id, or nil.
func (s *Store) QuestionByID(id string) *model.QuestionDefinition {
	return s.questionByID[id]
}

// RecommendationByID returns the recommendation with the given id, or nil.
func (s *Store) RecommendationByID(id string) *model.RecommendationEntry {
	return s.recommendationByID[id]
}

// FactByID returns the fact with the given id, or nil.
func (s *Store) FactByID(id string) *model.FactEntry {
	return s.factByID[id]
}

// Count returns the number of records held for a kind.
func (s *Store) Count(kind Kind) (int, error) {
	switch kind {
	case KindQuestion:
		return len(s.questions), nil
	case KindRecommendation:
		return len(s.recommendations), nil
	case KindFact:
		return len(s.facts), nil
	}
	return 0, ErrUnknownKind
}

// DefaultQuestionSet resolves the fixed fallback questions used when
// selection matches nothing for a profile.
func (s *Store) DefaultQuestionSet() []model.QuestionDefinition {
	out := make([]model.QuestionDefinition, 0, len(defaultQuestionSetIDs))
	for _, id := range defaultQuestionSetIDs {
		if q := s.questionByID[id]; q != nil {
			out = append(out, *q)
		}
	}
	return out
}

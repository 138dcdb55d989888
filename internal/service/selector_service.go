package service

import (
	"sort"
	"strings"

	"climatewise/internal/catalog"
	"climatewise/internal/model"
)

// SelectorService picks the personalized question set for a profile
type SelectorService struct {
	catalog *catalog.Store
}

// NewSelectorService creates a new selector service
func NewSelectorService(cat *catalog.Store) *SelectorService {
	return &SelectorService{catalog: cat}
}

// SelectQuestions returns up to count questions relevant to the profile.
// Matching is a union, not an intersection: a question qualifies if it
// matches the profile's category, OR its location, OR its industry, OR one
// of its interests. A location or interest match can therefore pull in a
// question outside the user's category; that breadth is intentional.
// Results are de-duplicated and ordered by descending priority (stable, so
// ties keep their match order). May return fewer than count, or none.
func (s *SelectorService) SelectQuestions(profile *model.UserProfile, count int) []model.QuestionDefinition {
	if count < 1 {
		return nil
	}

	var candidates []model.QuestionDefinition
	questions := s.catalog.Questions()

	for _, q := range questions {
		if q.IsActive && q.HasCategory(profile.Category) {
			candidates = append(candidates, q)
		}
	}

	for _, q := range questions {
		if q.IsActive && matchesLocation(q.Locations, profile.State, profile.City) {
			candidates = append(candidates, q)
		}
	}

	if profile.Industry != "" {
		for _, q := range questions {
			if q.IsActive && matchesIndustry(q.Industries, profile.Industry) {
				candidates = append(candidates, q)
			}
		}
	}

	for _, interest := range profile.Interests {
		for _, q := range questions {
			if q.IsActive && containsString(q.Interests, interest) {
				candidates = append(candidates, q)
			}
		}
	}

	seen := make(map[string]bool, len(candidates))
	unique := candidates[:0]
	for _, q := range candidates {
		if seen[q.ID] {
			continue
		}
		seen[q.ID] = true
		unique = append(unique, q)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Priority > unique[j].Priority
	})

	if len(unique) > count {
		unique = unique[:count]
	}
	return unique
}

// matchesLocation checks tag intersection with the user's state or city.
func matchesLocation(locations []string, state, city string) bool {
	for _, loc := range locations {
		if (state != "" && loc == state) || (city != "" && loc == city) {
			return true
		}
	}
	return false
}

// matchesIndustry is a case-insensitive substring match in either
// direction, so "Agro Technology" matches a "technology" tag.
func matchesIndustry(industries []string, industry string) bool {
	needle := strings.ToLower(industry)
	for _, tag := range industries {
		t := strings.ToLower(tag)
		if strings.Contains(t, needle) || strings.Contains(needle, t) {
			return true
		}
	}
	return false
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

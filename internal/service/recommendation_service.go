package service

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"climatewise/internal/catalog"
	"climatewise/internal/model"
)

// maxRecommendations caps the personalized recommendation list regardless
// of how many rules fired.
const maxRecommendations = 3

// FactContext names the screen a contextual fact is shown on
type FactContext string

const (
	ContextSurvey      FactContext = "survey"
	ContextCertificate FactContext = "certificate"
	ContextDashboard   FactContext = "dashboard"
)

// RecommendationService produces personalized recommendations and facts
type RecommendationService struct {
	catalog *catalog.Store
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(cat *catalog.Store) *RecommendationService {
	return &RecommendationService{catalog: cat}
}

// RecommendationsFor builds the post-survey recommendation list: one
// score-band entry, an improvement entry when any answer scored 2 or less,
// an excellence entry when any answer hit the maximum, and one category
// entry (neutral default copy for categories without bespoke copy). Capped
// at three in insertion order, no re-sorting.
func (s *RecommendationService) RecommendationsFor(profile *model.UserProfile, score, percentage int, responses []model.SurveyResponse) []model.RecommendationEntry {
	var out []model.RecommendationEntry

	var bandID string
	switch {
	case percentage < 40:
		bandID = catalog.RecScoreLow
	case percentage < 70:
		bandID = catalog.RecScoreMid
	case percentage < 90:
		bandID = catalog.RecScoreHigh
	default:
		bandID = catalog.RecScoreTop
	}
	if e := s.catalog.RecommendationByID(bandID); e != nil {
		out = append(out, interpolate(*e, percentage))
	}

	weakCount := 0
	strongCount := 0
	for _, r := range responses {
		if r.Points <= 2 {
			weakCount++
		}
		if r.Points == model.MaxPointsPerQuestion {
			strongCount++
		}
	}
	if weakCount > 0 {
		if e := s.catalog.RecommendationByID(catalog.RecNeedsImprovement); e != nil {
			out = append(out, interpolate(*e, weakCount))
		}
	}
	if strongCount > 0 {
		if e := s.catalog.RecommendationByID(catalog.RecExcellence); e != nil {
			out = append(out, interpolate(*e, strongCount))
		}
	}

	categoryRec := s.catalog.RecommendationByID(catalog.RecCategoryPrefix + string(profile.Category))
	if categoryRec == nil {
		categoryRec = s.catalog.RecommendationByID(catalog.RecCategoryDefaultID)
	}
	if categoryRec != nil {
		out = append(out, *categoryRec)
	}

	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	return out
}

// CatalogRecommendations returns tag-matched catalog recommendations for
// the dashboard, ordered by descending priority.
func (s *RecommendationService) CatalogRecommendations(profile *model.UserProfile, limit int) []model.RecommendationEntry {
	var out []model.RecommendationEntry
	for _, r := range s.catalog.Recommendations() {
		if matchesProfileTags(profile, r.Categories, r.Locations, r.Industries, r.Interests, r.AgeRanges) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FactsFor returns every fact matching the profile across all dimensions
// (category, state/city location, industry, each interest, age range),
// de-duplicated and ordered by descending priority. Industry and interest
// matching is exact here; only question selection does fuzzy industry
// matching.
func (s *RecommendationService) FactsFor(profile *model.UserProfile) []model.FactEntry {
	var matched []model.FactEntry
	facts := s.catalog.Facts()

	for _, f := range facts {
		if containsCategory(f.Categories, profile.Category) {
			matched = append(matched, f)
		}
	}
	for _, f := range facts {
		if matchesLocation(f.Locations, profile.State, profile.City) {
			matched = append(matched, f)
		}
	}
	if profile.Industry != "" {
		for _, f := range facts {
			if containsString(f.Industries, profile.Industry) {
				matched = append(matched, f)
			}
		}
	}
	for _, interest := range profile.Interests {
		for _, f := range facts {
			if containsString(f.Interests, interest) {
				matched = append(matched, f)
			}
		}
	}
	if profile.AgeRange != "" {
		for _, f := range facts {
			if containsString(f.AgeRanges, profile.AgeRange) {
				matched = append(matched, f)
			}
		}
	}

	seen := make(map[string]bool, len(matched))
	unique := matched[:0]
	for _, f := range matched {
		if seen[f.ID] {
			continue
		}
		seen[f.ID] = true
		unique = append(unique, f)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Priority > unique[j].Priority
	})
	return unique
}

// RandomFact draws one matching fact at random, weighted by priority, or
// nil when nothing matches. Each call draws fresh so a refresh button can
// cycle facts.
func (s *RecommendationService) RandomFact(profile *model.UserProfile) *model.FactEntry {
	facts := s.FactsFor(profile)
	if len(facts) == 0 {
		return nil
	}

	total := 0
	for _, f := range facts {
		total += weightOf(f.Priority)
	}

	n := rand.IntN(total)
	for i := range facts {
		n -= weightOf(facts[i].Priority)
		if n < 0 {
			return &facts[i]
		}
	}
	return &facts[len(facts)-1]
}

// ContextualFacts narrows the matched facts to what a given screen shows:
// survey widgets show interest/industry facts (max 3), certificates show
// location/industry facts (max 2), the dashboard shows the single
// highest-priority fact.
func (s *RecommendationService) ContextualFacts(profile *model.UserProfile, context FactContext) []model.FactEntry {
	facts := s.FactsFor(profile)

	switch context {
	case ContextSurvey:
		return filterByKind(facts, 3, model.FactKindInterest, model.FactKindIndustry)
	case ContextCertificate:
		return filterByKind(facts, 2, model.FactKindLocation, model.FactKindIndustry)
	case ContextDashboard:
		if len(facts) > 1 {
			facts = facts[:1]
		}
		return facts
	}
	return nil
}

func filterByKind(facts []model.FactEntry, limit int, kinds ...model.FactKind) []model.FactEntry {
	var out []model.FactEntry
	for _, f := range facts {
		for _, k := range kinds {
			if f.Kind == k {
				out = append(out, f)
				break
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out
}

// interpolate fills fmt verbs in both language variants of the content.
func interpolate(e model.RecommendationEntry, args ...interface{}) model.RecommendationEntry {
	e.Content.EN = fmt.Sprintf(e.Content.EN, args...)
	e.Content.PT = fmt.Sprintf(e.Content.PT, args...)
	return e
}

func weightOf(priority int) int {
	if priority < 1 {
		return 1
	}
	return priority
}

func containsCategory(categories []model.Category, c model.Category) bool {
	for _, cc := range categories {
		if cc == c {
			return true
		}
	}
	return false
}

func matchesProfileTags(profile *model.UserProfile, categories []model.Category, locations, industries, interests, ageRanges []string) bool {
	if containsCategory(categories, profile.Category) {
		return true
	}
	if matchesLocation(locations, profile.State, profile.City) {
		return true
	}
	if profile.Industry != "" && containsString(industries, profile.Industry) {
		return true
	}
	for _, interest := range profile.Interests {
		if containsString(interests, interest) {
			return true
		}
	}
	if profile.AgeRange != "" && containsString(ageRanges, profile.AgeRange) {
		return true
	}
	return false
}

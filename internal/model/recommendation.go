package model

// PriorityClass is the coarse rank shown as a badge color on the UI.
// Distinct from the integer Priority used for ordering.
type PriorityClass string

const (
	PriorityHigh   PriorityClass = "high"
	PriorityMedium PriorityClass = "medium"
	PriorityLow    PriorityClass = "low"
)

// RecommendationEntry is a piece of personalized advice. Catalog entries
// carry applicability tags; entries generated from survey results carry
// only copy and a priority class.
type RecommendationEntry struct {
	ID            string        `json:"id" bson:"_id"`
	Categories    []Category    `json:"categories,omitempty" bson:"categories,omitempty"`
	Locations     []string      `json:"locations,omitempty" bson:"locations,omitempty"`
	Industries    []string      `json:"industries,omitempty" bson:"industries,omitempty"`
	Interests     []string      `json:"interests,omitempty" bson:"interests,omitempty"`
	AgeRanges     []string      `json:"ageRanges,omitempty" bson:"ageRanges,omitempty"`
	Title         LocalizedText `json:"title" bson:"title"`
	Content       LocalizedText `json:"content" bson:"content"`
	Priority      int           `json:"priority" bson:"priority"`
	PriorityClass PriorityClass `json:"priorityClass" bson:"priorityClass"`
}

// FactKind names the targeting dimension a fact belongs to. Contextual
// displays filter on it (survey widgets show interest/industry facts,
// certificates show location/industry facts).
type FactKind string

const (
	FactKindCategory FactKind = "category"
	FactKindLocation FactKind = "location"
	FactKindIndustry FactKind = "industry"
	FactKindInterest FactKind = "interest"
	FactKindAge      FactKind = "age"
)

// FactEntry is a localized climate fact with applicability tags.
type FactEntry struct {
	ID         string        `json:"id" bson:"_id"`
	Kind       FactKind      `json:"kind" bson:"kind"`
	Categories []Category    `json:"categories,omitempty" bson:"categories,omitempty"`
	Locations  []string      `json:"locations,omitempty" bson:"locations,omitempty"`
	Industries []string      `json:"industries,omitempty" bson:"industries,omitempty"`
	Interests  []string      `json:"interests,omitempty" bson:"interests,omitempty"`
	AgeRanges  []string      `json:"ageRanges,omitempty" bson:"ageRanges,omitempty"`
	Title      LocalizedText `json:"title" bson:"title"`
	Content    LocalizedText `json:"content" bson:"content"`
	Priority   int           `json:"priority" bson:"priority"`
}

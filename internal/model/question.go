package model

// Difficulty grades how advanced a question is
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// MaxPointsPerQuestion is the highest option point value in the catalog.
// Percentage math assumes every question could have scored this much.
const MaxPointsPerQuestion = 6

// LocalizedText holds the en/pt variants of a user-facing string
type LocalizedText struct {
	EN string `json:"en" bson:"en"`
	PT string `json:"pt" bson:"pt"`
}

// Get returns the variant for lang, falling back to English.
func (t LocalizedText) Get(lang Language) string {
	if lang == LanguagePT && t.PT != "" {
		return t.PT
	}
	return t.EN
}

// QuestionOption is one selectable answer with its point value
type QuestionOption struct {
	Value  string        `json:"value" bson:"value"`
	Label  LocalizedText `json:"label" bson:"label"`
	Points int           `json:"points" bson:"points"`
}

// QuestionDefinition is a catalog question with its targeting metadata.
// Created at seed time, read-only afterwards.
type QuestionDefinition struct {
	ID         string           `json:"id" bson:"_id"`
	Categories []Category       `json:"categories" bson:"categories"`
	Locations  []string         `json:"locations,omitempty" bson:"locations,omitempty"`
	Industries []string         `json:"industries,omitempty" bson:"industries,omitempty"`
	Interests  []string         `json:"interests,omitempty" bson:"interests,omitempty"`
	Difficulty Difficulty       `json:"difficulty" bson:"difficulty"`
	Priority   int              `json:"priority" bson:"priority"`
	IsActive   bool             `json:"isActive" bson:"isActive"`
	Text       LocalizedText    `json:"text" bson:"text"`
	Options    []QuestionOption `json:"options" bson:"options"`
	Fact       LocalizedText    `json:"fact" bson:"fact"`
}

// HasCategory reports whether the question targets category c.
func (q *QuestionDefinition) HasCategory(c Category) bool {
	for _, qc := range q.Categories {
		if qc == c {
			return true
		}
	}
	return false
}

// OptionByValue returns the option with the given value, or nil.
func (q *QuestionDefinition) OptionByValue(value string) *QuestionOption {
	for i := range q.Options {
		if q.Options[i].Value == value {
			return &q.Options[i]
		}
	}
	return nil
}

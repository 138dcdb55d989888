package model

import "time"

// SessionState tracks where an in-progress survey is in its lifecycle
type SessionState string

const (
	SessionNotStarted        SessionState = "not_started"
	SessionQuestionsLoading  SessionState = "questions_loading"
	SessionInProgress        SessionState = "in_progress"
	SessionScoring           SessionState = "scoring"
	SessionPersisting        SessionState = "persisting"
	SessionCompleted         SessionState = "completed"
	SessionPersistenceFailed SessionState = "persistence_failed"
)

// Grade is the letter grade derived from the percentage
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// Level is the named band a score falls into
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

// SurveyResponse records one answered question. Points are always derived
// server-side from the matched option, never taken from the caller.
type SurveyResponse struct {
	QuestionID    string `json:"questionId" bson:"questionId"`
	SelectedValue string `json:"selectedValue" bson:"selectedValue"`
	Points        int    `json:"points" bson:"points"`
}

// SurveySession is a completed survey attempt. Immutable after creation;
// a retake creates a new session.
type SurveySession struct {
	ID              string           `json:"id" bson:"_id,omitempty"`
	UserID          string           `json:"userId" bson:"userId"`
	QuestionIDs     []string         `json:"questionIds" bson:"questionIds"`
	Responses       []SurveyResponse `json:"responses" bson:"responses"`
	Score           int              `json:"score" bson:"score"`
	Level           Level            `json:"level" bson:"level"`
	Badge           string           `json:"badge" bson:"badge"`
	Grade           Grade            `json:"grade" bson:"grade"`
	Percentage      int              `json:"percentage" bson:"percentage"`
	CompletedAt     time.Time        `json:"completedAt" bson:"completedAt"`
	CertificateCode string           `json:"certificateCode" bson:"certificateCode"`
}

// ActiveSession is the Redis-held state of a survey in flight. It is never
// written to Mongo; abandoning it before scoring leaves no persisted record.
type ActiveSession struct {
	ID          string                    `json:"id"`
	UserID      string                    `json:"userId"`
	State       SessionState              `json:"state"`
	QuestionIDs []string                  `json:"questionIds"`
	Responses   map[string]SurveyResponse `json:"responses"`
	StartedAt   time.Time                 `json:"startedAt"`
}

// Answered reports whether every presented question has a response.
func (s *ActiveSession) Answered() bool {
	for _, id := range s.QuestionIDs {
		if _, ok := s.Responses[id]; !ok {
			return false
		}
	}
	return len(s.QuestionIDs) > 0
}

// OrderedResponses returns responses in presentation order.
func (s *ActiveSession) OrderedResponses() []SurveyResponse {
	out := make([]SurveyResponse, 0, len(s.Responses))
	for _, id := range s.QuestionIDs {
		if r, ok := s.Responses[id]; ok {
			out = append(out, r)
		}
	}
	return out
}

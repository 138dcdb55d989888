package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"climatewise/internal/cache"
	"climatewise/internal/catalog"
	"climatewise/internal/model"
	"climatewise/internal/repository"
)

// questionsPerSurvey is how many questions a personalized survey presents.
const questionsPerSurvey = 10

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionIncomplete = errors.New("not all questions have been answered")
	ErrUnknownQuestion   = errors.New("question is not part of this session")
	ErrInvalidOption     = errors.New("selected value does not match any option")
)

// sessionTransitions is the survey state machine. Completed is terminal;
// a retake starts a new session instance.
var sessionTransitions = map[model.SessionState][]model.SessionState{
	model.SessionNotStarted:        {model.SessionQuestionsLoading},
	model.SessionQuestionsLoading:  {model.SessionInProgress},
	model.SessionInProgress:        {model.SessionScoring},
	model.SessionScoring:           {model.SessionPersisting},
	model.SessionPersisting:        {model.SessionCompleted, model.SessionPersistenceFailed},
	model.SessionPersistenceFailed: {model.SessionCompleted},
}

func advanceState(s *model.ActiveSession, to model.SessionState) error {
	for _, allowed := range sessionTransitions[s.State] {
		if allowed == to {
			s.State = to
			return nil
		}
	}
	return fmt.Errorf("invalid session transition %s -> %s", s.State, to)
}

// SessionService orchestrates the survey flow: question selection, answer
// collection, scoring, and best-effort persistence of the outcome.
type SessionService struct {
	selector     *SelectorService
	recSvc       *RecommendationService
	certSvc      *CertificateService
	catalog      *catalog.Store
	sessionRepo  repository.SessionRepo
	userRepo     repository.UserRepo
	certRepo     repository.CertificateRepo
	sessionCache cache.SessionCache
	leaderboard  cache.LeaderboardCache
}

// NewSessionService creates a new session service
func NewSessionService(
	selector *SelectorService,
	recSvc *RecommendationService,
	certSvc *CertificateService,
	cat *catalog.Store,
	sessionRepo repository.SessionRepo,
	userRepo repository.UserRepo,
	certRepo repository.CertificateRepo,
	sessionCache cache.SessionCache,
	leaderboard cache.LeaderboardCache,
) *SessionService {
	return &SessionService{
		selector:     selector,
		recSvc:       recSvc,
		certSvc:      certSvc,
		catalog:      cat,
		sessionRepo:  sessionRepo,
		userRepo:     userRepo,
		certRepo:     certRepo,
		sessionCache: sessionCache,
		leaderboard:  leaderboard,
	}
}

// StartResult is returned when a survey session begins
type StartResult struct {
	Session   *model.ActiveSession       `json:"session"`
	Questions []model.QuestionDefinition `json:"questions"`
}

// AnswerResult is returned after recording one answer
type AnswerResult struct {
	Response  model.SurveyResponse `json:"response"`
	Fact      model.LocalizedText  `json:"fact"`
	Answered  int                  `json:"answered"`
	Remaining int                  `json:"remaining"`
}

// CompletionResult is the user-visible outcome of a completed survey
type CompletionResult struct {
	Session         *model.SurveySession        `json:"session"`
	Certificate     *model.CertificateRecord    `json:"certificate"`
	Recommendations []model.RecommendationEntry `json:"recommendations"`
}

// Start selects questions for the profile and opens a new in-progress
// session in Redis. When personalized selection matches nothing, the fixed
// default question set is served instead of failing.
func (s *SessionService) Start(ctx context.Context, profile *model.UserProfile) (*StartResult, error) {
	session := &model.ActiveSession{
		ID:        "s_" + uuid.New().String()[:8],
		UserID:    profile.ID,
		State:     model.SessionNotStarted,
		Responses: make(map[string]model.SurveyResponse),
		StartedAt: time.Now(),
	}

	if err := advanceState(session, model.SessionQuestionsLoading); err != nil {
		return nil, err
	}

	questions := s.selector.SelectQuestions(profile, questionsPerSurvey)
	if len(questions) == 0 {
		log.Printf("selection matched no questions for user %s, serving default set", profile.ID)
		questions = s.catalog.DefaultQuestionSet()
	}

	session.QuestionIDs = make([]string, len(questions))
	for i, q := range questions {
		session.QuestionIDs[i] = q.ID
	}

	if err := advanceState(session, model.SessionInProgress); err != nil {
		return nil, err
	}

	if err := s.sessionCache.Set(ctx, session); err != nil {
		return nil, err
	}

	return &StartResult{Session: session, Questions: questions}, nil
}

// Answer records one response, deriving points from the matched option.
// Revisiting an already-answered question overwrites the prior response.
func (s *SessionService) Answer(ctx context.Context, userID, sessionID, questionID, selectedValue string) (*AnswerResult, error) {
	session, err := s.loadOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != model.SessionInProgress {
		return nil, ErrSessionNotFound
	}

	if !containsString(session.QuestionIDs, questionID) {
		return nil, ErrUnknownQuestion
	}

	question := s.catalog.QuestionByID(questionID)
	if question == nil {
		return nil, ErrUnknownQuestion
	}
	option := question.OptionByValue(selectedValue)
	if option == nil {
		return nil, ErrInvalidOption
	}

	response := model.SurveyResponse{
		QuestionID:    questionID,
		SelectedValue: selectedValue,
		Points:        option.Points,
	}
	session.Responses[questionID] = response

	if err := s.sessionCache.Set(ctx, session); err != nil {
		return nil, err
	}

	return &AnswerResult{
		Response:  response,
		Fact:      question.Fact,
		Answered:  len(session.Responses),
		Remaining: len(session.QuestionIDs) - len(session.Responses),
	}, nil
}

// Complete scores the session, freezes the result, and persists it with a
// best-effort policy: the session document, the user's denormalized score
// fields and the certificate are written independently, and any failure is
// logged without blocking the user-visible result.
func (s *SessionService) Complete(ctx context.Context, profile *model.UserProfile, sessionID string) (*CompletionResult, error) {
	session, err := s.loadOwned(ctx, profile.ID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != model.SessionInProgress {
		return nil, ErrSessionNotFound
	}
	if !session.Answered() {
		return nil, ErrSessionIncomplete
	}

	if err := advanceState(session, model.SessionScoring); err != nil {
		return nil, err
	}

	responses := session.OrderedResponses()
	total := Score(responses)
	percentage := Percentage(total, responses)
	grade := GradeFor(percentage)
	level, badge := LevelForScore(total)
	now := time.Now()

	completed := &model.SurveySession{
		ID:              session.ID,
		UserID:          profile.ID,
		QuestionIDs:     session.QuestionIDs,
		Responses:       responses,
		Score:           total,
		Level:           level,
		Badge:           badge,
		Grade:           grade,
		Percentage:      percentage,
		CompletedAt:     now,
		CertificateCode: NewCertificateCode(now),
	}

	certificate := s.certSvc.BuildCertificate(completed, profile)
	recommendations := s.recSvc.RecommendationsFor(profile, total, percentage, responses)

	if err := advanceState(session, model.SessionPersisting); err != nil {
		return nil, err
	}

	persistFailed := false
	if err := s.sessionRepo.Create(ctx, completed); err != nil {
		log.Printf("best-effort persistence: session %s save failed: %v", completed.ID, err)
		persistFailed = true
	}
	if err := s.userRepo.UpdateSurveyResult(ctx, profile.ID, total, level, badge); err != nil {
		log.Printf("best-effort persistence: user %s result update failed: %v", profile.ID, err)
		persistFailed = true
	}
	if err := s.certRepo.Create(ctx, certificate); err != nil {
		log.Printf("best-effort persistence: certificate %s save failed: %v", certificate.CertificateCode, err)
		persistFailed = true
	}
	if err := s.leaderboard.UpdateScore(ctx, profile.ID, total); err != nil {
		log.Printf("leaderboard update failed for user %s: %v", profile.ID, err)
	}

	if persistFailed {
		if err := advanceState(session, model.SessionPersistenceFailed); err != nil {
			return nil, err
		}
	}
	if err := advanceState(session, model.SessionCompleted); err != nil {
		return nil, err
	}

	if err := s.sessionCache.Delete(ctx, sessionID); err != nil {
		log.Printf("failed to clear active session %s: %v", sessionID, err)
	}

	return &CompletionResult{
		Session:         completed,
		Certificate:     certificate,
		Recommendations: recommendations,
	}, nil
}

// Abandon discards an in-progress session. Nothing has been persisted yet,
// so dropping the cached state is all there is to do.
func (s *SessionService) Abandon(ctx context.Context, userID, sessionID string) error {
	if _, err := s.loadOwned(ctx, userID, sessionID); err != nil {
		return err
	}
	return s.sessionCache.Delete(ctx, sessionID)
}

// History returns the user's completed sessions, newest first.
func (s *SessionService) History(ctx context.Context, userID string) ([]*model.SurveySession, error) {
	return s.sessionRepo.GetByUserID(ctx, userID)
}

// Latest returns the most recent completed session, or nil.
func (s *SessionService) Latest(ctx context.Context, userID string) (*model.SurveySession, error) {
	sessions, err := s.sessionRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return sessions[0], nil
}

func (s *SessionService) loadOwned(ctx context.Context, userID, sessionID string) (*model.ActiveSession, error) {
	session, err := s.sessionCache.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

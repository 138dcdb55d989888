package handler

import (
	"errors"
	"net/http"

	"climatewise/internal/cache"
	"climatewise/internal/model"
	"climatewise/internal/service"
	"climatewise/internal/transport/rest/middleware"
)

// DashboardHandler assembles the dashboard view: the user's current
// standing, the leaderboard, one fact and the tag-matched recommendations.
type DashboardHandler struct {
	authSvc     *service.AuthService
	recSvc      *service.RecommendationService
	leaderboard cache.LeaderboardCache
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(authSvc *service.AuthService, recSvc *service.RecommendationService, leaderboard cache.LeaderboardCache) *DashboardHandler {
	return &DashboardHandler{authSvc: authSvc, recSvc: recSvc, leaderboard: leaderboard}
}

// DashboardResponse is the response body for GET /v1/dashboard
type DashboardResponse struct {
	Score           int                         `json:"score"`
	Level           model.Level                 `json:"level"`
	Badge           string                      `json:"badge"`
	SurveyCompleted bool                        `json:"surveyCompleted"`
	Rank            int64                       `json:"rank"`
	Leaderboard     []cache.LeaderboardEntry    `json:"leaderboard"`
	Fact            *model.FactEntry            `json:"fact,omitempty"`
	Recommendations []model.RecommendationEntry `json:"recommendations"`
}

// Get handles GET /v1/dashboard
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.authSvc.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := &DashboardResponse{
		Score:           profile.Score,
		Level:           profile.Level,
		Badge:           profile.Badge,
		SurveyCompleted: profile.SurveyCompleted,
		Recommendations: h.recSvc.CatalogRecommendations(profile, 3),
	}

	if facts := h.recSvc.ContextualFacts(profile, service.ContextDashboard); len(facts) > 0 {
		resp.Fact = &facts[0]
	}

	// Leaderboard is display-only; serve the dashboard even if Redis is down.
	if top, err := h.leaderboard.GetTop(r.Context(), 10); err == nil {
		resp.Leaderboard = top
	}
	if rank, err := h.leaderboard.GetRank(r.Context(), userID); err == nil {
		resp.Rank = rank
	}

	writeJSON(w, http.StatusOK, resp)
}

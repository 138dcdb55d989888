package handler

import (
	"errors"
	"net/http"

	"climatewise/internal/service"
	"climatewise/internal/transport/rest/middleware"
)

// ContentHandler handles recommendation and fact endpoints
type ContentHandler struct {
	recSvc     *service.RecommendationService
	sessionSvc *service.SessionService
	authSvc    *service.AuthService
}

// NewContentHandler creates a new content handler
func NewContentHandler(recSvc *service.RecommendationService, sessionSvc *service.SessionService, authSvc *service.AuthService) *ContentHandler {
	return &ContentHandler{recSvc: recSvc, sessionSvc: sessionSvc, authSvc: authSvc}
}

// Recommendations handles GET /v1/recommendations. Returns the dynamic
// recommendations for the latest completed session; before any completed
// survey it falls back to tag-matched catalog recommendations.
func (h *ContentHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
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

	latest, err := h.sessionSvc.Latest(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if latest == nil {
		recs := h.recSvc.CatalogRecommendations(profile, 3)
		writeJSON(w, http.StatusOK, map[string]interface{}{"recommendations": recs})
		return
	}

	recs := h.recSvc.RecommendationsFor(profile, latest.Score, latest.Percentage, latest.Responses)
	writeJSON(w, http.StatusOK, map[string]interface{}{"recommendations": recs})
}

// RandomFact handles GET /v1/facts/random
func (h *ContentHandler) RandomFact(w http.ResponseWriter, r *http.Request) {
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

	fact := h.recSvc.RandomFact(profile)
	writeJSON(w, http.StatusOK, map[string]interface{}{"fact": fact})
}

// Facts handles GET /v1/facts?context=survey|certificate|dashboard.
// Without a context it returns every matching fact.
func (h *ContentHandler) Facts(w http.ResponseWriter, r *http.Request) {
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

	context := r.URL.Query().Get("context")
	if context == "" {
		writeJSON(w, http.StatusOK, map[string]interface{}{"facts": h.recSvc.FactsFor(profile)})
		return
	}

	switch service.FactContext(context) {
	case service.ContextSurvey, service.ContextCertificate, service.ContextDashboard:
		facts := h.recSvc.ContextualFacts(profile, service.FactContext(context))
		writeJSON(w, http.StatusOK, map[string]interface{}{"facts": facts})
	default:
		writeError(w, http.StatusBadRequest, "unknown context")
	}
}

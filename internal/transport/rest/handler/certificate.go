package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"climatewise/internal/service"
	"climatewise/internal/transport/rest/middleware"
)

// CertificateHandler handles certificate endpoints
type CertificateHandler struct {
	certSvc *service.CertificateService
}

// NewCertificateHandler creates a new certificate handler
func NewCertificateHandler(certSvc *service.CertificateService) *CertificateHandler {
	return &CertificateHandler{certSvc: certSvc}
}

// Verify handles GET /v1/certificates/verify/{code}. Public, read-only.
func (h *CertificateHandler) Verify(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	cert, err := h.certSvc.Verify(r.Context(), code)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if cert == nil {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"found": false,
			"code":  code,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"found":       true,
		"certificate": cert,
	})
}

// List handles GET /v1/certificates
func (h *CertificateHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	certs, err := h.certSvc.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"certificates": certs})
}

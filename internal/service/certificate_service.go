package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"climatewise/internal/model"
	"climatewise/internal/repository"
)

// CertificateService builds, stores and verifies certificates
type CertificateService struct {
	certRepo repository.CertificateRepo
}

// NewCertificateService creates a new certificate service
func NewCertificateService(certRepo repository.CertificateRepo) *CertificateService {
	return &CertificateService{certRepo: certRepo}
}

// BuildCertificate assembles the immutable certificate record from a
// completed session. Holder fields are snapshotted from the profile as it
// is right now; the record is never refreshed from later profile edits.
func (s *CertificateService) BuildCertificate(session *model.SurveySession, profile *model.UserProfile) *model.CertificateRecord {
	visibility := profile.CertificateVisibility
	if visibility == "" {
		visibility = model.VisibilityPublic
	}

	return &model.CertificateRecord{
		CertificateCode: session.CertificateCode,
		UserID:          profile.ID,
		HolderName:      profile.Name,
		HolderCategory:  profile.Category,
		HolderCity:      profile.City,
		HolderState:     profile.State,
		HolderAgeRange:  profile.AgeRange,
		Score:           session.Score,
		Level:           session.Level,
		Badge:           session.Badge,
		Grade:           session.Grade,
		Percentage:      session.Percentage,
		CompletedAt:     session.CompletedAt,
		Visibility:      visibility,
	}
}

// Verify looks up a certificate by its code. Returns (nil, nil) when the
// code is unknown; the caller turns that into an explicit not-found result.
func (s *CertificateService) Verify(ctx context.Context, code string) (*model.CertificateRecord, error) {
	return s.certRepo.GetByCode(ctx, code)
}

// ListByUser returns the caller's certificates, newest first.
func (s *CertificateService) ListByUser(ctx context.Context, userID string) ([]*model.CertificateRecord, error) {
	return s.certRepo.GetByUserID(ctx, userID)
}

// NewCertificateCode generates a certificate code from a timestamp and a
// random suffix. Uniqueness is probabilistic, not guaranteed; the
// certificates collection uses the code as its primary key, so an insert
// would fail loudly on the astronomically unlikely collision.
func NewCertificateCode(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("CW-%s-%s", now.UTC().Format("20060102150405"), suffix)
}

package service

import (
	"context"
	"log"

	"climatewise/internal/cache"
	"climatewise/internal/repository"
)

// AccountService handles full account deletion, the only path that removes
// certificates.
type AccountService struct {
	userRepo    repository.UserRepo
	sessionRepo repository.SessionRepo
	certRepo    repository.CertificateRepo
	leaderboard cache.LeaderboardCache
}

// NewAccountService creates a new account service
func NewAccountService(
	userRepo repository.UserRepo,
	sessionRepo repository.SessionRepo,
	certRepo repository.CertificateRepo,
	leaderboard cache.LeaderboardCache,
) *AccountService {
	return &AccountService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		certRepo:    certRepo,
		leaderboard: leaderboard,
	}
}

// Delete removes the profile, all sessions and all certificates for a
// user. The profile delete must succeed; the rest is cleaned up
// best-effort and logged, since an orphaned session or leaderboard entry
// is harmless next to a half-deleted account.
func (s *AccountService) Delete(ctx context.Context, userID string) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	if err := s.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
		log.Printf("account deletion: sessions cleanup failed for %s: %v", userID, err)
	}
	if err := s.certRepo.DeleteByUserID(ctx, userID); err != nil {
		log.Printf("account deletion: certificates cleanup failed for %s: %v", userID, err)
	}
	if err := s.leaderboard.Remove(ctx, userID); err != nil {
		log.Printf("account deletion: leaderboard cleanup failed for %s: %v", userID, err)
	}
	return nil
}

package service

import (
	"context"
	"errors"

	"climatewise/internal/cache"
	"climatewise/internal/model"
)

var errFakeDown = errors.New("store unavailable")

type fakeUserRepo struct {
	users      map[string]*model.UserProfile
	failWrites bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.UserProfile)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.UserProfile) error {
	if r.failWrites {
		return errFakeDown
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.UserProfile, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *model.UserProfile) error {
	if r.failWrites {
		return errFakeDown
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateSurveyResult(ctx context.Context, userID string, score int, level model.Level, badge string) error {
	if r.failWrites {
		return errFakeDown
	}
	if u, ok := r.users[userID]; ok {
		u.Score = score
		u.Level = level
		u.Badge = badge
		u.SurveyCompleted = true
	}
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type fakeSessionRepo struct {
	sessions   []*model.SurveySession
	failWrites bool
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *model.SurveySession) error {
	if r.failWrites {
		return errFakeDown
	}
	r.sessions = append(r.sessions, session)
	return nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id string) (*model.SurveySession, error) {
	for _, s := range r.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) GetByUserID(ctx context.Context, userID string) ([]*model.SurveySession, error) {
	var out []*model.SurveySession
	for i := len(r.sessions) - 1; i >= 0; i-- {
		if r.sessions[i].UserID == userID {
			out = append(out, r.sessions[i])
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) DeleteByUserID(ctx context.Context, userID string) error {
	kept := r.sessions[:0]
	for _, s := range r.sessions {
		if s.UserID != userID {
			kept = append(kept, s)
		}
	}
	r.sessions = kept
	return nil
}

type fakeCertRepo struct {
	certs      map[string]*model.CertificateRecord
	failWrites bool
}

func newFakeCertRepo() *fakeCertRepo {
	return &fakeCertRepo{certs: make(map[string]*model.CertificateRecord)}
}

func (r *fakeCertRepo) Create(ctx context.Context, cert *model.CertificateRecord) error {
	if r.failWrites {
		return errFakeDown
	}
	r.certs[cert.CertificateCode] = cert
	return nil
}

func (r *fakeCertRepo) GetByCode(ctx context.Context, code string) (*model.CertificateRecord, error) {
	return r.certs[code], nil
}

func (r *fakeCertRepo) GetByUserID(ctx context.Context, userID string) ([]*model.CertificateRecord, error) {
	var out []*model.CertificateRecord
	for _, c := range r.certs {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCertRepo) DeleteByUserID(ctx context.Context, userID string) error {
	for code, c := range r.certs {
		if c.UserID == userID {
			delete(r.certs, code)
		}
	}
	return nil
}

type fakeSessionCache struct {
	sessions map[string]*model.ActiveSession
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{sessions: make(map[string]*model.ActiveSession)}
}

func (c *fakeSessionCache) Set(ctx context.Context, session *model.ActiveSession) error {
	copied := *session
	c.sessions[session.ID] = &copied
	return nil
}

func (c *fakeSessionCache) Get(ctx context.Context, sessionID string) (*model.ActiveSession, error) {
	s, ok := c.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (c *fakeSessionCache) Delete(ctx context.Context, sessionID string) error {
	delete(c.sessions, sessionID)
	return nil
}

type fakeLeaderboard struct {
	scores map[string]int
}

func newFakeLeaderboard() *fakeLeaderboard {
	return &fakeLeaderboard{scores: make(map[string]int)}
}

func (l *fakeLeaderboard) UpdateScore(ctx context.Context, userID string, score int) error {
	l.scores[userID] = score
	return nil
}

func (l *fakeLeaderboard) GetTop(ctx context.Context, limit int) ([]cache.LeaderboardEntry, error) {
	return nil, nil
}

func (l *fakeLeaderboard) GetRank(ctx context.Context, userID string) (int64, error) {
	return -1, nil
}

func (l *fakeLeaderboard) Remove(ctx context.Context, userID string) error {
	delete(l.scores, userID)
	return nil
}

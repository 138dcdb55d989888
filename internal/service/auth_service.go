package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"climatewise/internal/model"
	"climatewise/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidProfile     = errors.New("invalid profile fields")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles account creation, login and profile updates
type AuthService struct {
	userRepo  repository.UserRepo
	jwtSecret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepo, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
	}
}

// Register creates a new account and returns a token plus the profile.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || req.Name == "" {
		return nil, ErrInvalidProfile
	}
	if !model.ValidCategory(req.Category) {
		return nil, ErrInvalidProfile
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	language := req.Language
	if language == "" {
		language = model.LanguageEN
	}
	visibility := req.CertificateVisibility
	if visibility == "" {
		visibility = model.VisibilityPublic
	}

	user := &model.UserProfile{
		ID:                    "user_" + uuid.New().String()[:8],
		Email:                 email,
		PasswordHash:          string(hash),
		Name:                  req.Name,
		Category:              req.Category,
		State:                 req.State,
		City:                  req.City,
		AgeRange:              req.AgeRange,
		Industry:              req.Industry,
		Interests:             req.Interests,
		Language:              language,
		CertificateVisibility: visibility,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{Token: token, Profile: user}, nil
}

// Login validates credentials and returns a token plus the profile.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{Token: token, Profile: user}, nil
}

// GetProfile returns the profile for a user id.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies a partial edit. Completed sessions and issued
// certificates are untouched; only future surveys see the new attributes.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, update *model.ProfileUpdate) (*model.UserProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Category != nil {
		if !model.ValidCategory(*update.Category) {
			return nil, ErrInvalidProfile
		}
		user.Category = *update.Category
	}
	if update.State != nil {
		user.State = *update.State
	}
	if update.City != nil {
		user.City = *update.City
	}
	if update.AgeRange != nil {
		user.AgeRange = *update.AgeRange
	}
	if update.Industry != nil {
		user.Industry = *update.Industry
	}
	if update.Interests != nil {
		user.Interests = *update.Interests
	}
	if update.Language != nil {
		user.Language = *update.Language
	}
	if update.CertificateVisibility != nil {
		user.CertificateVisibility = *update.CertificateVisibility
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ValidateToken validates a JWT and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) generateToken(userID string) (string, error) {
	claims := &model.UserClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

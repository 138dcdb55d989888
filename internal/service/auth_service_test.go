package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"climatewise/internal/model"
)

const testJWTSecret = "test-secret"

func registerRequest() *model.RegisterRequest {
	return &model.RegisterRequest{
		Email:    "Ana@Example.com",
		Password: "hunter2climate",
		Name:     "Ana",
		Category: model.CategoryStudent,
		State:    "SP",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWTSecret)
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerRequest())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("no token issued")
	}
	if !strings.HasPrefix(resp.Profile.ID, "user_") {
		t.Fatalf("user id %q missing prefix", resp.Profile.ID)
	}
	if resp.Profile.Email != "ana@example.com" {
		t.Fatalf("email not normalized: %q", resp.Profile.Email)
	}
	if resp.Profile.PasswordHash == "hunter2climate" || resp.Profile.PasswordHash == "" {
		t.Fatal("password stored unhashed")
	}
	if resp.Profile.Language != model.LanguageEN || resp.Profile.CertificateVisibility != model.VisibilityPublic {
		t.Fatalf("defaults not applied: %+v", resp.Profile)
	}

	// Login with a differently-cased email and the original password.
	login, err := svc.Login(ctx, "ANA@example.COM", "hunter2climate")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.Profile.ID != resp.Profile.ID {
		t.Fatal("login returned a different profile")
	}

	if _, err := svc.Login(ctx, "ana@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "hunter2climate"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWTSecret)
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerRequest()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, registerRequest()); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email: got %v", err)
	}

	bad := registerRequest()
	bad.Email = "other@example.com"
	bad.Category = model.Category("astronaut")
	if _, err := svc.Register(ctx, bad); !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("invalid category: got %v", err)
	}

	empty := registerRequest()
	empty.Email = "other@example.com"
	empty.Password = ""
	if _, err := svc.Register(ctx, empty); !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("empty password: got %v", err)
	}
}

func TestValidateToken(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), testJWTSecret)
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerRequest())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	claims, err := svc.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != resp.Profile.ID {
		t.Fatalf("claims user %q, want %q", claims.UserID, resp.Profile.ID)
	}

	if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage token: got %v", err)
	}

	// A token signed with another secret must be rejected.
	other := NewAuthService(newFakeUserRepo(), "different-secret")
	if _, err := other.ValidateToken(resp.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("foreign token: got %v", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testJWTSecret)
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerRequest())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	city := "Campinas"
	interests := []string{"water", "recycling"}
	updated, err := svc.UpdateProfile(ctx, resp.Profile.ID, &model.ProfileUpdate{
		City:      &city,
		Interests: &interests,
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.City != "Campinas" || len(updated.Interests) != 2 {
		t.Fatalf("update not applied: %+v", updated)
	}
	// Untouched fields keep their values.
	if updated.Name != "Ana" || updated.State != "SP" {
		t.Fatalf("partial update clobbered fields: %+v", updated)
	}

	badCategory := model.Category("astronaut")
	if _, err := svc.UpdateProfile(ctx, resp.Profile.ID, &model.ProfileUpdate{Category: &badCategory}); !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("invalid category update: got %v", err)
	}

	if _, err := svc.UpdateProfile(ctx, "user_missing", &model.ProfileUpdate{City: &city}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown user: got %v", err)
	}
}

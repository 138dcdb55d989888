package model

import "time"

// Category is the audience segment a user belongs to
type Category string

const (
	CategoryStudent      Category = "student"
	CategoryEmployee     Category = "employee"
	CategoryCompanyOwner Category = "company_owner"
	CategoryGovernment   Category = "government"
)

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryStudent, CategoryEmployee, CategoryCompanyOwner, CategoryGovernment:
		return true
	}
	return false
}

// Language selects which localized variant of catalog text is shown
type Language string

const (
	LanguageEN Language = "en"
	LanguagePT Language = "pt"
)

// Visibility controls whether a certificate is publicly verifiable by listing
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// UserProfile is a registered user. Score, Level, Badge and SurveyCompleted
// are denormalized from the latest completed survey so the dashboard reads
// one document.
type UserProfile struct {
	ID                    string     `json:"id" bson:"_id,omitempty"`
	Email                 string     `json:"email" bson:"email"`
	PasswordHash          string     `json:"-" bson:"passwordHash"`
	Name                  string     `json:"name" bson:"name"`
	Category              Category   `json:"category" bson:"category"`
	State                 string     `json:"state" bson:"state"`
	City                  string     `json:"city" bson:"city"`
	AgeRange              string     `json:"ageRange" bson:"ageRange"`
	Industry              string     `json:"industry,omitempty" bson:"industry,omitempty"`
	Interests             []string   `json:"sustainabilityInterests,omitempty" bson:"sustainabilityInterests,omitempty"`
	Language              Language   `json:"language" bson:"language"`
	CertificateVisibility Visibility `json:"certificateVisibility" bson:"certificateVisibility"`
	Score                 int        `json:"score" bson:"score"`
	Level                 Level      `json:"level,omitempty" bson:"level,omitempty"`
	Badge                 string     `json:"badge,omitempty" bson:"badge,omitempty"`
	SurveyCompleted       bool       `json:"surveyCompleted" bson:"surveyCompleted"`
	CreatedAt             time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// ProfileUpdate is a partial profile edit; nil fields are left unchanged.
// Email and password changes go through separate flows.
type ProfileUpdate struct {
	Name                  *string     `json:"name,omitempty"`
	Category              *Category   `json:"category,omitempty"`
	State                 *string     `json:"state,omitempty"`
	City                  *string     `json:"city,omitempty"`
	AgeRange              *string     `json:"ageRange,omitempty"`
	Industry              *string     `json:"industry,omitempty"`
	Interests             *[]string   `json:"sustainabilityInterests,omitempty"`
	Language              *Language   `json:"language,omitempty"`
	CertificateVisibility *Visibility `json:"certificateVisibility,omitempty"`
}

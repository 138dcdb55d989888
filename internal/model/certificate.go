package model

import "time"

// CertificateRecord is the immutable proof of a completed survey. The
// holder fields are a snapshot of the profile at issuance and are never
// refreshed from later profile edits.
type CertificateRecord struct {
	CertificateCode string     `json:"certificateCode" bson:"_id"`
	UserID          string     `json:"userId" bson:"userId"`
	HolderName      string     `json:"holderName" bson:"holderName"`
	HolderCategory  Category   `json:"holderCategory" bson:"holderCategory"`
	HolderCity      string     `json:"holderCity" bson:"holderCity"`
	HolderState     string     `json:"holderState" bson:"holderState"`
	HolderAgeRange  string     `json:"holderAgeRange" bson:"holderAgeRange"`
	Score           int        `json:"score" bson:"score"`
	Level           Level      `json:"level" bson:"level"`
	Badge           string     `json:"badge" bson:"badge"`
	Grade           Grade      `json:"grade" bson:"grade"`
	Percentage      int        `json:"percentage" bson:"percentage"`
	CompletedAt     time.Time  `json:"completedAt" bson:"completedAt"`
	Visibility      Visibility `json:"visibility" bson:"visibility"`
}

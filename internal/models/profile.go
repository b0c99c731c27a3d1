package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is the dating profile, one-to-one with a provider User.
// It must exist before its owner can swipe, message or upload photos.
type Profile struct {
	BaseModel
	UserID      string     `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	DisplayName string     `gorm:"size:100" json:"display_name"`
	Bio         string     `gorm:"size:1000" json:"bio"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Gender      string     `gorm:"size:32" json:"gender"`
	City        string     `gorm:"size:100" json:"city"`

	// Selected interest names, denormalized as a JSON array.
	Interests datatypes.JSON `json:"interests,omitempty"`

	IsProfileComplete  bool   `gorm:"default:false" json:"is_profile_complete"`
	IsVisible          bool   `gorm:"default:false" json:"is_visible"`
	VerificationStatus string `gorm:"size:16;default:unverified" json:"verification_status"`
}

package dto

import "time"

// ProfileUpsertRequest is the typed body for POST /api/profile.
// Optional fields are pointers: nil means "leave unchanged" on update,
// which replaces the old ad hoc empty-string-to-null coercion with an
// explicit schema.
type ProfileUpsertRequest struct {
	DisplayName *string    `json:"display_name,omitempty" validate:"omitempty,max=100"`
	Bio         *string    `json:"bio,omitempty" validate:"omitempty,max=1000"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Gender      *string    `json:"gender,omitempty" validate:"omitempty,max=32"`
	City        *string    `json:"city,omitempty" validate:"omitempty,max=100"`
	Interests   []string   `json:"interests,omitempty" validate:"omitempty,max=30,dive,max=100"`

	IsProfileComplete *bool `json:"is_profile_complete,omitempty"`
	IsVisible         *bool `json:"is_visible,omitempty"`
}

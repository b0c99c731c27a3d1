package models

import "time"

// User is the identity record owned by the identity provider. Rows are
// created on signup by the provider; this service only reads them and
// references their IDs.
type User struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

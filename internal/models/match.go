package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Match is an undirected pairing of two profiles created when both have
// liked each other. Profile IDs are stored in lexicographic order so
// the (profile1_id, profile2_id) unique index holds for either swipe
// direction.
type Match struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Profile1ID string    `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair,priority:1" json:"profile1_id"`
	Profile2ID string    `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair,priority:2" json:"profile2_id"`
	MatchedAt  time.Time `json:"matched_at"`

	Profile1 *Profile `gorm:"foreignKey:Profile1ID" json:"profile1,omitempty"`
	Profile2 *Profile `gorm:"foreignKey:Profile2ID" json:"profile2,omitempty"`
}

func (m *Match) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.MatchedAt.IsZero() {
		m.MatchedAt = time.Now().UTC()
	}
	return nil
}

// OrderedPair normalizes two profile IDs into match column order.
func OrderedPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

// Involves reports whether the given profile is one of the two sides.
func (m *Match) Involves(profileID string) bool {
	return m.Profile1ID == profileID || m.Profile2ID == profileID
}

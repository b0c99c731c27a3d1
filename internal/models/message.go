package models

// Message belongs to a Match, ordered by creation time within it.
type Message struct {
	BaseModel
	MatchID  string `gorm:"type:uuid;not null;index" json:"match_id"`
	SenderID string `gorm:"type:uuid;not null" json:"sender_id"`
	Content  string `gorm:"size:4000;not null" json:"content"`
	Type     string `gorm:"size:16;default:text" json:"type"`
	IsRead   bool   `gorm:"default:false" json:"is_read"`
}

package models

// Block is a directed edge: blocker no longer sees blocked in discovery.
type Block struct {
	BaseModel
	BlockerID string `gorm:"type:uuid;not null;uniqueIndex:idx_blocks_pair,priority:1" json:"blocker_id"`
	BlockedID string `gorm:"type:uuid;not null;uniqueIndex:idx_blocks_pair,priority:2" json:"blocked_id"`
}

// Report is a complaint filed by one profile about another. Review
// happens out-of-band; this service only records them.
type Report struct {
	BaseModel
	ReporterID  string `gorm:"type:uuid;not null;index" json:"reporter_id"`
	ReportedID  string `gorm:"type:uuid;not null;index" json:"reported_id"`
	Reason      string `gorm:"size:100;not null" json:"reason"`
	Description string `gorm:"size:2000" json:"description,omitempty"`
	Status      string `gorm:"size:16;default:pending" json:"status"`
}

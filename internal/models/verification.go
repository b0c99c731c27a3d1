package models

// Verification is a document submitted for identity review. The object
// lives in the private verification-documents bucket; FileURL holds the
// last issued signed link and is refreshed on every listing.
type Verification struct {
	BaseModel
	UserID      string `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        string `gorm:"size:32;not null" json:"verification_type"`
	FileURL     string `gorm:"size:1000" json:"file_url"`
	StoragePath string `gorm:"size:500;not null" json:"storage_path"`
	Status      string `gorm:"size:16;default:pending" json:"status"`
}

package models

// ProfilePhoto is the metadata row for an object in the profile-photos
// bucket. URL is the public link; StoragePath is the bucket key used
// for deletion.
type ProfilePhoto struct {
	BaseModel
	ProfileID   string `gorm:"type:uuid;not null;index" json:"profile_id"`
	URL         string `gorm:"size:500;not null" json:"url"`
	StoragePath string `gorm:"size:500;not null" json:"storage_path"`
	Position    int    `gorm:"default:0" json:"position"`
	IsProfile   bool   `gorm:"default:false" json:"is_profile"`
	IsVerified  bool   `gorm:"default:false" json:"is_verified"`
}

package models

// Interest is static reference data shown in profile editing.
type Interest struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	Category string `gorm:"size:100;not null;index" json:"category"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

package model

// PPBRecord is a row of the mirrored regulator license registry. Read-only after seeding.
type PPBRecord struct {
	ID            uint     `json:"id" gorm:"primaryKey"`
	Name          string   `json:"name" gorm:"size:255;not null"`
	Email         string   `json:"email" gorm:"size:255"`
	LicenseNumber string   `json:"licenseNumber" gorm:"size:64;uniqueIndex;not null"`
	Role          UserRole `json:"role" gorm:"not null"`
}

// TableName pins the table name so every driver agrees on it.
func (PPBRecord) TableName() string {
	return "ppb_records"
}

package model

import "time"

// Company a host organization offering internship positions.
type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	AFM       string    `gorm:"column:afm;size:16;not null;uniqueIndex" json:"AFM"`
	Email     string    `gorm:"size:255" json:"email"`
	Telephone string    `gorm:"size:32" json:"telephone"`
	City      string    `gorm:"size:128" json:"city"`
	Address   string    `gorm:"size:255" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name.
func (Company) TableName() string {
	return "companies"
}

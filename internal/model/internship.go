package model

import "time"

// Internship a student's placement record. Each student holds at most one.
type Internship struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	UserID     uint              `gorm:"not null;uniqueIndex" json:"user_id"`
	CompanyID  *uint             `json:"company_id"`
	Program    InternshipProgram `gorm:"size:64;not null" json:"program"`
	Status     InternshipStatus  `gorm:"size:32;not null;default:submit_start_files" json:"status"`
	Department string            `gorm:"size:128" json:"department"`
	Supervisor string            `gorm:"size:255" json:"supervisor"`
	StartDate  *time.Time        `gorm:"type:date" json:"start_date"`
	EndDate    *time.Time        `gorm:"type:date" json:"end_date"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// TableName overrides the table name.
func (Internship) TableName() string {
	return "internships"
}

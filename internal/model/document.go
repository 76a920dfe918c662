package model

import "time"

// Dikaiologitiko a submitted document file. A student may hold at most one
// file per document type.
type Dikaiologitiko struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	UserID         uint            `gorm:"not null;uniqueIndex:uq_dikaiologitika_user_type" json:"user_id"`
	Type           DocumentType    `gorm:"size:64;not null;uniqueIndex:uq_dikaiologitika_user_type" json:"type"`
	FileName       string          `gorm:"size:255;not null" json:"file_name"`
	FilePath       string          `gorm:"size:512;not null" json:"-"`
	Phase          SubmissionPhase `gorm:"column:submission_phase;size:8;not null" json:"submission_phase"`
	SubmissionTime time.Time       `gorm:"not null" json:"submission_time"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName overrides the table name.
func (Dikaiologitiko) TableName() string {
	return "dikaiologitika"
}

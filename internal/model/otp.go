package model

import "time"

// OTP a one-time code tied to a student. The student's company uses it to
// unlock the company questionnaire for that placement.
type OTP struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Code       string    `gorm:"size:6;not null;index" json:"code"`
	ExpiryDate time.Time `gorm:"not null" json:"expiry_date"`
}

// TableName overrides the table name.
func (OTP) TableName() string {
	return "otps"
}

// Expired reports whether the code is past its expiry.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiryDate)
}

package model

import "time"

// User an account provisioned through institutional SSO login.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	AM              string    `gorm:"column:am;size:32" json:"AM"`
	FirstName       string    `gorm:"size:128;not null" json:"first_name"`
	LastName        string    `gorm:"size:128;not null" json:"last_name"`
	Role            Role      `gorm:"size:32;not null;default:student" json:"role"`
	Department      string    `gorm:"size:128" json:"department"`
	RegYear         string    `gorm:"column:reg_year;size:16" json:"reg_year"`
	Email           string    `gorm:"size:255" json:"email"`
	TelephoneNumber string    `gorm:"size:32" json:"telephone_number"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName overrides the table name.
func (User) TableName() string {
	return "users"
}

// FullName returns "LastName FirstName" for display and exports.
func (u *User) FullName() string {
	return u.LastName + " " + u.FirstName
}

package dto

import "time"

// ValidateOTPRequest payload a company submits to unlock the questionnaire.
type ValidateOTPRequest struct {
	Code string `json:"code" binding:"required,len=6,numeric"`
}

// OTPResponse the generated code a student shares with their company.
type OTPResponse struct {
	Code       string    `json:"code"`
	ExpiryDate time.Time `json:"expiry_date"`
}

// ValidateOTPResponse the capability token minted after a valid code, with
// the internship the questionnaire concerns.
type ValidateOTPResponse struct {
	Token        string     `json:"token"`
	UserID       uint       `json:"user_id"`
	InternshipID uint       `json:"internship_id"`
	StudentName  string     `json:"student_name"`
	CompanyName  string     `json:"company_name"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	ExpiresAt    time.Time  `json:"expires_at"`
}

package dto

import (
	"time"

	"github.com/michaeltheo/placements-backend/internal/model"
)

// UpsertInternshipRequest payload for creating or updating the caller's
// internship record.
type UpsertInternshipRequest struct {
	Program    model.InternshipProgram `json:"program" binding:"required"`
	CompanyID  *uint                   `json:"company_id"`
	Department string                  `json:"department"`
	Supervisor string                  `json:"supervisor"`
	StartDate  *time.Time              `json:"start_date"`
	EndDate    *time.Time              `json:"end_date"`
}

// UpdateStatusRequest payload for moving an internship to a new status.
type UpdateStatusRequest struct {
	Status model.InternshipStatus `json:"status" binding:"required"`
}

// ListInternshipsQuery filters for the admin internship listing.
type ListInternshipsQuery struct {
	Program    model.InternshipProgram `form:"program"`
	Status     model.InternshipStatus  `form:"status"`
	Department string                  `form:"department"`
	Search     string                  `form:"search"`
	Page       int                     `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize   int                     `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// InternshipResponse internship fields exposed over the API.
type InternshipResponse struct {
	ID                 uint                    `json:"id"`
	UserID             uint                    `json:"user_id"`
	CompanyID          *uint                   `json:"company_id"`
	Program            model.InternshipProgram `json:"program"`
	ProgramDescription string                  `json:"program_description"`
	Status             model.InternshipStatus  `json:"status"`
	StatusDescription  string                  `json:"status_description"`
	Department         string                  `json:"department"`
	Supervisor         string                  `json:"supervisor"`
	StartDate          *time.Time              `json:"start_date"`
	EndDate            *time.Time              `json:"end_date"`
	CreatedAt          time.Time               `json:"created_at"`
	User               *UserResponse           `json:"user,omitempty"`
	Company            *CompanyResponse        `json:"company,omitempty"`
}

// ToInternshipResponse converts an internship model, including any preloaded
// user and company.
func ToInternshipResponse(in *model.Internship) InternshipResponse {
	resp := InternshipResponse{
		ID:                 in.ID,
		UserID:             in.UserID,
		CompanyID:          in.CompanyID,
		Program:            in.Program,
		ProgramDescription: in.Program.Description(),
		Status:             in.Status,
		StatusDescription:  in.Status.Description(),
		Department:         in.Department,
		Supervisor:         in.Supervisor,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		CreatedAt:          in.CreatedAt,
	}
	if in.User != nil {
		u := ToUserResponse(in.User)
		resp.User = &u
	}
	if in.Company != nil {
		c := ToCompanyResponse(in.Company)
		resp.Company = &c
	}
	return resp
}

// ToInternshipResponses converts a slice of internship models.
func ToInternshipResponses(internships []model.Internship) []InternshipResponse {
	out := make([]InternshipResponse, len(internships))
	for i := range internships {
		out[i] = ToInternshipResponse(&internships[i])
	}
	return out
}

package dto

import (
	"time"

	"github.com/michaeltheo/placements-backend/internal/model"
)

// CreateCompanyRequest payload for registering a host company.
type CreateCompanyRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	AFM       string `json:"AFM" binding:"required,min=9,max=9,numeric"`
	Email     string `json:"email" binding:"omitempty,email"`
	Telephone string `json:"telephone" binding:"omitempty,max=20"`
	City      string `json:"city" binding:"omitempty,max=128"`
	Address   string `json:"address" binding:"omitempty,max=255"`
}

// UpdateCompanyRequest payload for editing a company. Zero-valued fields are
// left unchanged.
type UpdateCompanyRequest struct {
	Name      string `json:"name" binding:"omitempty,max=255"`
	Email     string `json:"email" binding:"omitempty,email"`
	Telephone string `json:"telephone" binding:"omitempty,max=20"`
	City      string `json:"city" binding:"omitempty,max=128"`
	Address   string `json:"address" binding:"omitempty,max=255"`
}

// ListCompaniesQuery filters for the company listing.
type ListCompaniesQuery struct {
	Search   string `form:"search"`
	City     string `form:"city"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// CompanyResponse company fields exposed over the API.
type CompanyResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	AFM       string    `json:"AFM"`
	Email     string    `json:"email"`
	Telephone string    `json:"telephone"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCompanyResponse converts a company model.
func ToCompanyResponse(c *model.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		AFM:       c.AFM,
		Email:     c.Email,
		Telephone: c.Telephone,
		City:      c.City,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

// ToCompanyResponses converts a slice of company models.
func ToCompanyResponses(companies []model.Company) []CompanyResponse {
	out := make([]CompanyResponse, len(companies))
	for i := range companies {
		out[i] = ToCompanyResponse(&companies[i])
	}
	return out
}

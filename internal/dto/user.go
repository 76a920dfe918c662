package dto

import (
	"time"

	"github.com/michaeltheo/placements-backend/internal/model"
)

// UpdateProfileRequest fields a logged-in user may change on their own record.
type UpdateProfileRequest struct {
	TelephoneNumber string `json:"telephone_number" binding:"required,min=10,max=20"`
	Email           string `json:"email" binding:"omitempty,email"`
}

// AdminUpdateUserRequest fields an administrator may change on any user.
type AdminUpdateUserRequest struct {
	FirstName       string     `json:"first_name" binding:"omitempty,max=128"`
	LastName        string     `json:"last_name" binding:"omitempty,max=128"`
	Role            model.Role `json:"role" binding:"omitempty"`
	Department      string     `json:"department" binding:"omitempty,max=128"`
	TelephoneNumber string     `json:"telephone_number" binding:"omitempty,max=20"`
	Email           string     `json:"email" binding:"omitempty,email"`
}

// ListUsersQuery filters for the admin user listing.
type ListUsersQuery struct {
	Role     model.Role `form:"role"`
	Search   string     `form:"search"`
	Page     int        `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// UserResponse user fields exposed over the API.
type UserResponse struct {
	ID              uint       `json:"id"`
	AM              string     `json:"AM"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Role            model.Role `json:"role"`
	Department      string     `json:"department"`
	RegYear         string     `json:"reg_year"`
	Email           string     `json:"email"`
	TelephoneNumber string     `json:"telephone_number"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ToUserResponse converts a user model.
func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		AM:              u.AM,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Role:            u.Role,
		Department:      u.Department,
		RegYear:         u.RegYear,
		Email:           u.Email,
		TelephoneNumber: u.TelephoneNumber,
		CreatedAt:       u.CreatedAt,
	}
}

// ToUserResponses converts a slice of user models.
func ToUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}

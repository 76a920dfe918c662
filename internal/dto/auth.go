package dto

// LoginURLResponse the IdP redirect target for starting a login.
type LoginURLResponse struct {
	URL string `json:"url"`
}

// LoginResponse the authenticated user returned after the SSO callback.
type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
}

package dto

// LoginRequest represents HTTP request to authenticate a user
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token and basic identity.
type LoginResponse struct {
	UserID      uint   `json:"id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken"`
}

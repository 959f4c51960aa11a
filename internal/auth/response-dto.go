package auth

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// represents the authentication response
type AuthResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	TokenPair
}

package auth

// TokenRequest is the body of POST /jwt.
type TokenRequest struct {
	Email string `json:"email" binding:"required" example:"a@x.com"`
}

// TokenResponse mirrors the original server's {success:true} payload.
type TokenResponse struct {
	Success bool `json:"success" example:"true"`
}

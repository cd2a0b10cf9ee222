package dto

// SignupRequest carries the fields required to create a farmer account.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Country  string `json:"country" binding:"required"`
	Region   string `json:"region" binding:"required"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupResponse returns the sanitized user plus a ready-to-use session token,
// so a fresh account never exists without a usable session.
type SignupResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// LoginResponse mirrors the response shape the frontend stores as its
// session snapshot.
type LoginResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

// ExchangeCodeRequest is the body of the Google sign-in code exchange.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

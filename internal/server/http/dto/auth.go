package dto

// RegisterRequest describes the registration payload.
type RegisterRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Country  string `json:"country"`
}

// LoginRequest describes the login payload.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

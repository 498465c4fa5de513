package handler

// --- Request / Response types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Bio      string `json:"bio"      validate:"omitempty,max=500"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateDetailsRequest struct {
	Name  string `json:"name"  validate:"omitempty,max=50"`
	Email string `json:"email" validate:"omitempty,email"`
	Bio   string `json:"bio"   validate:"omitempty,max=500"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6"`
}

// userResponse is the public projection of a user. The password hash never
// leaves the service.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

package dto

// AdminLoginRequest is the body of POST /api/admin/login
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest creates a family-member account
type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Phone     string `json:"phone"`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleAuthRequest carries the Google ID token credential
type GoogleAuthRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// UpdateUserRequest carries partial profile updates
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Password  *string `json:"password"`
}

// ShortlistRequest replaces the caller's saved-room list
type ShortlistRequest struct {
	RoomIDs []int64 `json:"roomIds"`
}

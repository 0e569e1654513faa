package models

type User struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	Phone          string `json:"phone"`
	Password       string `json:"password,omitempty"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"address,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	IsAdmin        int    `json:"is_admin"`
}

// RegisterRequest mirrors the fields the backend expects on sign-up.
// The phone number doubles as the owner key for the local cart.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Phone    string `json:"phone" validate:"required,len=10,numeric"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Address  string `json:"address,omitempty"`
}

type Credentials struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	ID             int    `json:"id" validate:"required"`
	Username       string `json:"username" validate:"required"`
	Phone          string `json:"phone" validate:"required,len=10,numeric"`
	Password       string `json:"password,omitempty"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Address        string `json:"address,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

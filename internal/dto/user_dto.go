package dto

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type DeleteUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateUserResponse struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
}

type LoginResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform failure shape. InvalidEntries is present
// only for validation failures.
type ErrorResponse struct {
	Name           string   `json:"name"`
	Message        string   `json:"message"`
	InvalidEntries []string `json:"inValidEntries,omitempty"`
}

package models

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreatedResponse acknowledges a successful create with the server-assigned id.
type CreatedResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// SuccessResponse acknowledges a successful update or delete.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// LoginResponse carries the issued token and the public user projection.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// UploadResponse carries the public URL of a freshly uploaded image.
type UploadResponse struct {
	URL string `json:"url"`
}

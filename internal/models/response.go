package models

// ErrorResponse is the JSON body returned on any request failure.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UserResponse wraps a user payload on successful auth and update requests.
type UserResponse struct {
	User *User `json:"user"`
}

// Package dto provides data transfer objects for the user HTTP layer.
package dto

// UserResponse represents the API response for a registered user. It exposes
// only the public identity fields; credentials never leave the service.
type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

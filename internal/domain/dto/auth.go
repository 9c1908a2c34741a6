package dto

import "github.com/u4rad/camp-service/internal/domain/model"

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate a coordinator
// @Example {"username": "coordinator", "password": "s3cret!"}
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"coordinator"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
} // @name LoginRequest

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	errs := model.ValidationErrors{}
	if r.Username == "" {
		errs["username"] = "this field is required"
	}
	if r.Password == "" {
		errs["password"] = "this field is required"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with JWT tokens
type LoginResponse struct {
	Token        string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string       `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresIn    int64        `json:"expires_in" example:"900"`
	User         UserResponse `json:"user"`
} // @name LoginResponse

// TokenPair represents access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
}

// Claims represents the identity carried by an access token.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// UserResponse represents user information in API responses.
type UserResponse struct {
	ID          int64  `json:"id" example:"1"`
	Username    string `json:"username" example:"coordinator"`
	CompanyName string `json:"company_name" example:"U4RAD Diagnostics"`
} // @name UserResponse

// NewUserResponse converts a user to its public representation.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, CompanyName: u.CompanyName}
}

package identity

import (
	"time"

	"github.com/carbyfah/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// LoginInput carries the credentials of a sign-in attempt
type LoginInput struct {
	Username string
	Password string
	IP       string
}

// UserInfo is the account view returned to the frontend
type UserInfo struct {
	ID          uuid.UUID            `json:"id"`
	Username    string               `json:"username"`
	Email       string               `json:"email,omitempty"`
	AccessLevel identity.AccessLevel `json:"nivel_acceso"`
	ProfileID   *uuid.UUID           `json:"perfil_id,omitempty"`
	LastAccess  string               `json:"ultimo_acceso"`
}

// LoginResult is returned after a successful sign-in
type LoginResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"usuario"`
}

// RefreshTokenInput carries a refresh request
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult is returned after a token refresh
type RefreshTokenResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// LogoutInput carries a sign-out request
type LogoutInput struct {
	UserID      uuid.UUID
	AccessJTI   string
	AccessExp   time.Time
	AllSessions bool
}

// ChangePasswordInput carries a password change request
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// CreateUserRequest carries an account creation request
type CreateUserRequest struct {
	Username    string               `json:"username"`
	Password    string               `json:"password"`
	Email       string               `json:"email"`
	AccessLevel identity.AccessLevel `json:"nivel_acceso"`
	ProfileID   *uuid.UUID           `json:"perfil_id"`
	CreatedBy   *uuid.UUID           `json:"-"`
}

// UpdateUserRequest carries an account update request
type UpdateUserRequest struct {
	Email       string               `json:"email"`
	AccessLevel identity.AccessLevel `json:"nivel_acceso"`
	UpdatedBy   *uuid.UUID           `json:"-"`
}

// UserListFilter carries listing options for accounts
type UserListFilter struct {
	Search   string
	Page     int
	PageSize int
}

// ToUserInfo converts a domain user to its response form
func ToUserInfo(user *identity.User, now time.Time) UserInfo {
	return UserInfo{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		AccessLevel: user.AccessLevel,
		ProfileID:   user.ProfileID,
		LastAccess:  user.LastAccessDescription(now),
	}
}

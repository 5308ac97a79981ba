package domain

import "time"

// AuthProvider identifies how a user signs in.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents an application user. Only a hash of the active refresh
// token is stored; the plaintext exists client-side only.
type User struct {
	UserID                string       `json:"userID"`
	Username              string       `json:"username"`
	Name                  string       `json:"name"`
	Email                 string       `json:"email,omitempty"`
	PasswordHash          string       `json:"-"`
	AuthProvider          AuthProvider `json:"authProvider"`
	ProviderUserID        string       `json:"-"`
	RefreshTokenHash      string       `json:"-"`
	RefreshTokenExpiresAt *time.Time   `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// GoogleUserInfo mirrors the payload returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

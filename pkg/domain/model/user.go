package model

import (
	"context"
	"errors"
	"time"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrInvalidBearerToken  = errors.New("invalid bearer token")
)

type UserProfile struct {
	UserID    string    `firestore:"userId" json:"userId"`
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email" json:"email"`
	PhoneNo   string    `firestore:"phoneNo" json:"phoneNo"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

type UserRepository interface {
	Create(ctx context.Context, profile *UserProfile) error
	Find(ctx context.Context, userID string) (*UserProfile, error)
	Update(ctx context.Context, profile *UserProfile) error
	Delete(ctx context.Context, userID string) error
}

// Credentials is the token set issued by the identity provider on sign-in
// and refresh.
type Credentials struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// AuthToken is a verified bearer token reduced to what the domain needs.
type AuthToken struct {
	UID   string
	Email string
}

// IdentityProvider is the boundary to the external authentication service.
type IdentityProvider interface {
	CreateUser(ctx context.Context, name, email, password, phoneNo string) (string, error)
	SignIn(ctx context.Context, email, password string) (*Credentials, error)
	Refresh(ctx context.Context, refreshToken string) (*Credentials, error)
	VerifyToken(ctx context.Context, idToken string) (*AuthToken, error)
	RevokeTokens(ctx context.Context, uid string) error
	DeleteUser(ctx context.Context, uid string) error
}

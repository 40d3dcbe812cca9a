// ABOUTME: Authenticated user identity and sign-in result models.
// ABOUTME: A non-nil ProfileID gates access to all profile-scoped resources.
package models

import "time"

// AuthUser is the authenticated account. ProfileID is nil until the user
// has created a training profile.
type AuthUser struct {
	ID        string
	Email     string
	Name      string
	ProfileID *string
}

// AuthResult is the payload of a successful sign-in, sign-up, or refresh.
// Token is an opaque bearer credential.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      AuthUser
}

package entity

import "time"

// Identity is the authenticated caller as asserted by the identity provider's session.
type Identity struct {
	ID            string
	Email         string
	EmailVerified bool
	FirstName     string
	LastName      string
	FullName      string
	Username      string
}

// Profile is the local cache of identity-provider profile data. It is never used for authorization.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileFromIdentity builds the profile record mirrored from a session identity.
func ProfileFromIdentity(identity *Identity) *Profile {
	fullName := identity.FullName
	if fullName == "" {
		fullName = joinName(identity.FirstName, identity.LastName)
	}

	return &Profile{
		ID:        identity.ID,
		Email:     NormalizeEmail(identity.Email),
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		FullName:  fullName,
		Username:  identity.Username,
	}
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

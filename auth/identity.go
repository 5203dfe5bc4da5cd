package auth

import (
	"github.com/golang-jwt/jwt/v4"
)

// Kind tags the identity variant used for every authorization decision.
type Kind string

const (
	KindAnonymous Kind = ""
	KindStudent   Kind = "student"
	KindMentor    Kind = "mentor"
	KindAdmin     Kind = "admin"
)

// Identity is the effective identity resolved from the two credential
// sources: the signed session cookie (student/mentor) and the admin cookie.
// The admin cookie short-circuits the session in every decision.
type Identity struct {
	Kind       Kind
	Subject    string
	Name       string
	Email      string
	RollNumber string
	// AccessToken carries the OAuth access token for mentor sessions.
	AccessToken string
}

func Anonymous() Identity {
	return Identity{Kind: KindAnonymous}
}

func Admin(adminID string) Identity {
	return Identity{Kind: KindAdmin, Subject: adminID, Name: "Admin"}
}

func (i Identity) IsAdmin() bool {
	return i.Kind == KindAdmin
}

func (i Identity) IsAuthenticated() bool {
	return i.Kind != KindAnonymous
}

// DisplayName mirrors what the navigation header shows.
func (i Identity) DisplayName() string {
	if i.Kind == KindAdmin {
		return "Admin"
	}
	if i.Name != "" {
		return i.Name
	}
	return i.Email
}

// Home is the dashboard a session-derived role belongs on. Admin and
// anonymous identities have no role home; the guard never sends them here.
func (i Identity) Home() string {
	switch i.Kind {
	case KindMentor:
		return "/mentor"
	case KindStudent:
		return "/student"
	default:
		return "/"
	}
}

// FromSessionClaims builds an identity from a verified session token. A
// session whose role claim is absent or malformed still yields a student
// identity: possession of a valid token is the stronger signal.
func FromSessionClaims(claims jwt.MapClaims) Identity {
	id := Identity{Kind: KindStudent}
	if role, ok := claims["role"].(string); ok {
		switch Kind(role) {
		case KindStudent, KindMentor, KindAdmin:
			id.Kind = Kind(role)
		}
	}
	if sub, ok := claims["sub"].(string); ok {
		id.Subject = sub
	}
	if name, ok := claims["name"].(string); ok {
		id.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	if roll, ok := claims["roll_number"].(string); ok {
		id.RollNumber = roll
	}
	if tok, ok := claims["access_token"].(string); ok {
		id.AccessToken = tok
	}
	return id
}

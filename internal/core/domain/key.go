package domain

import "strings"

// Key is a natural unique key of an entity, e.g. {Field: "username", Value: "alice"}.
type Key struct {
	Field string
	Value string
}

// Identity is the authenticated caller attached by the gateway.
type Identity struct {
	ID   string
	Role string
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// CanActOn reports whether the caller may act on the user record with the given id.
func (i Identity) CanActOn(id string) bool {
	return i.ID == id || i.IsAdmin()
}

func blank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) == ""
}

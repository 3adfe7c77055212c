package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	StatusActive   = "active"
	StatusDisabled = "disabled"
)

const ResourceUser = "user"

// User models a registered account. Username and email are unique across all users.
type User struct {
	ID           string
	Firstname    string
	Lastname     string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) EntityID() string { return u.ID }

// UniqueKeys lists username before email; duplicate checks report the first hit.
func (u User) UniqueKeys() []Key {
	return []Key{
		{Field: "username", Value: u.Username},
		{Field: "email", Value: u.Email},
	}
}

// UserPatch is a partial update of a user. Nil fields are left untouched.
// PasswordHash must already be hashed by the caller.
type UserPatch struct {
	Firstname    *string
	Lastname     *string
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *string
	Status       *string
}

func (p UserPatch) IsEmpty() bool {
	return p.Firstname == nil && p.Lastname == nil && p.Username == nil &&
		p.Email == nil && p.PasswordHash == nil && p.Role == nil && p.Status == nil
}

// Privileged reports whether the patch touches fields only an admin may change.
func (p UserPatch) Privileged() bool {
	return p.Role != nil || p.Status != nil
}

func (p UserPatch) Validate() error {
	switch {
	case blank(p.Firstname):
		return Invalid("firstname", "firstname must not be empty")
	case blank(p.Lastname):
		return Invalid("lastname", "lastname must not be empty")
	case blank(p.Username):
		return Invalid("username", "username must not be empty")
	case blank(p.Email):
		return Invalid("email", "email must not be empty")
	case blank(p.PasswordHash):
		return Invalid("password", "password must not be empty")
	}
	if p.Role != nil && *p.Role != RoleUser && *p.Role != RoleAdmin {
		return Invalid("role", "role must be one of: user admin")
	}
	if p.Status != nil && *p.Status != StatusActive && *p.Status != StatusDisabled {
		return Invalid("status", "status must be one of: active disabled")
	}
	return nil
}

func (p UserPatch) UniqueKeys() []Key {
	var keys []Key
	if p.Username != nil {
		keys = append(keys, Key{Field: "username", Value: *p.Username})
	}
	if p.Email != nil {
		keys = append(keys, Key{Field: "email", Value: *p.Email})
	}
	return keys
}

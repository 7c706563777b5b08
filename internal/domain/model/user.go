package model

import "time"

// User represents a registered customer of the marketplace.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	IsActive     bool
	// rawRoles holds the roles exactly as stored; business rules derive the
	// effective set from it, see DeriveEffectiveRoles.
	rawRoles  []Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser constructs a user with the given stored role list.
func NewUser(id int64, email string, rawRoles []Role) *User {
	return &User{ID: id, Email: email, IsActive: true, rawRoles: append([]Role(nil), rawRoles...)}
}

// RawRoles returns the stored role list without business-rule adjustments.
// This is the serialization/persistence view of roles.
func (u *User) RawRoles() []Role {
	return append([]Role(nil), u.rawRoles...)
}

// SetRawRoles replaces the stored role list.
func (u *User) SetRawRoles(roles []Role) {
	u.rawRoles = append([]Role(nil), roles...)
}

// EffectiveRoles returns the roles the user acts with, derived from the
// stored list.
func (u *User) EffectiveRoles() []Role {
	return DeriveEffectiveRoles(u.rawRoles)
}

// IsAdmin reports whether the stored roles include the admin role.
func (u *User) IsAdmin() bool {
	return hasRole(u.rawRoles, RoleAdmin)
}

// Package domain holds the entities the admin API serves. Entities carry no
// behaviour beyond small predicates; persistence and transport shapes live
// in their own layers.
package domain

import "time"

// RoleAdmin is the role gating the /admin endpoint group.
const RoleAdmin = "Admin"

// User is the stored identity record. PasswordHash is write-only from the
// API's point of view: no response shape ever includes it.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	Email        string
	Disabled     bool
	Scopes       []string
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InRole reports whether the user carries the named role.
func (u User) InRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user carries the Admin role.
func (u User) IsAdmin() bool { return u.InRole(RoleAdmin) }

// UserPatch is a partial update. Nil fields are left untouched, mirroring
// document-store $set semantics.
type UserPatch struct {
	FullName *string
	Email    *string
	Disabled *bool
	Scopes   *[]string
	Roles    *[]string
}

// IsEmpty reports whether the patch would change nothing.
func (p UserPatch) IsEmpty() bool {
	return p.FullName == nil && p.Email == nil && p.Disabled == nil &&
		p.Scopes == nil && p.Roles == nil
}

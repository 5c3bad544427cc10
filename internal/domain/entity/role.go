// Package entity contains the core business objects of the marketplace.
package entity

import "slices"

// Role is the account kind. It selects which profile payload a User carries.
type Role string

const (
	RoleCustomer        Role = "CUSTOMER"
	RoleStore           Role = "STORE"
	RoleAdmin           Role = "ADMIN"
	RoleDeliveryPartner Role = "DELIVERY_PARTNER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStore, RoleAdmin, RoleDeliveryPartner:
		return true
	default:
		return false
	}
}

// IsSelfRegistrable reports whether accounts of this role may sign up through the public register endpoint.
func (r Role) IsSelfRegistrable() bool {
	return r == RoleCustomer || r == RoleStore
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

package domain

// RoleAdmin is the only role the API recognises. A user without it is a
// regular customer.
const RoleAdmin = "admin"

// IsAdminRole reports whether role equals RoleAdmin exactly.
func IsAdminRole(role string) bool {
	return role == RoleAdmin
}

package entity

// Role is derived from group membership on every request, never stored.
type Role string

const (
	RoleManager      Role = "manager"
	RoleDeliveryCrew Role = "delivery_crew"
	RoleCustomer     Role = "customer"
)

// RoleFromGroups maps a user's memberships to the single role the API cares
// about. Staff accounts count as managers. Manager wins over delivery crew
// when a user somehow ends up in both groups.
func RoleFromGroups(isStaff bool, groups []Group) Role {
	if isStaff {
		return RoleManager
	}
	role := RoleCustomer
	for _, g := range groups {
		switch g.Name {
		case GroupManager:
			return RoleManager
		case GroupDeliveryCrew:
			role = RoleDeliveryCrew
		}
	}
	return role
}

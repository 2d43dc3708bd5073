package domain

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// DefaultRole is assigned at registration when no role is supplied.
const DefaultRole = RoleUser

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Permission is a typed capability granted through a role.
type Permission string

const (
	PermUsersCreate   Permission = "users:create"
	PermUsersRead     Permission = "users:read"
	PermUsersUpdate   Permission = "users:update"
	PermUsersDelete   Permission = "users:delete"
	PermAdminAccess   Permission = "admin:access"
	PermProfileRead   Permission = "profile:read"
	PermProfileUpdate Permission = "profile:update"
)

// rolePermissions is the static role→permission table. Roles are closed, so
// the mapping is fixed at compile time rather than stored or configured.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermUsersCreate,
		PermUsersRead,
		PermUsersUpdate,
		PermUsersDelete,
		PermAdminAccess,
		PermProfileRead,
		PermProfileUpdate,
	},
	RoleUser: {
		PermProfileRead,
		PermProfileUpdate,
	},
}

// Permissions returns the capabilities granted to the role.
func (r Role) Permissions() []Permission {
	return rolePermissions[r]
}

// Has reports whether the role grants the permission.
func (r Role) Has(p Permission) bool {
	for _, granted := range rolePermissions[r] {
		if granted == p {
			return true
		}
	}
	return false
}

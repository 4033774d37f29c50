// Package authz holds the static role-permission model. The table is built
// once at init and read-only afterwards; permission strings are part of the
// external contract and must not change.
package authz

type Role string

const (
	RoleUser      Role = "user"
	RolePremium   Role = "premium"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Permission is an action:resource identifier checked by request gates.
type Permission string

const (
	PermReadSongs            Permission = "read:songs"
	PermReadPlaylists        Permission = "read:playlists"
	PermCreatePlaylists      Permission = "create:playlists"
	PermUpdateOwnPlaylists   Permission = "update:own_playlists"
	PermDeleteOwnPlaylists   Permission = "delete:own_playlists"
	PermReadOwnProfile       Permission = "read:own_profile"
	PermUpdateOwnProfile     Permission = "update:own_profile"
	PermDownloadSongs        Permission = "download:songs"
	PermOfflinePlaylists     Permission = "offline:playlists"
	PermHighQualityStreaming Permission = "high_quality:streaming"
	PermModerateContent      Permission = "moderate:content"
	PermManageUsers          Permission = "manage:users"
	PermReadAllPlaylists     Permission = "read:all_playlists"
	PermUpdateAllPlaylists   Permission = "update:all_playlists"
	PermDeleteAllPlaylists   Permission = "delete:all_playlists"
	PermManageSongs          Permission = "manage:songs"
	PermManageSystem         Permission = "manage:system"
	PermViewAnalytics        Permission = "view:analytics"
	PermManageRoles          Permission = "manage:roles"
)

var basePermissions = []Permission{
	PermReadSongs,
	PermReadPlaylists,
	PermCreatePlaylists,
	PermUpdateOwnPlaylists,
	PermDeleteOwnPlaylists,
	PermReadOwnProfile,
	PermUpdateOwnProfile,
}

// rolePermissions is cumulative: each role carries everything the roles below
// it have. Edits must preserve that; authz tests assert it.
var rolePermissions = map[Role][]Permission{
	RoleUser: basePermissions,
	RolePremium: append(append([]Permission{}, basePermissions...),
		PermDownloadSongs,
		PermOfflinePlaylists,
		PermHighQualityStreaming,
	),
	RoleModerator: append(append([]Permission{}, basePermissions...),
		PermModerateContent,
		PermManageUsers,
		PermReadAllPlaylists,
		PermUpdateAllPlaylists,
		PermDeleteAllPlaylists,
	),
	RoleAdmin: append(append([]Permission{}, basePermissions...),
		PermModerateContent,
		PermManageUsers,
		PermReadAllPlaylists,
		PermUpdateAllPlaylists,
		PermDeleteAllPlaylists,
		PermManageSongs,
		PermManageSystem,
		PermViewAnalytics,
		PermManageRoles,
	),
}

var roleLevels = map[Role]int{
	RoleUser:      1,
	RolePremium:   2,
	RoleModerator: 3,
	RoleAdmin:     4,
}

var permissionIndex map[Role]map[Permission]struct{}

func init() {
	permissionIndex = make(map[Role]map[Permission]struct{}, len(rolePermissions))
	for role, perms := range rolePermissions {
		set := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			set[p] = struct{}{}
		}
		permissionIndex[role] = set
	}
}

func AllRoles() []Role {
	return []Role{RoleUser, RolePremium, RoleModerator, RoleAdmin}
}

func ValidRole(role Role) bool {
	_, ok := roleLevels[role]
	return ok
}

// Level returns the ordering rank of a role; unknown roles rank 0.
func Level(role Role) int {
	return roleLevels[role]
}

// Permissions returns a copy of the role's permission set, empty for unknown
// roles.
func Permissions(role Role) []Permission {
	perms := rolePermissions[role]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether the role grants the permission. Unknown roles
// and unknown permissions are both false.
func HasPermission(role Role, permission Permission) bool {
	_, ok := permissionIndex[role][permission]
	return ok
}

// HasHigherOrEqualRole reports whether role ranks at least minRole.
func HasHigherOrEqualRole(role, minRole Role) bool {
	return Level(role) >= Level(minRole)
}

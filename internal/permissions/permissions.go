// Package permissions defines the closed set of permissions and the static
// role-to-permission table built at startup.
package permissions

// Permission names one capability gating a single operation.
type Permission string

const (
	ViewTrails             Permission = "view_trails"
	ViewIDTrails           Permission = "view_id_trails"
	CreateTrails           Permission = "create_trails"
	EditTrails             Permission = "edit_trails"
	DeleteTrails           Permission = "delete_trails"
	ViewAllFeatures        Permission = "view_all_features"
	SearchFeatures         Permission = "search_features"
	AddFeature             Permission = "add_feature"
	UpdateFeatureByName    Permission = "update_feature_by_name"
	DeleteFeature          Permission = "delete_feature"
	AddFeatureToTrail      Permission = "add_feature_to_trail"
	RemoveFeatureFromTrail Permission = "remove_feature_from_trail"
)

// Roles form a closed set: every user is exactly one of these.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// shared is granted to every role.
var shared = []Permission{
	ViewTrails,
	CreateTrails,
	AddFeature,
	SearchFeatures,
	EditTrails,
	ViewAllFeatures,
	AddFeatureToTrail,
	RemoveFeatureFromTrail,
}

// adminOnly extends the shared set for admins.
var adminOnly = []Permission{
	ViewIDTrails,
	UpdateFeatureByName,
	DeleteFeature,
	DeleteTrails,
}

var rolePermissions = buildTable()

func buildTable() map[string]map[Permission]struct{} {
	table := map[string]map[Permission]struct{}{
		RoleUser:  permissionSet(shared),
		RoleAdmin: permissionSet(append(append([]Permission{}, shared...), adminOnly...)),
	}
	return table
}

func permissionSet(perms []Permission) map[Permission]struct{} {
	set := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// RoleHas reports whether the given role is granted the permission.
// Unknown roles hold no permissions.
func RoleHas(role string, perm Permission) bool {
	set, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, ok = set[perm]
	return ok
}

// ForRole returns the permissions granted to the role. Unknown roles get none.
func ForRole(role string) []Permission {
	set, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	perms := make([]Permission, 0, len(set))
	for p := range set {
		perms = append(perms, p)
	}
	return perms
}

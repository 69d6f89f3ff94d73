package configs

// Permission names a protected mutation. The role mapping below is static
// configuration; user administration itself lives in Keycloak.
type Permission string

const (
	PermTrackUpdate                   Permission = "track:update"
	PermTrackUpdateStatus             Permission = "track:update:status"
	PermTrackUpdatePartner            Permission = "track:update:partner"
	PermTrackUpdateProduct            Permission = "track:update:product"
	PermTrackUpdateProductCategory    Permission = "track:update:product-category"
	PermTrackUpdateCompletionApproval Permission = "track:update:completion_approval"

	PermAppointmentUpdate       Permission = "appointment:update"
	PermAppointmentUpdateDate   Permission = "appointment:update:date"
	PermAppointmentUpdateStatus Permission = "appointment:update:status"

	PermAvailabilityRead   Permission = "availability:read"
	PermAvailabilityUpdate Permission = "availability:update"
)

// Role names.
const (
	RoleBeheerder      = "beheerder"
	RoleSenioradviseur = "senioradviseur"
	RoleAdviseur       = "adviseur"
	RolePartner        = "partner"
	RoleOndernemer     = "ondernemer"
)

var adviseurPermissions = []Permission{
	PermTrackUpdate,
	PermTrackUpdateStatus,
	PermTrackUpdatePartner,
	PermTrackUpdateProduct,
	PermTrackUpdateProductCategory,
	PermTrackUpdateCompletionApproval,
	PermAppointmentUpdate,
	PermAppointmentUpdateDate,
	PermAppointmentUpdateStatus,
	PermAvailabilityRead,
	PermAvailabilityUpdate,
}

var rolePermissions = map[string][]Permission{
	RoleBeheerder:      adviseurPermissions,
	RoleSenioradviseur: adviseurPermissions,
	RoleAdviseur:       adviseurPermissions,
	RolePartner: {
		PermTrackUpdateStatus,
		PermAppointmentUpdate,
	},
	RoleOndernemer: {},
}

// RoleHasPermission reports whether the named role carries the permission.
// Unknown roles carry nothing.
func RoleHasPermission(role string, permission Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

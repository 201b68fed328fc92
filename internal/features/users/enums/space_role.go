package users_enums

type SpaceRole string

const (
	SpaceRoleOwner    SpaceRole = "SPACE_OWNER"
	SpaceRoleAdmin    SpaceRole = "SPACE_ADMIN"
	SpaceRoleCaster   SpaceRole = "SPACE_CASTER"
	SpaceRoleObserver SpaceRole = "SPACE_OBSERVER"
)

// IsValid validates the SpaceRole
func (r SpaceRole) IsValid() bool {
	switch r {
	case SpaceRoleOwner, SpaceRoleAdmin, SpaceRoleCaster, SpaceRoleObserver:
		return true
	default:
		return false
	}
}

// IsAssignable reports whether an operator may grant this role when
// approving a join request. Ownership is never granted this way.
func (r SpaceRole) IsAssignable() bool {
	return r == SpaceRoleAdmin || r == SpaceRoleCaster || r == SpaceRoleObserver
}

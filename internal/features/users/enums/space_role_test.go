package users_enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SpaceRole_IsValid(t *testing.T) {
	for _, role := range []SpaceRole{
		SpaceRoleOwner, SpaceRoleAdmin, SpaceRoleCaster, SpaceRoleObserver,
	} {
		assert.True(t, role.IsValid(), "%s must be valid", role)
	}

	assert.False(t, SpaceRole("MODERATOR").IsValid())
	assert.False(t, SpaceRole("").IsValid())
}

func Test_SpaceRole_OwnerIsNotAssignable(t *testing.T) {
	assert.False(t, SpaceRoleOwner.IsAssignable(),
		"ownership is set at space creation, never granted by approval")

	assert.True(t, SpaceRoleAdmin.IsAssignable())
	assert.True(t, SpaceRoleCaster.IsAssignable())
	assert.True(t, SpaceRoleObserver.IsAssignable())
}

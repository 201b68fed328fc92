package staff_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StaffRole_IsValid(t *testing.T) {
	assert.True(t, StaffRoleCaster.IsValid())
	assert.True(t, StaffRoleObserver.IsValid())
	assert.False(t, StaffRole("producer").IsValid())
}

func Test_Validate_RequiresNameAndKnownRole(t *testing.T) {
	member := StaffMember{Name: "Alex", Role: StaffRoleCaster}
	assert.NoError(t, member.Validate())

	member.Name = ""
	assert.Error(t, member.Validate())

	member.Name = "Alex"
	member.Role = StaffRole("host")
	assert.Error(t, member.Validate())
}

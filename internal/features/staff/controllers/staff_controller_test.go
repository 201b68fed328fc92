package staff_controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	spaces_controllers "casterdesk-backend/internal/features/spaces/controllers"
	spaces_testing "casterdesk-backend/internal/features/spaces/testing"
	staff_dto "casterdesk-backend/internal/features/staff/dto"
	staff_models "casterdesk-backend/internal/features/staff/models"
	users_testing "casterdesk-backend/internal/features/users/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRouter() *gin.Engine {
	return spaces_testing.CreateTestRouter(
		spaces_controllers.GetSpaceController(),
		GetStaffController(),
	)
}

func Test_GetSpaceStaff_FiltersByRole(t *testing.T) {
	router := createTestRouter()

	owner := users_testing.CreateTestUser()
	space := spaces_testing.CreateTestSpace("Production Crew", owner, router)

	caster := staff_dto.CreateStaffMemberRequestDTO{
		Name: "Riven",
		Role: staff_models.StaffRoleCaster,
	}
	observer := staff_dto.CreateStaffMemberRequestDTO{
		Name: "Moss",
		Role: staff_models.StaffRoleObserver,
	}

	for _, member := range []staff_dto.CreateStaffMemberRequestDTO{caster, observer} {
		w := spaces_testing.MakeAPIRequest(router, "POST",
			fmt.Sprintf("/api/v1/spaces/%s/staff", space.ID),
			"Bearer "+owner.Token, member)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := spaces_testing.MakeAPIRequest(router, "GET",
		fmt.Sprintf("/api/v1/spaces/%s/staff?role=caster", space.ID),
		"Bearer "+owner.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response staff_dto.ListStaffResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Staff, 1)
	assert.Equal(t, "Riven", response.Staff[0].Name)
	assert.Equal(t, staff_models.StaffRoleCaster, response.Staff[0].Role)

	w = spaces_testing.MakeAPIRequest(router, "GET",
		fmt.Sprintf("/api/v1/spaces/%s/staff", space.ID),
		"Bearer "+owner.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Staff, 2)
}

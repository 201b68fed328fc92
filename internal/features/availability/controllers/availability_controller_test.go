package availability_controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	availability_dto "casterdesk-backend/internal/features/availability/dto"
	availability_models "casterdesk-backend/internal/features/availability/models"
	spaces_controllers "casterdesk-backend/internal/features/spaces/controllers"
	spaces_models "casterdesk-backend/internal/features/spaces/models"
	spaces_testing "casterdesk-backend/internal/features/spaces/testing"
	staff_controllers "casterdesk-backend/internal/features/staff/controllers"
	staff_dto "casterdesk-backend/internal/features/staff/dto"
	staff_models "casterdesk-backend/internal/features/staff/models"
	users_dto "casterdesk-backend/internal/features/users/dto"
	users_testing "casterdesk-backend/internal/features/users/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRouter() *gin.Engine {
	return spaces_testing.CreateTestRouter(
		spaces_controllers.GetSpaceController(),
		staff_controllers.GetStaffController(),
		GetAvailabilityController(),
	)
}

func createTestStaffMember(
	t *testing.T,
	router *gin.Engine,
	space *spaces_models.Space,
	owner *users_dto.SignInResponseDTO,
	role staff_models.StaffRole,
) *staff_models.StaffMember {
	request := staff_dto.CreateStaffMemberRequestDTO{Name: "Arden", Role: role}

	w := spaces_testing.MakeAPIRequest(router, "POST",
		fmt.Sprintf("/api/v1/spaces/%s/staff", space.ID),
		"Bearer "+owner.Token, request)
	require.Equal(t, http.StatusOK, w.Code)

	var member staff_models.StaffMember
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &member))

	return &member
}

func Test_SaveSlot_SameKeyUpdatesInPlace(t *testing.T) {
	router := createTestRouter()

	owner := users_testing.CreateTestUser()
	space := spaces_testing.CreateTestSpace("Calendar Crew", owner, router)
	member := createTestStaffMember(t, router, space, owner, staff_models.StaffRoleCaster)

	first := availability_dto.SaveSlotRequestDTO{
		StaffID:   member.ID,
		Date:      "2026-03-02",
		StartTime: "10:00",
		EndTime:   "12:00",
		Status:    availability_models.SlotStatusAvailable,
	}

	w := spaces_testing.MakeAPIRequest(router, "POST",
		fmt.Sprintf("/api/v1/spaces/%s/availability", space.ID),
		"Bearer "+owner.Token, first)
	require.Equal(t, http.StatusOK, w.Code)

	var created availability_models.AvailabilitySlot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Same (staff, date, startTime) key: the existing row is rewritten,
	// not duplicated.
	second := first
	second.EndTime = "14:00"
	second.Status = availability_models.SlotStatusBusy
	second.Note = "covering the afternoon block"

	w = spaces_testing.MakeAPIRequest(router, "POST",
		fmt.Sprintf("/api/v1/spaces/%s/availability", space.ID),
		"Bearer "+owner.Token, second)
	require.Equal(t, http.StatusOK, w.Code)

	var updated availability_models.AvailabilitySlot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)

	w = spaces_testing.MakeAPIRequest(router, "GET",
		fmt.Sprintf("/api/v1/spaces/%s/availability?from=2026-03-01&to=2026-03-08", space.ID),
		"Bearer "+owner.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response availability_dto.ListSlotsResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Slots, 1)
	assert.Equal(t, "14:00", response.Slots[0].EndTime)
	assert.Equal(t, availability_models.SlotStatusBusy, response.Slots[0].Status)

	// A different start time is a different key and inserts a new row.
	third := first
	third.StartTime = "15:00"
	third.EndTime = "17:00"

	w = spaces_testing.MakeAPIRequest(router, "POST",
		fmt.Sprintf("/api/v1/spaces/%s/availability", space.ID),
		"Bearer "+owner.Token, third)
	require.Equal(t, http.StatusOK, w.Code)

	w = spaces_testing.MakeAPIRequest(router, "GET",
		fmt.Sprintf("/api/v1/spaces/%s/availability?from=2026-03-01&to=2026-03-08", space.ID),
		"Bearer "+owner.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Slots, 2)
}

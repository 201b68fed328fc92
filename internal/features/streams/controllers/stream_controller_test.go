package streams_controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	credits_controllers "casterdesk-backend/internal/features/credits/controllers"
	credits_dto "casterdesk-backend/internal/features/credits/dto"
	credits_models "casterdesk-backend/internal/features/credits/models"
	spaces_controllers "casterdesk-backend/internal/features/spaces/controllers"
	spaces_testing "casterdesk-backend/internal/features/spaces/testing"
	staff_controllers "casterdesk-backend/internal/features/staff/controllers"
	staff_dto "casterdesk-backend/internal/features/staff/dto"
	staff_models "casterdesk-backend/internal/features/staff/models"
	streams_dto "casterdesk-backend/internal/features/streams/dto"
	streams_models "casterdesk-backend/internal/features/streams/models"
	users_testing "casterdesk-backend/internal/features/users/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRouter() *gin.Engine {
	return spaces_testing.CreateTestRouter(
		spaces_controllers.GetSpaceController(),
		staff_controllers.GetStaffController(),
		credits_controllers.GetCreditController(),
		GetStreamController(),
	)
}

func Test_CompleteStream_AwardsCasterBonusOnce(t *testing.T) {
	router := createTestRouter()

	owner := users_testing.CreateTestUser()
	space := spaces_testing.CreateTestSpace("Grand Finals", owner, router)

	w := spaces_testing.MakeAPIRequest(router, "POST",
		fmt.Sprintf("/api/v1/spaces/%s/staff", space.ID),
		"Bearer "+owner.Token,
		staff_dto.CreateStaffMemberRequestDTO{Name: "Riven", Role: staff_models.StaffRoleCaster})
	require.Equal(t, http.StatusOK, w.Code)

	var caster staff_models.StaffMember
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &caster))

	w = spaces_testing.MakeAPIRequest(router, "POST",
		fmt.Sprintf("/api/v1/spaces/%s/streams", space.ID),
		"Bearer "+owner.Token,
		streams_dto.CreateStreamRequestDTO{
			Title:     "Playoffs day one",
			Date:      "2026-04-10",
			StartTime: "18:00",
			EndTime:   "21:00",
		})
	require.Equal(t, http.StatusOK, w.Code)

	var stream streams_models.StreamEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stream))
	require.Equal(t, streams_models.StreamStatusScheduled, stream.Status)

	w = spaces_testing.MakeAPIRequest(router, "POST",
		fmt.Sprintf("/api/v1/streams/%s/assignments", stream.ID),
		"Bearer "+owner.Token,
		streams_dto.AssignStaffRequestDTO{StaffID: caster.ID, Role: staff_models.StaffRoleCaster})
	require.Equal(t, http.StatusOK, w.Code)

	w = spaces_testing.MakeAPIRequest(router, "PUT",
		fmt.Sprintf("/api/v1/streams/%s/status", stream.ID),
		"Bearer "+owner.Token,
		streams_dto.SetStreamStatusRequestDTO{Status: streams_models.StreamStatusLive})
	require.Equal(t, http.StatusOK, w.Code)

	w = spaces_testing.MakeAPIRequest(router, "PUT",
		fmt.Sprintf("/api/v1/streams/%s/status", stream.ID),
		"Bearer "+owner.Token,
		streams_dto.SetStreamStatusRequestDTO{
			Status:     streams_models.StreamStatusCompleted,
			StreamLink: "https://example.com/vods/playoffs-day-one",
		})
	require.Equal(t, http.StatusOK, w.Code)

	w = spaces_testing.MakeAPIRequest(router, "GET",
		fmt.Sprintf("/api/v1/spaces/%s/credits/staff/%s", space.ID, caster.ID),
		"Bearer "+owner.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var transactions credits_dto.ListTransactionsResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transactions))
	require.Len(t, transactions.Transactions, 1)
	assert.Equal(t, credits_models.CreditAwardAmount, transactions.Transactions[0].Amount)
	assert.Equal(t, credits_models.CreditAwardReason, transactions.Transactions[0].Reason)
	require.NotNil(t, transactions.Transactions[0].StreamID)
	assert.Equal(t, stream.ID, *transactions.Transactions[0].StreamID)

	// The aggregate balance agrees with the ledger.
	w = spaces_testing.MakeAPIRequest(router, "GET",
		fmt.Sprintf("/api/v1/spaces/%s/credits/leaderboard?role=caster", space.ID),
		"Bearer "+owner.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var leaderboard credits_dto.LeaderboardResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &leaderboard))
	require.Len(t, leaderboard.Entries, 1)
	assert.Equal(t, caster.ID, leaderboard.Entries[0].StaffID)
	assert.Equal(t, credits_models.CreditAwardAmount, leaderboard.Entries[0].Credits)

	// Completed is terminal: a second completion is rejected and does
	// not award again.
	w = spaces_testing.MakeAPIRequest(router, "PUT",
		fmt.Sprintf("/api/v1/streams/%s/status", stream.ID),
		"Bearer "+owner.Token,
		streams_dto.SetStreamStatusRequestDTO{
			Status:     streams_models.StreamStatusCompleted,
			StreamLink: "https://example.com/vods/playoffs-day-one",
		})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = spaces_testing.MakeAPIRequest(router, "GET",
		fmt.Sprintf("/api/v1/spaces/%s/credits/staff/%s", space.ID, caster.ID),
		"Bearer "+owner.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transactions))
	assert.Len(t, transactions.Transactions, 1)
}

package spaces_testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"casterdesk-backend/internal/features/audit_logs"
	spaces_dto "casterdesk-backend/internal/features/spaces/dto"
	spaces_models "casterdesk-backend/internal/features/spaces/models"
	users_dto "casterdesk-backend/internal/features/users/dto"
	users_middleware "casterdesk-backend/internal/features/users/middleware"
	users_services "casterdesk-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

type ControllerInterface interface {
	RegisterRoutes(router gin.IRoutes)
}

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		controller.RegisterRoutes(protected)
	}

	audit_logs.SetupDependencies()

	return router
}

func MakeAPIRequest(
	router *gin.Engine,
	method string,
	path string,
	authHeader string,
	body any,
) *httptest.ResponseRecorder {
	var bodyReader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func CreateTestSpace(
	name string,
	owner *users_dto.SignInResponseDTO,
	router *gin.Engine,
) *spaces_models.Space {
	request := spaces_dto.CreateSpaceRequestDTO{Name: name, IsPublic: true}
	w := MakeAPIRequest(router, "POST", "/api/v1/spaces", "Bearer "+owner.Token, request)

	if w.Code != http.StatusOK {
		panic(fmt.Sprintf(
			"Failed to create space. Status: %d, Body: %s", w.Code, w.Body.String(),
		))
	}

	var response spaces_dto.SpaceResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &spaces_models.Space{
		ID:       response.ID,
		Name:     response.Name,
		IsPublic: response.IsPublic,
		OwnerID:  response.OwnerID,
	}
}

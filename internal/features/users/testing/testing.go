package users_testing

import (
	"fmt"

	users_dto "casterdesk-backend/internal/features/users/dto"
	users_services "casterdesk-backend/internal/features/users/services"

	"github.com/google/uuid"
)

// CreateTestUser registers a fresh user with a unique email and returns
// a signed-in session for it.
func CreateTestUser() *users_dto.SignInResponseDTO {
	userService := users_services.GetUserService()

	email := fmt.Sprintf("test-%s@example.com", uuid.New().String()[:8])
	password := "test-password-123"

	err := userService.SignUp(&users_dto.SignUpRequestDTO{
		Email:    email,
		Name:     "Test User",
		Password: password,
	})
	if err != nil {
		panic("Failed to create test user: " + err.Error())
	}

	response, err := userService.SignIn(&users_dto.SignInRequestDTO{
		Email:    email,
		Password: password,
	})
	if err != nil {
		panic("Failed to sign in test user: " + err.Error())
	}

	return response
}

package availability_controllers

import (
	availability_services "casterdesk-backend/internal/features/availability/services"
)

var availabilityController = &AvailabilityController{
	availabilityService: availability_services.GetAvailabilityService(),
}

func GetAvailabilityController() *AvailabilityController {
	return availabilityController
}

package staff_controllers

import (
	staff_services "casterdesk-backend/internal/features/staff/services"
)

var staffController = &StaffController{
	staffService: staff_services.GetStaffService(),
}

func GetStaffController() *StaffController {
	return staffController
}

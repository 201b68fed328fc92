package credits_controllers

import (
	credits_services "casterdesk-backend/internal/features/credits/services"
)

var creditController = &CreditController{
	ledgerService: credits_services.GetLedgerService(),
}

func GetCreditController() *CreditController {
	return creditController
}

package streams_controllers

import (
	streams_services "casterdesk-backend/internal/features/streams/services"
)

var streamController = &StreamController{
	streamService: streams_services.GetStreamService(),
}

func GetStreamController() *StreamController {
	return streamController
}

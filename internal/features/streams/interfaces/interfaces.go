package streams_interfaces

import (
	streams_models "casterdesk-backend/internal/features/streams/models"
)

// StreamAnnouncer publishes stream changes to external channels.
// Implementations must be best-effort: announcement failures never
// fail the originating operation.
type StreamAnnouncer interface {
	AnnounceStreamCreated(stream *streams_models.StreamEvent)
	AnnounceStreamUpdated(stream *streams_models.StreamEvent)
}

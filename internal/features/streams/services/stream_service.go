package streams_services

import (
	"errors"
	"fmt"
	"log/slog"

	"casterdesk-backend/internal/features/audit_logs"
	credits_services "casterdesk-backend/internal/features/credits/services"
	"casterdesk-backend/internal/features/realtime"
	spaces_services "casterdesk-backend/internal/features/spaces/services"
	staff_models "casterdesk-backend/internal/features/staff/models"
	staff_services "casterdesk-backend/internal/features/staff/services"
	streams_dto "casterdesk-backend/internal/features/streams/dto"
	streams_interfaces "casterdesk-backend/internal/features/streams/interfaces"
	streams_models "casterdesk-backend/internal/features/streams/models"
	streams_repositories "casterdesk-backend/internal/features/streams/repositories"
	users_models "casterdesk-backend/internal/features/users/models"

	"github.com/google/uuid"
)

var (
	ErrStreamNotFound       = errors.New("stream not found")
	ErrInvalidTransition    = errors.New("stream status transition is not allowed")
	ErrCompletionNeedsLink  = errors.New("completing a stream requires a stream recording link")
	ErrStaffAlreadyAssigned = errors.New("staff member is already assigned to this stream")
)

type StreamService struct {
	streamRepository     *streams_repositories.StreamRepository
	assignmentRepository *streams_repositories.AssignmentRepository
	rsvpRepository       *streams_repositories.RSVPRepository
	staffService         *staff_services.StaffService
	spaceService         *spaces_services.SpaceService
	ledgerService        *credits_services.LedgerService
	auditLogService      *audit_logs.AuditLogService
	hub                  *realtime.Hub
	logger               *slog.Logger
	announcer            streams_interfaces.StreamAnnouncer
}

func (s *StreamService) SetAnnouncer(announcer streams_interfaces.StreamAnnouncer) {
	s.announcer = announcer
}

func (s *StreamService) CreateStream(
	spaceID uuid.UUID,
	request *streams_dto.CreateStreamRequestDTO,
	user *users_models.User,
) (*streams_models.StreamEvent, error) {
	canManage, err := s.spaceService.CanUserManageSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, errors.New("insufficient permissions to manage streams")
	}

	stream := &streams_models.StreamEvent{
		SpaceID:     spaceID,
		Title:       request.Title,
		Date:        request.Date,
		StartTime:   request.StartTime,
		EndTime:     request.EndTime,
		Description: request.Description,
		StreamLink:  request.StreamLink,
		Status:      streams_models.StreamStatusScheduled,
		CreatedBy:   user.ID,
	}

	if err := stream.Validate(); err != nil {
		return nil, err
	}

	if err := s.streamRepository.CreateStream(stream); err != nil {
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Stream scheduled: %s on %s", stream.Title, stream.Date),
		&user.ID,
		&spaceID,
	)
	s.hub.Publish(spaceID, "stream_events")

	if s.announcer != nil {
		s.announcer.AnnounceStreamCreated(stream)
	}

	return stream, nil
}

func (s *StreamService) GetStreamDetails(
	streamID uuid.UUID,
	user *users_models.User,
) (*streams_dto.StreamDetailsResponseDTO, error) {
	stream, err := s.getAccessibleStream(streamID, user)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepository.GetAssignmentsForStream(streamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	rsvps, err := s.rsvpRepository.GetRSVPsForStream(streamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get RSVPs: %w", err)
	}

	return &streams_dto.StreamDetailsResponseDTO{
		Stream:      stream,
		Assignments: assignments,
		RSVPs:       rsvps,
	}, nil
}

func (s *StreamService) GetSpaceStreams(
	spaceID uuid.UUID,
	request *streams_dto.GetStreamsRequestDTO,
	user *users_models.User,
) (*streams_dto.ListStreamsResponseDTO, error) {
	canView, _, err := s.spaceService.CanUserAccessSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, errors.New("insufficient permissions to view streams")
	}

	streams, err := s.streamRepository.GetStreamsForSpace(spaceID, request.From, request.To)
	if err != nil {
		return nil, fmt.Errorf("failed to get streams: %w", err)
	}

	return &streams_dto.ListStreamsResponseDTO{
		Streams: streams,
	}, nil
}

func (s *StreamService) UpdateStream(
	streamID uuid.UUID,
	request *streams_dto.UpdateStreamRequestDTO,
	user *users_models.User,
) (*streams_models.StreamEvent, error) {
	stream, err := s.getManageableStream(streamID, user)
	if err != nil {
		return nil, err
	}

	stream.Title = request.Title
	stream.Date = request.Date
	stream.StartTime = request.StartTime
	stream.EndTime = request.EndTime
	stream.Description = request.Description
	stream.StreamLink = request.StreamLink

	if err := stream.Validate(); err != nil {
		return nil, err
	}

	if err := s.streamRepository.UpdateStream(stream); err != nil {
		return nil, fmt.Errorf("failed to update stream: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Stream updated: %s", stream.Title),
		&user.ID,
		&stream.SpaceID,
	)
	s.hub.Publish(stream.SpaceID, "stream_events")

	if s.announcer != nil {
		s.announcer.AnnounceStreamUpdated(stream)
	}

	return stream, nil
}

// SetStatus moves a stream through its lifecycle. Completing a stream
// records the recording link and pays the completion bonus to every
// assigned caster. The award pass is best-effort: a failed award is
// logged and skipped, the completed status stands.
func (s *StreamService) SetStatus(
	streamID uuid.UUID,
	request *streams_dto.SetStreamStatusRequestDTO,
	user *users_models.User,
) (*streams_models.StreamEvent, error) {
	stream, err := s.getManageableStream(streamID, user)
	if err != nil {
		return nil, err
	}

	if !request.Status.IsValid() {
		return nil, errors.New("invalid stream status")
	}

	if !stream.Status.CanTransitionTo(request.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, stream.Status, request.Status)
	}

	if request.Status == streams_models.StreamStatusCompleted {
		if request.StreamLink != "" {
			stream.StreamLink = request.StreamLink
		}

		if stream.StreamLink == "" {
			return nil, ErrCompletionNeedsLink
		}
	}

	stream.Status = request.Status

	if err := s.streamRepository.UpdateStream(stream); err != nil {
		return nil, fmt.Errorf("failed to update stream status: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Stream %s: %s", request.Status, stream.Title),
		&user.ID,
		&stream.SpaceID,
	)
	s.hub.Publish(stream.SpaceID, "stream_events")

	if request.Status == streams_models.StreamStatusCompleted {
		s.awardCompletionCredits(stream)
	}

	return stream, nil
}

func (s *StreamService) awardCompletionCredits(stream *streams_models.StreamEvent) {
	assignments, err := s.assignmentRepository.GetAssignmentsForStreamByRole(
		stream.ID, staff_models.StaffRoleCaster)
	if err != nil {
		s.logger.Error("failed to load caster assignments for award pass",
			"streamId", stream.ID, "error", err)
		return
	}

	for _, assignment := range assignments {
		err := s.ledgerService.AwardStreamCompletion(
			stream.SpaceID, assignment.StaffID, stream.ID)
		if err != nil {
			s.logger.Error("failed to award stream completion credits",
				"streamId", stream.ID, "staffId", assignment.StaffID, "error", err)
		}
	}
}

func (s *StreamService) AssignStaff(
	streamID uuid.UUID,
	request *streams_dto.AssignStaffRequestDTO,
	user *users_models.User,
) (*streams_models.StreamAssignment, error) {
	stream, err := s.getManageableStream(streamID, user)
	if err != nil {
		return nil, err
	}

	staffMember, err := s.staffService.GetStaffMemberByID(request.StaffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	if staffMember == nil || staffMember.SpaceID != stream.SpaceID {
		return nil, errors.New("staff member not found in this space")
	}

	if !request.Role.IsValid() {
		return nil, errors.New("assignment role must be caster or observer")
	}

	existing, err := s.assignmentRepository.GetAssignmentByStreamAndStaff(
		streamID, request.StaffID)
	if err != nil {
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}
	if existing != nil {
		return nil, ErrStaffAlreadyAssigned
	}

	assignment := &streams_models.StreamAssignment{
		StreamID:  streamID,
		StaffID:   request.StaffID,
		Role:      request.Role,
		IsPrimary: request.IsPrimary,
	}

	if err := s.assignmentRepository.CreateAssignment(assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Staff assigned to stream %s: %s as %s",
			stream.Title, staffMember.Name, request.Role),
		&user.ID,
		&stream.SpaceID,
	)
	s.hub.Publish(stream.SpaceID, "stream_assignments")

	return assignment, nil
}

func (s *StreamService) RemoveAssignment(
	streamID uuid.UUID,
	staffID uuid.UUID,
	user *users_models.User,
) error {
	stream, err := s.getManageableStream(streamID, user)
	if err != nil {
		return err
	}

	if err := s.assignmentRepository.RemoveAssignment(streamID, staffID); err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}

	s.hub.Publish(stream.SpaceID, "stream_assignments")

	return nil
}

func (s *StreamService) SaveRSVP(
	streamID uuid.UUID,
	request *streams_dto.SaveRSVPRequestDTO,
	user *users_models.User,
) (*streams_models.StreamRSVP, error) {
	stream, err := s.getAccessibleStream(streamID, user)
	if err != nil {
		return nil, err
	}

	if !request.Status.IsValid() {
		return nil, errors.New("invalid RSVP status")
	}

	staffMember, err := s.staffService.GetStaffMemberByID(request.StaffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	if staffMember == nil || staffMember.SpaceID != stream.SpaceID {
		return nil, errors.New("staff member not found in this space")
	}

	rsvp := &streams_models.StreamRSVP{
		StreamID: streamID,
		StaffID:  request.StaffID,
		Status:   request.Status,
		Notes:    request.Notes,
	}

	if err := s.rsvpRepository.SaveRSVP(rsvp); err != nil {
		return nil, fmt.Errorf("failed to save RSVP: %w", err)
	}

	s.hub.Publish(stream.SpaceID, "stream_rsvps")

	return rsvp, nil
}

func (s *StreamService) DeleteStream(
	streamID uuid.UUID,
	user *users_models.User,
) error {
	stream, err := s.getManageableStream(streamID, user)
	if err != nil {
		return err
	}

	if err := s.streamRepository.DeleteStream(streamID); err != nil {
		return fmt.Errorf("failed to delete stream: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Stream deleted: %s", stream.Title),
		&user.ID,
		&stream.SpaceID,
	)
	s.hub.Publish(stream.SpaceID, "stream_events")

	return nil
}

func (s *StreamService) GetUpcomingScheduledStreams(
	today string,
	tomorrow string,
) ([]streams_models.StreamEvent, error) {
	return s.streamRepository.GetUpcomingScheduledStreams(today, tomorrow)
}

func (s *StreamService) OnBeforeSpaceDeletion(spaceID uuid.UUID) error {
	return s.streamRepository.RemoveAllForSpace(spaceID)
}

func (s *StreamService) getAccessibleStream(
	streamID uuid.UUID,
	user *users_models.User,
) (*streams_models.StreamEvent, error) {
	stream, err := s.streamRepository.GetStreamByID(streamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stream: %w", err)
	}
	if stream == nil {
		return nil, ErrStreamNotFound
	}

	canView, _, err := s.spaceService.CanUserAccessSpace(stream.SpaceID, user)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, errors.New("insufficient permissions to view streams")
	}

	return stream, nil
}

func (s *StreamService) getManageableStream(
	streamID uuid.UUID,
	user *users_models.User,
) (*streams_models.StreamEvent, error) {
	stream, err := s.streamRepository.GetStreamByID(streamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stream: %w", err)
	}
	if stream == nil {
		return nil, ErrStreamNotFound
	}

	canManage, err := s.spaceService.CanUserManageSpace(stream.SpaceID, user)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, errors.New("insufficient permissions to manage streams")
	}

	return stream, nil
}

package availability_services

import (
	"errors"
	"fmt"

	"casterdesk-backend/internal/features/audit_logs"
	availability_dto "casterdesk-backend/internal/features/availability/dto"
	availability_models "casterdesk-backend/internal/features/availability/models"
	availability_repositories "casterdesk-backend/internal/features/availability/repositories"
	"casterdesk-backend/internal/features/realtime"
	spaces_services "casterdesk-backend/internal/features/spaces/services"
	staff_services "casterdesk-backend/internal/features/staff/services"
	users_models "casterdesk-backend/internal/features/users/models"

	"github.com/google/uuid"
)

var ErrSlotNotFound = errors.New("availability slot not found")

type AvailabilityService struct {
	availabilityRepository *availability_repositories.AvailabilityRepository
	staffService           *staff_services.StaffService
	spaceService           *spaces_services.SpaceService
	auditLogService        *audit_logs.AuditLogService
	hub                    *realtime.Hub
}

// SaveSlot writes an availability slot. If a slot already exists for
// the same staff member, date, and start time, that row is updated in
// place. Any other change, including shifting the start time, creates
// a new row.
func (s *AvailabilityService) SaveSlot(
	spaceID uuid.UUID,
	request *availability_dto.SaveSlotRequestDTO,
	user *users_models.User,
) (*availability_models.AvailabilitySlot, error) {
	canManage, err := s.spaceService.CanUserManageSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, errors.New("insufficient permissions to manage availability")
	}

	staffMember, err := s.staffService.GetStaffMemberByID(request.StaffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	if staffMember == nil || staffMember.SpaceID != spaceID {
		return nil, errors.New("staff member not found in this space")
	}

	slot := &availability_models.AvailabilitySlot{
		StaffID:   request.StaffID,
		SpaceID:   spaceID,
		Date:      request.Date,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
		Status:    request.Status,
		Note:      request.Note,
	}

	if err := slot.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.availabilityRepository.GetSlotByKey(
		request.StaffID, request.Date, request.StartTime)
	if err != nil {
		return nil, fmt.Errorf("failed to look up slot: %w", err)
	}

	if existing != nil {
		existing.EndTime = request.EndTime
		existing.Status = request.Status
		existing.Note = request.Note

		if err := s.availabilityRepository.UpdateSlot(existing); err != nil {
			return nil, fmt.Errorf("failed to update slot: %w", err)
		}

		slot = existing
	} else {
		if err := s.availabilityRepository.CreateSlot(slot); err != nil {
			return nil, fmt.Errorf("failed to create slot: %w", err)
		}
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Availability saved for %s on %s", staffMember.Name, slot.Date),
		&user.ID,
		&spaceID,
	)
	s.hub.Publish(spaceID, "availability_slots")

	return slot, nil
}

// GetSpaceSlots returns all slots for a space within a date range,
// inclusive on both ends. The calendar grid fetches a week at a time.
func (s *AvailabilityService) GetSpaceSlots(
	spaceID uuid.UUID,
	request *availability_dto.GetWeekSlotsRequestDTO,
	user *users_models.User,
) (*availability_dto.ListSlotsResponseDTO, error) {
	canView, _, err := s.spaceService.CanUserAccessSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, errors.New("insufficient permissions to view availability")
	}

	slots, err := s.availabilityRepository.GetSlotsForSpaceInRange(
		spaceID, request.From, request.To)
	if err != nil {
		return nil, fmt.Errorf("failed to get slots: %w", err)
	}

	return &availability_dto.ListSlotsResponseDTO{
		Slots: slots,
	}, nil
}

// ResolveStaffStatus reports a staff member's status at a clock time
// on a date, resolving overlaps by first match in fetch order.
func (s *AvailabilityService) ResolveStaffStatus(
	spaceID uuid.UUID,
	staffID uuid.UUID,
	date string,
	clock string,
	user *users_models.User,
) (availability_models.SlotStatus, error) {
	canView, _, err := s.spaceService.CanUserAccessSpace(spaceID, user)
	if err != nil {
		return availability_models.SlotStatusUnset, err
	}
	if !canView {
		return availability_models.SlotStatusUnset,
			errors.New("insufficient permissions to view availability")
	}

	slots, err := s.availabilityRepository.GetSlotsForStaffOnDate(staffID, date)
	if err != nil {
		return availability_models.SlotStatusUnset,
			fmt.Errorf("failed to get slots: %w", err)
	}

	return availability_models.ResolveStatus(slots, clock)
}

func (s *AvailabilityService) DeleteSlot(
	spaceID uuid.UUID,
	slotID uuid.UUID,
	user *users_models.User,
) error {
	canManage, err := s.spaceService.CanUserManageSpace(spaceID, user)
	if err != nil {
		return err
	}
	if !canManage {
		return errors.New("insufficient permissions to manage availability")
	}

	slot, err := s.availabilityRepository.GetSlotByID(slotID)
	if err != nil {
		return fmt.Errorf("failed to get slot: %w", err)
	}
	if slot == nil || slot.SpaceID != spaceID {
		return ErrSlotNotFound
	}

	if err := s.availabilityRepository.DeleteSlot(slotID); err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}

	s.hub.Publish(spaceID, "availability_slots")

	return nil
}

func (s *AvailabilityService) OnBeforeSpaceDeletion(spaceID uuid.UUID) error {
	return s.availabilityRepository.RemoveAllForSpace(spaceID)
}

package availability_models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBusy      SlotStatus = "busy"
	SlotStatusOff       SlotStatus = "off"

	// SlotStatusUnset is the sentinel returned when no slot covers a
	// point in time. It is never stored.
	SlotStatusUnset SlotStatus = "unset"
)

func (s SlotStatus) IsValid() bool {
	return s == SlotStatusAvailable || s == SlotStatusBusy || s == SlotStatusOff
}

type AvailabilitySlot struct {
	ID        uuid.UUID  `json:"id"        gorm:"type:uuid;primaryKey"`
	StaffID   uuid.UUID  `json:"staffId"   gorm:"type:uuid;not null;index"`
	SpaceID   uuid.UUID  `json:"spaceId"   gorm:"type:uuid;not null;index"`
	Date      string     `json:"date"      gorm:"not null;index"`
	StartTime string     `json:"startTime" gorm:"not null"`
	EndTime   string     `json:"endTime"   gorm:"not null"`
	Status    SlotStatus `json:"status"    gorm:"not null"`
	Note      string     `json:"note"`
	CreatedAt time.Time  `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"not null"`
}

func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}

func (s *AvailabilitySlot) Validate() error {
	if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s.Date)
	}

	start, err := TimeToMinutes(s.StartTime)
	if err != nil {
		return err
	}

	end, err := TimeToMinutes(s.EndTime)
	if err != nil {
		return err
	}

	if start >= end {
		return errors.New("slot start time must be before end time")
	}

	if !s.Status.IsValid() {
		return fmt.Errorf("invalid slot status %q", s.Status)
	}

	return nil
}

// TimeToMinutes converts an "HH:MM" clock time to minutes since
// midnight.
func TimeToMinutes(clock string) (int, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", clock)
	}

	return parsed.Hour()*60 + parsed.Minute(), nil
}

// Contains reports whether the slot covers the given minutes-since-
// midnight point. The interval is half-open: a slot ending at 12:00
// does not cover 12:00.
func (s *AvailabilitySlot) Contains(minutes int) bool {
	start, err := TimeToMinutes(s.StartTime)
	if err != nil {
		return false
	}

	end, err := TimeToMinutes(s.EndTime)
	if err != nil {
		return false
	}

	return minutes >= start && minutes < end
}

// ResolveStatus finds the status at a point in time by scanning the
// slots in order and returning the first one that covers it. Slots are
// checked in the order given, so overlapping slots resolve to the
// earliest match. Returns SlotStatusUnset when nothing covers the
// point.
func ResolveStatus(slots []AvailabilitySlot, clock string) (SlotStatus, error) {
	minutes, err := TimeToMinutes(clock)
	if err != nil {
		return SlotStatusUnset, err
	}

	for i := range slots {
		if slots[i].Contains(minutes) {
			return slots[i].Status, nil
		}
	}

	return SlotStatusUnset, nil
}

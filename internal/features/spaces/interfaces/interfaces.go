package spaces_interfaces

import "github.com/google/uuid"

type SpaceDeletionListener interface {
	OnBeforeSpaceDeletion(spaceID uuid.UUID) error
}

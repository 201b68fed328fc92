package audit_logs

import (
	"log/slog"

	"github.com/google/uuid"
)

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
	logger             *slog.Logger
}

// WriteAuditLog records a message without failing the caller. Audit writes
// are best-effort: a failed insert is logged and swallowed.
func (s *AuditLogService) WriteAuditLog(message string, userID *uuid.UUID, spaceID *uuid.UUID) {
	log := &AuditLog{
		UserID:  userID,
		SpaceID: spaceID,
		Message: message,
	}

	if err := s.auditLogRepository.Create(log); err != nil {
		s.logger.Error("Failed to write audit log", "error", err, "message", message)
	}
}

func (s *AuditLogService) GetSpaceAuditLogs(
	spaceID uuid.UUID,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	if request.Limit <= 0 || request.Limit > 500 {
		request.Limit = 100
	}
	if request.Offset < 0 {
		request.Offset = 0
	}

	logs, total, err := s.auditLogRepository.GetBySpaceID(spaceID, request)
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: logs,
		Total:     total,
		Limit:     request.Limit,
		Offset:    request.Offset,
	}, nil
}

package audit_logs

import (
	"time"

	"casterdesk-backend/internal/storage"

	"github.com/google/uuid"
)

type AuditLogRepository struct{}

func (r *AuditLogRepository) Create(log *AuditLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}

	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(log).Error
}

func (r *AuditLogRepository) GetBySpaceID(
	spaceID uuid.UUID,
	request *GetAuditLogsRequest,
) ([]*AuditLogDTO, int64, error) {
	var logs []*AuditLogDTO
	var total int64

	countQuery := storage.GetDb().Model(&AuditLog{}).Where("space_id = ?", spaceID)
	if request.BeforeDate != nil {
		countQuery = countQuery.Where("created_at < ?", *request.BeforeDate)
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dataQuery := storage.GetDb().
		Table("audit_logs al").
		Select("al.id, al.user_id, al.space_id, al.message, al.created_at, "+
			"u.email as user_email, u.name as user_name, s.name as space_name").
		Joins("LEFT JOIN users u ON al.user_id = u.id").
		Joins("LEFT JOIN spaces s ON al.space_id = s.id").
		Where("al.space_id = ?", spaceID).
		Order("al.created_at DESC").
		Limit(request.Limit).
		Offset(request.Offset)

	if request.BeforeDate != nil {
		dataQuery = dataQuery.Where("al.created_at < ?", *request.BeforeDate)
	}

	if err := dataQuery.Scan(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

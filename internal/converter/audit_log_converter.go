package converter

import (
	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/domain/entity"
)

// AuditLogsToResponses converts AuditLog entities to response DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = dto.AuditLogResponse{
			ID:        log.ID,
			UserID:    log.UserID,
			Action:    log.Action,
			Metadata:  log.Metadata,
			CreatedAt: log.CreatedAt,
		}
		if log.User != nil {
			responses[i].UserName = log.User.FullName
		}
	}
	return responses
}

package handler

import (
	"net/http"

	"hello-doctors/internal/usecase"
	"hello-doctors/pkg/response"
)

type AuditLogHandler struct {
	auditUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditUsecase: auditUsecase}
}

// List returns the audit trail, newest first
// @Summary List audit logs
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /admin/audit-logs [get]
func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)

	logs, total, err := h.auditUsecase.GetAll(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", logs,
		response.NewMeta(page, limit, total))
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/projecthub-go/internal/application"
	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"github.com/linskybing/projecthub-go/pkg/types"
)

type QueryHandler struct {
	svc   *application.QueryService
	audit *application.AuditService
}

func NewQueryHandler(svc *application.QueryService, audit *application.AuditService) *QueryHandler {
	return &QueryHandler{svc: svc, audit: audit}
}

func (h *QueryHandler) Register(d *Dispatcher) {
	d.Register("fetchPhaseDetail", h.FetchPhaseDetail)
	d.Register("fetchPhaseDetailByTemplate", h.FetchPhaseDetailByTemplate)
	d.Register("fetchProjectOverview", h.FetchProjectOverview)
	d.Register("fetchProjectStatus", h.FetchProjectStatus)
	d.Register("fetchAuditLogs", h.FetchAuditLogs, types.RoleTeacher)
}

func (h *QueryHandler) FetchPhaseDetail(c *gin.Context, _ *types.Claims) (string, any, error) {
	var input phase.PhaseProjectRefDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	detail, err := h.svc.PhaseDetail(c.Request.Context(), input.PhaseProjectID)
	if err != nil {
		return "", nil, err
	}
	return "", detail, nil
}

func (h *QueryHandler) FetchPhaseDetailByTemplate(c *gin.Context, _ *types.Claims) (string, any, error) {
	var input phase.PhaseDetailByTemplateDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	detail, err := h.svc.PhaseDetailByTemplate(c.Request.Context(), input.PhaseMainID, input.ProjectMainID)
	if err != nil {
		return "", nil, err
	}
	return "", detail, nil
}

func (h *QueryHandler) FetchProjectOverview(c *gin.Context, _ *types.Claims) (string, any, error) {
	var input projectRef
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	overview, err := h.svc.ProjectOverview(c.Request.Context(), input.ProjectMainID)
	if err != nil {
		return "", nil, err
	}
	return "", overview, nil
}

func (h *QueryHandler) FetchProjectStatus(c *gin.Context, _ *types.Claims) (string, any, error) {
	var input projectRef
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	summary, entry, err := h.svc.ProjectStatus(c.Request.Context(), input.ProjectMainID)
	if err != nil {
		return "", nil, err
	}
	return "", gin.H{"project_main_id": input.ProjectMainID, "current_status": summary, "entry": entry}, nil
}

// FetchAuditLogs godoc
// @Summary Query audit logs
// @Tags audit
// @Security BearerAuth
// @Description Filters: user_id, resource_type, resource_id, action, start_time, end_time (RFC3339), limit, offset.
// @Success 200 {object} response.Envelope
func (h *QueryHandler) FetchAuditLogs(c *gin.Context, _ *types.Claims) (string, any, error) {
	var q application.AuditQuery
	if err := bind(c, &q); err != nil {
		return "", nil, err
	}
	logs, err := h.audit.QueryAuditLogs(c.Request.Context(), q)
	if err != nil {
		return "", nil, err
	}
	return "", logs, nil
}

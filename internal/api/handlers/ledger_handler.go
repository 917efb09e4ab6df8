package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/projecthub-go/internal/application"
	"github.com/linskybing/projecthub-go/internal/domain/status"
	"github.com/linskybing/projecthub-go/pkg/types"
)

type LedgerHandler struct {
	svc *application.LedgerService
}

func NewLedgerHandler(svc *application.LedgerService) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

func (h *LedgerHandler) Register(d *Dispatcher) {
	d.Register("fetchStatusHistory", h.FetchStatusHistory)
	d.Register("setProjectStatus", h.SetProjectStatus, types.RoleTeacher)
}

type statusHistoryRef struct {
	Scope   string `json:"scope" binding:"required,oneof=project phase"`
	ScopeID uint   `json:"scope_id" binding:"required"`
}

type setProjectStatusInput struct {
	ProjectMainID uint `json:"project_main_id" binding:"required"`
	StatusCode    int  `json:"status_code" binding:"required"`
}

// FetchStatusHistory godoc
// @Summary Current status and full ledger of a project or a started phase, newest first
// @Tags status
// @Security BearerAuth
// @Success 200 {object} response.Envelope
func (h *LedgerHandler) FetchStatusHistory(c *gin.Context, _ *types.Claims) (string, any, error) {
	var input statusHistoryRef
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	scope := status.Scope(input.Scope)
	current, err := h.svc.Current(c.Request.Context(), scope, input.ScopeID)
	if err != nil {
		return "", nil, err
	}
	entries, err := h.svc.History(c.Request.Context(), scope, input.ScopeID)
	if err != nil {
		return "", nil, err
	}
	return "", gin.H{"scope": scope, "scope_id": input.ScopeID, "current": current, "history": entries}, nil
}

// SetProjectStatus appends a status to the project ledger, e.g. to close a
// project as Approved or Failed.
func (h *LedgerHandler) SetProjectStatus(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input setProjectStatusInput
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	code, err := status.Parse(input.StatusCode)
	if err != nil {
		return "", nil, &application.OpError{Kind: application.ErrValidation, Message: err.Error(), Err: err}
	}
	entry, err := h.svc.Append(c.Request.Context(), status.ScopeProject, input.ProjectMainID, code, actor.UserID)
	if err != nil {
		return "", nil, err
	}
	return "Project status updated", entry, nil
}

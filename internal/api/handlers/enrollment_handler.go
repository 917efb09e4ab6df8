package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/projecthub-go/internal/application"
	"github.com/linskybing/projecthub-go/internal/domain/project"
	"github.com/linskybing/projecthub-go/pkg/types"
)

type EnrollmentHandler struct {
	svc *application.EnrollmentService
}

func NewEnrollmentHandler(svc *application.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc}
}

func (h *EnrollmentHandler) Register(d *Dispatcher) {
	d.Register("saveJoinedWorkspace", h.SaveJoinedWorkspace, types.RoleStudent)
	d.Register("batchJoinWorkspace", h.BatchJoinWorkspace, types.RoleTeacher)
	d.Register("fetchJoinedWorkspaces", h.FetchJoinedWorkspaces)
}

// SaveJoinedWorkspace enrolls the caller into the workspace with the given code.
func (h *EnrollmentHandler) SaveJoinedWorkspace(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input project.JoinWorkspaceDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	joined, err := h.svc.Join(c.Request.Context(), input.Code, actor.UserID)
	if err != nil {
		return "", nil, err
	}
	return "Joined workspace", joined, nil
}

// BatchJoinWorkspace reports per-user outcomes; individual failures never fail the call.
func (h *EnrollmentHandler) BatchJoinWorkspace(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input project.BatchJoinDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	res, err := h.svc.BatchJoin(c.Request.Context(), actor.UserID, input.Code, input.UserIDs)
	if err != nil {
		return "", nil, err
	}
	return "Batch join processed", res, nil
}

type studentRef struct {
	StudentID *uint `json:"student_id"`
}

func (h *EnrollmentHandler) FetchJoinedWorkspaces(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input studentRef
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	uid, err := subjectUser(actor, input.StudentID)
	if err != nil {
		return "", nil, err
	}
	rows, err := h.svc.ListJoined(c.Request.Context(), uid)
	if err != nil {
		return "", nil, err
	}
	return "", rows, nil
}

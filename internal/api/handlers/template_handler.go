package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/projecthub-go/internal/application"
	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"github.com/linskybing/projecthub-go/internal/domain/project"
	"github.com/linskybing/projecthub-go/pkg/types"
)

type TemplateHandler struct {
	svc *application.TemplateService
}

func NewTemplateHandler(svc *application.TemplateService) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

func (h *TemplateHandler) Register(d *Dispatcher) {
	d.Register("saveProjectMaster", h.SaveProjectMaster, types.RoleTeacher)
	d.Register("fetchProjectMastersBySchoolYear", h.FetchMastersBySchoolYear)
	d.Register("findProjectMasterByCode", h.FindMasterByCode)
	d.Register("savePhases", h.SavePhases, types.RoleTeacher)
	d.Register("fetchPhases", h.FetchPhases)
}

type schoolYearRef struct {
	SchoolYearID uint `json:"project_school_year_id" binding:"required"`
}

type codeRef struct {
	Code string `json:"project_code" binding:"required,notblank"`
}

type masterRef struct {
	MasterID uint `json:"project_master_id" binding:"required"`
}

func (h *TemplateHandler) SaveProjectMaster(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input project.CreateMasterDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	m, err := h.svc.CreateMaster(c.Request.Context(), actor.UserID, input)
	if err != nil {
		return "", nil, err
	}
	return "Project master created", m, nil
}

func (h *TemplateHandler) FetchMastersBySchoolYear(c *gin.Context, _ *types.Claims) (string, any, error) {
	var input schoolYearRef
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	masters, err := h.svc.ListMastersBySchoolYear(c.Request.Context(), input.SchoolYearID)
	if err != nil {
		return "", nil, err
	}
	return "", masters, nil
}

func (h *TemplateHandler) FindMasterByCode(c *gin.Context, _ *types.Claims) (string, any, error) {
	var input codeRef
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	m, err := h.svc.FindMasterByCode(c.Request.Context(), input.Code)
	if err != nil {
		return "", nil, err
	}
	return "", m, nil
}

// SavePhases inserts the whole batch or nothing.
func (h *TemplateHandler) SavePhases(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input phase.SavePhasesDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	phases, err := h.svc.SavePhases(c.Request.Context(), actor.UserID, input)
	if err != nil {
		return "", nil, err
	}
	return "Phases saved", phases, nil
}

func (h *TemplateHandler) FetchPhases(c *gin.Context, _ *types.Claims) (string, any, error) {
	var input masterRef
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	phases, err := h.svc.ListPhases(c.Request.Context(), input.MasterID)
	if err != nil {
		return "", nil, err
	}
	return "", phases, nil
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/projecthub-go/internal/application"
	"github.com/linskybing/projecthub-go/internal/domain/project"
	"github.com/linskybing/projecthub-go/pkg/types"
)

type ProjectHandler struct {
	svc     *application.ProjectService
	members *application.MembershipService
}

func NewProjectHandler(svc *application.ProjectService, members *application.MembershipService) *ProjectHandler {
	return &ProjectHandler{svc: svc, members: members}
}

func (h *ProjectHandler) Register(d *Dispatcher) {
	d.Register("saveProjectMain", h.SaveProjectMain, types.RoleStudent, types.RoleTeacher)
	d.Register("fetchProjectsByMaster", h.FetchProjectsByMaster, types.RoleTeacher)
	d.Register("fetchMyProjects", h.FetchMyProjects)
	d.Register("fetchCollaborator", h.FetchCollaborator)
	d.Register("fetchMembers", h.FetchMembers)
	d.Register("addMember", h.AddMember, types.RoleStudent, types.RoleTeacher)
	d.Register("respondToInvite", h.RespondToInvite)
}

type projectRef struct {
	ProjectMainID uint `json:"project_main_id" binding:"required"`
}

// SaveProjectMain creates the project, its Not Started ledger row and its
// member rows in one transaction. The caller becomes the accepted creator.
func (h *ProjectHandler) SaveProjectMain(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input project.CreateProjectDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	p, err := h.svc.CreateProject(c.Request.Context(), actor.UserID, input)
	if err != nil {
		return "", nil, err
	}
	return "Project created", p, nil
}

func (h *ProjectHandler) FetchProjectsByMaster(c *gin.Context, _ *types.Claims) (string, any, error) {
	var input masterRef
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	projects, err := h.svc.ListByMaster(c.Request.Context(), input.MasterID)
	if err != nil {
		return "", nil, err
	}
	return "", projects, nil
}

func (h *ProjectHandler) FetchMyProjects(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input userRef
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	uid, err := subjectUser(actor, input.UserID)
	if err != nil {
		return "", nil, err
	}
	grouped, err := h.svc.ListMine(c.Request.Context(), uid)
	if err != nil {
		return "", nil, err
	}
	return "", grouped, nil
}

func (h *ProjectHandler) FetchCollaborator(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input userRef
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	uid, err := subjectUser(actor, input.UserID)
	if err != nil {
		return "", nil, err
	}
	projects, err := h.svc.ListCollaborations(c.Request.Context(), uid)
	if err != nil {
		return "", nil, err
	}
	return "", projects, nil
}

func (h *ProjectHandler) FetchMembers(c *gin.Context, _ *types.Claims) (string, any, error) {
	var input projectRef
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	members, err := h.members.ListMembers(c.Request.Context(), input.ProjectMainID)
	if err != nil {
		return "", nil, err
	}
	return "", members, nil
}

func (h *ProjectHandler) AddMember(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input project.AddMemberDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	m, err := h.members.AddMember(c.Request.Context(), memberActor(actor), input.ProjectMainID, input.UserID, *input.IsActive)
	if err != nil {
		return "", nil, err
	}
	return "Member added", m, nil
}

func (h *ProjectHandler) RespondToInvite(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input project.RespondInviteDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	m, err := h.members.RespondToInvite(c.Request.Context(), memberActor(actor), input.MemberID, *input.Accept)
	if err != nil {
		return "", nil, err
	}
	msg := "Invitation declined"
	if *input.Accept {
		msg = "Invitation accepted"
	}
	return msg, m, nil
}

func memberActor(actor *types.Claims) application.Actor {
	return application.Actor{ID: actor.UserID, Staff: actor.HasRole(types.RoleTeacher)}
}

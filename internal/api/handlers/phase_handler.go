package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/projecthub-go/internal/application"
	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"github.com/linskybing/projecthub-go/pkg/types"
)

type PhaseHandler struct {
	phases  *application.PhaseService
	reviews *application.ReviewService
}

func NewPhaseHandler(phases *application.PhaseService, reviews *application.ReviewService) *PhaseHandler {
	return &PhaseHandler{phases: phases, reviews: reviews}
}

func (h *PhaseHandler) Register(d *Dispatcher) {
	d.Register("startPhase", h.StartPhase, types.RoleStudent, types.RoleTeacher)
	d.Register("submitForReview", h.SubmitForReview, types.RoleStudent, types.RoleTeacher)
	d.Register("requestRevision", h.RequestRevision, types.RoleTeacher)
	d.Register("fulfillRevision", h.FulfillRevision, types.RoleStudent, types.RoleTeacher)
	d.Register("decidePhase", h.DecidePhase, types.RoleTeacher)
	d.Register("fetchRevisions", h.FetchRevisions)
}

// StartPhase creates the phase instance and its first In Progress row. A
// second start of the same phase for the same project is a conflict.
func (h *PhaseHandler) StartPhase(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input phase.StartPhaseDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	pp, err := h.phases.StartPhase(c.Request.Context(), input.PhaseMainID, input.ProjectMainID, actor.UserID)
	if err != nil {
		return "", nil, err
	}
	return "Phase started", pp, nil
}

func (h *PhaseHandler) SubmitForReview(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input phase.PhaseProjectRefDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	entry, err := h.reviews.SubmitForReview(c.Request.Context(), input.PhaseProjectID, actor.UserID)
	if err != nil {
		return "", nil, err
	}
	return "Submitted for review", entry, nil
}

func (h *PhaseHandler) RequestRevision(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input phase.RequestRevisionDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	rev, err := h.reviews.RequestRevision(c.Request.Context(), application.RevisionRequest{
		PhaseProjectID: input.PhaseProjectID,
		ActorID:        actor.UserID,
		FeedbackText:   input.FeedbackText,
		OriginalFile:   input.OriginalFile,
	})
	if err != nil {
		return "", nil, err
	}
	return "Revision requested", rev, nil
}

// FulfillRevision attaches the revised file. Resubmitting is a separate submitForReview call.
func (h *PhaseHandler) FulfillRevision(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input phase.FulfillRevisionDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	rev, err := h.reviews.FulfillRevision(c.Request.Context(), input.RevisionID, input.RevisedFile, actor.UserID)
	if err != nil {
		return "", nil, err
	}
	return "Revision submitted", rev, nil
}

func (h *PhaseHandler) DecidePhase(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input phase.DecidePhaseDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	entry, err := h.reviews.Decide(c.Request.Context(), input.PhaseProjectID, actor.UserID, *input.Approve)
	if err != nil {
		return "", nil, err
	}
	msg := "Phase failed"
	if *input.Approve {
		msg = "Phase approved"
	}
	return msg, entry, nil
}

func (h *PhaseHandler) FetchRevisions(c *gin.Context, _ *types.Claims) (string, any, error) {
	var input phase.PhaseProjectRefDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	revs, err := h.reviews.ListRevisions(c.Request.Context(), input.PhaseProjectID)
	if err != nil {
		return "", nil, err
	}
	return "", revs, nil
}

package handlers

import (
	"encoding/base64"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/projecthub-go/internal/application"
	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"github.com/linskybing/projecthub-go/internal/domain/task"
	"github.com/linskybing/projecthub-go/pkg/types"
)

type ActivityHandler struct {
	activity *application.ActivityService
	tasks    *application.TaskService
}

func NewActivityHandler(activity *application.ActivityService, tasks *application.TaskService) *ActivityHandler {
	return &ActivityHandler{activity: activity, tasks: tasks}
}

func (h *ActivityHandler) Register(d *Dispatcher) {
	d.Register("insertDiscussion", h.InsertDiscussion)
	d.Register("uploadPhaseFile", h.UploadPhaseFile, types.RoleStudent, types.RoleTeacher)
	d.Register("createTask", h.CreateTask, types.RoleStudent, types.RoleTeacher)
	d.Register("fetchTasks", h.FetchTasks)
	d.Register("setTaskDone", h.SetTaskDone, types.RoleStudent, types.RoleTeacher)
}

func (h *ActivityHandler) InsertDiscussion(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input phase.DiscussionDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	d, err := h.activity.AddDiscussion(c.Request.Context(), input.PhaseProjectID, actor.UserID, input.Text)
	if err != nil {
		return "", nil, err
	}
	return "Discussion added", d, nil
}

// UploadPhaseFile decodes the base64 payload and hands the bytes to the blob store.
func (h *ActivityHandler) UploadPhaseFile(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input phase.UploadFileDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	if limit := h.activity.MaxUploadBytes; limit > 0 && int64(base64.StdEncoding.DecodedLen(len(input.Content))) > limit+2 {
		return "", nil, &application.OpError{
			Kind:    application.ErrValidation,
			Message: fmt.Sprintf("file exceeds the %d byte upload limit", limit),
		}
	}
	content, err := base64.StdEncoding.DecodeString(input.Content)
	if err != nil {
		return "", nil, &application.OpError{Kind: application.ErrValidation, Message: "content_base64 is not valid base64", Err: err}
	}
	f, err := h.activity.UploadFile(c.Request.Context(), application.Upload{
		PhaseProjectID: input.PhaseProjectID,
		UserID:         actor.UserID,
		FileName:       input.FileName,
		Content:        content,
	})
	if err != nil {
		return "", nil, err
	}
	return "File uploaded", f, nil
}

func (h *ActivityHandler) CreateTask(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input task.CreateTaskDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	t, err := h.tasks.CreateTask(c.Request.Context(), actor.UserID, input)
	if err != nil {
		return "", nil, err
	}
	return "Task created", t, nil
}

func (h *ActivityHandler) FetchTasks(c *gin.Context, _ *types.Claims) (string, any, error) {
	var input projectRef
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	tasks, err := h.tasks.ListTasks(c.Request.Context(), input.ProjectMainID)
	if err != nil {
		return "", nil, err
	}
	return "", tasks, nil
}

func (h *ActivityHandler) SetTaskDone(c *gin.Context, actor *types.Claims) (string, any, error) {
	var input task.SetDoneDTO
	if err := bind(c, &input); err != nil {
		return "", nil, err
	}
	if err := h.tasks.SetDone(c.Request.Context(), actor.UserID, input.TaskID, *input.IsDone); err != nil {
		return "", nil, err
	}
	return "Task updated", gin.H{"project_task_id": input.TaskID, "is_done": *input.IsDone}, nil
}

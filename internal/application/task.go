package application

import (
	"context"
	"strings"

	"github.com/linskybing/projecthub-go/internal/domain/task"
	"github.com/linskybing/projecthub-go/internal/domain/view"
	"github.com/linskybing/projecthub-go/internal/repository"
)

type TaskService struct {
	Repos *repository.Repos
}

func NewTaskService(repos *repository.Repos) *TaskService {
	return &TaskService{
		Repos: repos,
	}
}

// CreateTask adds a task and its assignees in one transaction.
func (s *TaskService) CreateTask(ctx context.Context, actorID uint, input task.CreateTaskDTO) (*task.ProjectTask, error) {
	t := &task.ProjectTask{
		ProjectMainID: input.ProjectMainID,
		Name:          strings.TrimSpace(input.Name),
		PriorityID:    input.PriorityID,
		AssignedBy:    actorID,
	}
	if t.ProjectMainID == 0 || t.Name == "" || actorID == 0 {
		return nil, validationf("project_main_id, task_name and actor are required")
	}
	if t.PriorityID < task.PriorityLow || t.PriorityID > task.PriorityHigh {
		return nil, validationf("priority_id must be 1, 2 or 3")
	}
	var err error
	if t.StartDate, err = parseDate(input.StartDate); err != nil {
		return nil, validationf("invalid task_start_date %q", input.StartDate)
	}
	if t.EndDate, err = parseDate(input.EndDate); err != nil {
		return nil, validationf("invalid task_end_date %q", input.EndDate)
	}
	if t.StartDate != nil && t.EndDate != nil && t.EndDate.Before(*t.StartDate) {
		return nil, validationf("task_end_date is before task_start_date")
	}

	assignees := make([]uint, 0, len(input.Assignees))
	seen := make(map[uint]bool)
	for _, uid := range input.Assignees {
		if uid != 0 && !seen[uid] {
			seen[uid] = true
			assignees = append(assignees, uid)
		}
	}

	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.Project.GetProjectByID(t.ProjectMainID); err != nil {
			return classify(err, ErrProjectNotFound)
		}
		if err := tx.Task.CreateTask(t); err != nil {
			return storageErr("failed to create task", err)
		}
		if err := tx.Task.AssignUsers(t.ID, assignees); err != nil {
			return storageErr("failed to assign task", err)
		}
		for _, uid := range assignees {
			t.Assignees = append(t.Assignees, task.ProjectAssigned{TaskID: t.ID, UserID: uid})
		}
		return recordAudit(tx, actorID, "create", "project_tasks", t.ID, nil, t)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) ListTasks(ctx context.Context, projectMainID uint) ([]view.TaskRow, error) {
	if projectMainID == 0 {
		return nil, validationf("project_main_id is required")
	}
	rows, err := s.Repos.WithContext(ctx).View.ListTasks(projectMainID)
	if err != nil {
		return nil, storageErr("failed to list tasks", err)
	}
	if rows == nil {
		rows = []view.TaskRow{}
	}
	return rows, nil
}

func (s *TaskService) SetDone(ctx context.Context, actorID, taskID uint, done bool) error {
	if taskID == 0 {
		return validationf("project_task_id is required")
	}
	return s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		n, err := tx.Task.SetDone(taskID, done)
		if err != nil {
			return storageErr("failed to update task", err)
		}
		if n == 0 {
			return notFound("task not found")
		}
		return recordAudit(tx, actorID, "set_done", "project_tasks", taskID, nil, map[string]bool{"is_done": done})
	})
}

package task

type CreateTaskDTO struct {
	ProjectMainID uint     `json:"project_main_id" binding:"required"`
	Name          string   `json:"task_name" binding:"required,notblank,max=255"`
	PriorityID    Priority `json:"priority_id" binding:"required,oneof=1 2 3"`
	StartDate     string   `json:"task_start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate       string   `json:"task_end_date" binding:"omitempty,datetime=2006-01-02"`
	Assignees     []uint   `json:"assignees" binding:"omitempty,dive,gt=0"`
}

type SetDoneDTO struct {
	TaskID uint  `json:"project_task_id" binding:"required"`
	IsDone *bool `json:"is_done" binding:"required"`
}

package task

import "time"

type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

type ProjectTask struct {
	ID            uint       `gorm:"primaryKey;column:project_task_id;autoIncrement" json:"project_task_id"`
	ProjectMainID uint       `gorm:"not null;index;column:project_main_id" json:"project_main_id"`
	Name          string     `gorm:"size:255;not null;column:task_name" json:"task_name"`
	PriorityID    Priority   `gorm:"not null;column:priority_id" json:"priority_id"`
	AssignedBy    uint       `gorm:"not null;column:assigned_by" json:"assigned_by"`
	StartDate     *time.Time `gorm:"type:date;column:task_start_date" json:"task_start_date,omitempty"`
	EndDate       *time.Time `gorm:"type:date;column:task_end_date" json:"task_end_date,omitempty"`
	IsDone        bool       `gorm:"not null;column:is_done" json:"is_done"`
	CreatedAt     time.Time  `gorm:"column:task_created_at;autoCreateTime" json:"created_at"`

	Assignees []ProjectAssigned `gorm:"foreignKey:TaskID" json:"assignees"`
}

func (ProjectTask) TableName() string {
	return "project_tasks"
}

type ProjectAssigned struct {
	ID     uint `gorm:"primaryKey;column:project_assigned_id;autoIncrement" json:"project_assigned_id"`
	TaskID uint `gorm:"not null;column:project_task_id;uniqueIndex:uk_task_assignee,priority:1" json:"project_task_id"`
	UserID uint `gorm:"not null;column:user_id;uniqueIndex:uk_task_assignee,priority:2" json:"user_id"`
}

func (ProjectAssigned) TableName() string {
	return "project_assigned"
}

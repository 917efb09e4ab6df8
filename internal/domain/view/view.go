package view

import (
	"time"

	"github.com/linskybing/projecthub-go/internal/domain/status"
)

// Read models for joined queries. Columns map one-to-one to the SELECT aliases
// in repository/view.go.

type ProjectSummary struct {
	ProjectMainID uint      `gorm:"column:project_main_id" json:"project_main_id"`
	MasterID      uint      `gorm:"column:project_main_master_id" json:"project_master_id"`
	Title         string    `gorm:"column:project_main_title" json:"project_main_title"`
	Description   string    `gorm:"column:project_main_description" json:"project_main_description"`
	CreatorID     uint      `gorm:"column:project_created_by_user_id" json:"project_created_by_user_id"`
	CreatorName   string    `gorm:"column:creator_name" json:"creator_name"`
	IsActive      bool      `gorm:"column:project_main_is_active" json:"project_main_is_active"`
	MemberCount   int       `gorm:"column:member_count" json:"member_count"`
	CreatedAt     time.Time `gorm:"column:project_main_created_at" json:"created_at"`
}

// MyProjectRow is one (master, project) pair the user belongs to.
type MyProjectRow struct {
	MasterID      uint   `gorm:"column:project_master_id"`
	MasterTitle   string `gorm:"column:project_title"`
	MasterCode    string `gorm:"column:project_code"`
	ProjectMainID uint   `gorm:"column:project_main_id"`
	Title         string `gorm:"column:project_main_title"`
	MemberState   int    `gorm:"column:is_active"`
}

type MasterProjects struct {
	MasterID    uint            `json:"project_master_id"`
	MasterTitle string          `json:"project_title"`
	MasterCode  string          `json:"project_code"`
	Projects    []MyProjectItem `json:"projects"`
}

type MyProjectItem struct {
	ProjectMainID uint   `json:"project_main_id"`
	Title         string `json:"project_main_title"`
	MemberState   int    `json:"is_active"`
}

type JoinedWorkspace struct {
	StudentJoinedID uint      `gorm:"column:student_joined_id" json:"student_joined_id"`
	StudentUserID   uint      `gorm:"column:student_user_id" json:"student_user_id"`
	JoinedAt        time.Time `gorm:"column:student_joined_date" json:"student_joined_date"`
	MasterID        uint      `gorm:"column:project_master_id" json:"project_master_id"`
	Title           string    `gorm:"column:project_title" json:"project_title"`
	Description     string    `gorm:"column:project_description" json:"project_description"`
	Code            string    `gorm:"column:project_code" json:"project_code"`
	IsActive        bool      `gorm:"column:project_is_active" json:"project_is_active"`
	SchoolYearID    uint      `gorm:"column:project_school_year_id" json:"project_school_year_id"`
	TeacherID       uint      `gorm:"column:project_teacher_id" json:"project_teacher_id"`
	TeacherName     string    `gorm:"column:teacher_name" json:"teacher_name"`
	TeacherEmail    string    `gorm:"column:teacher_email" json:"teacher_email"`
}

type MemberRow struct {
	ID            uint   `gorm:"column:project_members_id" json:"project_members_id"`
	ProjectMainID uint   `gorm:"column:project_main_id" json:"project_main_id"`
	UserID        uint   `gorm:"column:project_users_id" json:"project_users_id"`
	IsActive      int    `gorm:"column:is_active" json:"is_active"`
	UserName      string `gorm:"column:user_name" json:"user_name"`
	Email         string `gorm:"column:users_email" json:"users_email"`
}

// PhaseOverviewRow is one template phase left-joined with its instance for a project.
type PhaseOverviewRow struct {
	PhaseMainID    uint       `gorm:"column:phase_main_id"`
	Name           string     `gorm:"column:phase_main_name"`
	Description    string     `gorm:"column:phase_main_description"`
	StartDate      *time.Time `gorm:"column:phase_start_date"`
	EndDate        *time.Time `gorm:"column:phase_end_date"`
	PhaseProjectID *uint      `gorm:"column:phase_project_id"`
	StatusCode     *int       `gorm:"column:status_code"`
}

type PhaseRow struct {
	PhaseProjectID uint       `gorm:"column:phase_project_id" json:"phase_project_id"`
	PhaseMainID    uint       `gorm:"column:phase_main_id" json:"phase_main_id"`
	ProjectMainID  uint       `gorm:"column:phase_project_main_id" json:"project_main_id"`
	Name           string     `gorm:"column:phase_main_name" json:"phase_main_name"`
	Description    string     `gorm:"column:phase_main_description" json:"phase_main_description"`
	StartDate      *time.Time `gorm:"column:phase_start_date" json:"phase_start_date,omitempty"`
	EndDate        *time.Time `gorm:"column:phase_end_date" json:"phase_end_date,omitempty"`
	CreatedBy      uint       `gorm:"column:phase_created_by" json:"phase_created_by"`
	CreatedByName  string     `gorm:"column:created_by_name" json:"created_by_name"`
	CreatedAt      time.Time  `gorm:"column:phase_project_created_at" json:"created_at"`
}

type StatusRow struct {
	ID        uint        `gorm:"column:id" json:"id"`
	Code      status.Code `gorm:"column:code" json:"status_code"`
	Label     string      `gorm:"-" json:"status"`
	ActorID   uint        `gorm:"column:actor_id" json:"actor_id"`
	ActorName string      `gorm:"column:actor_name" json:"actor_name"`
	CreatedAt time.Time   `gorm:"column:created_at" json:"created_at"`
}

func (r StatusRow) Entry(scope status.Scope, scopeID uint) status.Entry {
	return status.Entry{ID: r.ID, Scope: scope, ScopeID: scopeID, Code: r.Code, ActorID: r.ActorID, CreatedAt: r.CreatedAt}
}

type DiscussionRow struct {
	ID        uint      `gorm:"column:phase_discussion_id" json:"phase_discussion_id"`
	UserID    uint      `gorm:"column:discussion_user_id" json:"user_id"`
	UserName  string    `gorm:"column:user_name" json:"user_name"`
	Text      string    `gorm:"column:discussion_text" json:"discussion_text"`
	CreatedAt time.Time `gorm:"column:discussion_created_at" json:"created_at"`
}

type FileRow struct {
	ID           uint      `gorm:"column:phase_project_files_id" json:"phase_project_files_id"`
	StoredName   string    `gorm:"column:phase_project_file" json:"phase_project_file"`
	OriginalName string    `gorm:"column:phase_file_original_name" json:"original_name"`
	ContentType  string    `gorm:"column:phase_file_content_type" json:"content_type"`
	Size         int64     `gorm:"column:phase_file_size" json:"size"`
	CreatedBy    uint      `gorm:"column:phase_file_created_by" json:"phase_file_created_by"`
	UploaderName string    `gorm:"column:uploader_name" json:"uploader_name"`
	CreatedAt    time.Time `gorm:"column:phase_file_created_at" json:"created_at"`
}

type TaskRow struct {
	ID            uint       `gorm:"column:project_task_id" json:"project_task_id"`
	ProjectMainID uint       `gorm:"column:project_main_id" json:"project_main_id"`
	Name          string     `gorm:"column:task_name" json:"task_name"`
	PriorityID    int        `gorm:"column:priority_id" json:"priority_id"`
	AssignedBy    uint       `gorm:"column:assigned_by" json:"assigned_by"`
	AssignerName  string     `gorm:"column:assigner_name" json:"assigner_name"`
	StartDate     *time.Time `gorm:"column:task_start_date" json:"task_start_date,omitempty"`
	EndDate       *time.Time `gorm:"column:task_end_date" json:"task_end_date,omitempty"`
	IsDone        bool       `gorm:"column:is_done" json:"is_done"`
	CreatedAt     time.Time  `gorm:"column:task_created_at" json:"created_at"`
	Assignees     []uint     `gorm:"-" json:"assignees"`
}

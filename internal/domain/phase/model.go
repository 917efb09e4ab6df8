package phase

import (
	"time"

	"github.com/linskybing/projecthub-go/internal/domain/status"
)

// PhaseMain is a template phase defined on a ProjectMaster.
type PhaseMain struct {
	ID          uint       `gorm:"primaryKey;column:phase_main_id;autoIncrement" json:"phase_main_id"`
	MasterID    uint       `gorm:"not null;index;column:phase_project_master_id" json:"phase_project_master_id"`
	Name        string     `gorm:"size:255;not null;column:phase_main_name" json:"phase_main_name"`
	Description string     `gorm:"type:text;column:phase_main_description" json:"phase_main_description"`
	StartDate   *time.Time `gorm:"type:date;column:phase_start_date" json:"phase_start_date,omitempty"`
	EndDate     *time.Time `gorm:"type:date;column:phase_end_date" json:"phase_end_date,omitempty"`
	CreatedAt   time.Time  `gorm:"column:phase_created_at;autoCreateTime" json:"created_at"`
}

func (PhaseMain) TableName() string {
	return "phase_main"
}

// PhaseProject is a started phase: one per (template phase, project).
type PhaseProject struct {
	ID            uint      `gorm:"primaryKey;column:phase_project_id;autoIncrement" json:"phase_project_id"`
	PhaseMainID   uint      `gorm:"not null;column:phase_project_phase_id;uniqueIndex:uk_phase_project,priority:1" json:"phase_main_id"`
	ProjectMainID uint      `gorm:"not null;column:phase_project_main_id;uniqueIndex:uk_phase_project,priority:2;index" json:"project_main_id"`
	CreatedBy     uint      `gorm:"not null;column:phase_created_by" json:"phase_created_by"`
	CreatedAt     time.Time `gorm:"column:phase_project_created_at;autoCreateTime" json:"created_at"`
}

func (PhaseProject) TableName() string {
	return "phase_project"
}

// PhaseProjectStatus is a row of the phase-level status ledger. Rows are never updated.
type PhaseProjectStatus struct {
	ID             uint        `gorm:"primaryKey;column:phase_project_status_id;autoIncrement"`
	PhaseProjectID uint        `gorm:"not null;column:phase_project_id;index:idx_phase_status_latest,priority:1"`
	StatusCode     status.Code `gorm:"not null;column:phase_project_status_status_id"`
	CreatedBy      uint        `gorm:"not null;column:phase_project_status_created_by"`
	CreatedAt      time.Time   `gorm:"not null;column:phase_project_status_created_at;index:idx_phase_status_latest,priority:2"`
}

func (PhaseProjectStatus) TableName() string {
	return "phase_project_status"
}

// RevisionPhase is a teacher's revision request on a started phase.
// RevisedFile stays empty until the team answers it.
type RevisionPhase struct {
	ID             uint       `gorm:"primaryKey;column:revision_phase_id;autoIncrement" json:"revision_phase_id"`
	PhaseProjectID uint       `gorm:"not null;index;column:phase_project_id" json:"phase_project_id"`
	OriginalFile   string     `gorm:"size:512;not null;column:revision_file_original" json:"revision_file_original"`
	RevisedFile    string     `gorm:"size:512;column:revision_file_revised" json:"revision_file_revised"`
	FeedbackText   string     `gorm:"type:text;not null;column:revision_feedback" json:"revision_feedback"`
	CreatedBy      uint       `gorm:"not null;column:revision_created_by" json:"revision_created_by"`
	CreatedAt      time.Time  `gorm:"column:revision_created_at;autoCreateTime" json:"created_at"`
	RevisedAt      *time.Time `gorm:"column:revision_revised_at" json:"revised_at,omitempty"`
}

func (RevisionPhase) TableName() string {
	return "revision_phase"
}

func (r RevisionPhase) Fulfilled() bool {
	return r.RevisedFile != ""
}

type PhaseDiscussion struct {
	ID             uint      `gorm:"primaryKey;column:phase_discussion_id;autoIncrement" json:"phase_discussion_id"`
	PhaseProjectID uint      `gorm:"not null;index;column:phase_project_id" json:"phase_project_id"`
	UserID         uint      `gorm:"not null;column:discussion_user_id" json:"user_id"`
	Text           string    `gorm:"type:text;not null;column:discussion_text" json:"discussion_text"`
	CreatedAt      time.Time `gorm:"column:discussion_created_at;autoCreateTime" json:"created_at"`
}

func (PhaseDiscussion) TableName() string {
	return "phase_discussion"
}

// PhaseProjectFile is the manifest row for an uploaded blob.
type PhaseProjectFile struct {
	ID             uint      `gorm:"primaryKey;column:phase_project_files_id;autoIncrement" json:"phase_project_files_id"`
	PhaseProjectID uint      `gorm:"not null;index;column:phase_project_id" json:"phase_project_id"`
	StoredName     string    `gorm:"size:512;not null;uniqueIndex;column:phase_project_file" json:"phase_project_file"`
	OriginalName   string    `gorm:"size:255;not null;column:phase_file_original_name" json:"original_name"`
	ContentType    string    `gorm:"size:128;column:phase_file_content_type" json:"content_type"`
	Size           int64     `gorm:"not null;column:phase_file_size" json:"size"`
	CreatedBy      uint      `gorm:"not null;column:phase_file_created_by" json:"phase_file_created_by"`
	CreatedAt      time.Time `gorm:"column:phase_file_created_at;autoCreateTime" json:"created_at"`
}

func (PhaseProjectFile) TableName() string {
	return "phase_project_files"
}

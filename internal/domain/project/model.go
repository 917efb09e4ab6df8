package project

import (
	"time"

	"github.com/linskybing/projecthub-go/internal/domain/status"
)

// ProjectMaster is a teacher-owned template students enroll into by code.
type ProjectMaster struct {
	ID           uint      `gorm:"primaryKey;column:project_master_id;autoIncrement" json:"project_master_id"`
	Title        string    `gorm:"size:255;not null;column:project_title" json:"project_title"`
	Description  string    `gorm:"type:text;column:project_description" json:"project_description"`
	Code         string    `gorm:"size:64;not null;uniqueIndex:uk_project_master_code;column:project_code" json:"project_code"`
	TeacherID    uint      `gorm:"not null;index;column:project_teacher_id" json:"project_teacher_id"`
	IsActive     bool      `gorm:"not null;column:project_is_active" json:"project_is_active"`
	SchoolYearID uint      `gorm:"not null;index;column:project_school_year_id" json:"project_school_year_id"`
	CreatedAt    time.Time `gorm:"column:project_created_at;autoCreateTime" json:"created_at"`
}

func (ProjectMaster) TableName() string {
	return "project_master"
}

// ProjectMain is one team's instance of a ProjectMaster.
type ProjectMain struct {
	ID          uint      `gorm:"primaryKey;column:project_main_id;autoIncrement" json:"project_main_id"`
	MasterID    uint      `gorm:"not null;index;column:project_main_master_id" json:"project_main_master_id"`
	Title       string    `gorm:"size:255;not null;column:project_main_title" json:"project_main_title"`
	Description string    `gorm:"type:text;column:project_main_description" json:"project_main_description"`
	CreatorID   uint      `gorm:"not null;column:project_created_by_user_id" json:"project_created_by_user_id"`
	IsActive    bool      `gorm:"not null;column:project_main_is_active" json:"project_main_is_active"`
	CreatedAt   time.Time `gorm:"column:project_main_created_at;autoCreateTime" json:"created_at"`
}

func (ProjectMain) TableName() string {
	return "project_main"
}

// ProjectStatus is a row of the project-level status ledger. Rows are never updated.
type ProjectStatus struct {
	ID            uint        `gorm:"primaryKey;column:project_status_id;autoIncrement"`
	ProjectMainID uint        `gorm:"not null;column:project_main_id;index:idx_project_status_latest,priority:1"`
	StatusCode    status.Code `gorm:"not null;column:project_status_status_id"`
	UpdatedBy     uint        `gorm:"not null;column:project_status_updated_by"`
	CreatedAt     time.Time   `gorm:"not null;column:project_status_created_at;index:idx_project_status_latest,priority:2"`
}

func (ProjectStatus) TableName() string {
	return "project_status"
}

// MemberState is the invitation state of a ProjectMember.
type MemberState int

const (
	MemberDeclined MemberState = -1
	MemberPending  MemberState = 0
	MemberAccepted MemberState = 1
)

func (s MemberState) Valid() bool {
	return s == MemberDeclined || s == MemberPending || s == MemberAccepted
}

func (s MemberState) String() string {
	switch s {
	case MemberDeclined:
		return "declined"
	case MemberPending:
		return "pending"
	case MemberAccepted:
		return "accepted"
	}
	return "unknown"
}

type ProjectMember struct {
	ID            uint        `gorm:"primaryKey;column:project_members_id;autoIncrement" json:"project_members_id"`
	ProjectMainID uint        `gorm:"not null;column:project_main_id;uniqueIndex:uk_project_member,priority:1" json:"project_main_id"`
	UserID        uint        `gorm:"not null;column:project_users_id;uniqueIndex:uk_project_member,priority:2;index" json:"project_users_id"`
	IsActive      MemberState `gorm:"not null;column:is_active" json:"is_active"`
	CreatedAt     time.Time   `gorm:"column:project_members_created_at;autoCreateTime" json:"created_at"`
}

func (ProjectMember) TableName() string {
	return "project_members"
}

// StudentJoined records a student's enrollment into a ProjectMaster.
type StudentJoined struct {
	ID              uint      `gorm:"primaryKey;column:student_joined_id;autoIncrement" json:"student_joined_id"`
	StudentUserID   uint      `gorm:"not null;column:student_user_id;uniqueIndex:uk_student_joined,priority:1" json:"student_user_id"`
	ProjectMasterID uint      `gorm:"not null;column:project_master_id;uniqueIndex:uk_student_joined,priority:2;index" json:"project_master_id"`
	JoinedAt        time.Time `gorm:"column:student_joined_date;autoCreateTime" json:"student_joined_date"`
}

func (StudentJoined) TableName() string {
	return "student_joined"
}

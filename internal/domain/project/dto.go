package project

type CreateMasterDTO struct {
	Title        string `json:"project_title" binding:"required,notblank,max=255"`
	Description  string `json:"project_description"`
	Code         string `json:"project_code" binding:"required,project_code"`
	SchoolYearID uint   `json:"project_school_year_id" binding:"required"`
	IsActive     *bool  `json:"project_is_active,omitempty"`
}

type CreateProjectDTO struct {
	MasterID    uint   `json:"project_master_id" binding:"required"`
	Title       string `json:"project_main_title" binding:"required,notblank,max=255"`
	Description string `json:"project_main_description"`
	TeamMembers []uint `json:"team_members" binding:"omitempty,dive,gt=0"`
}

type AddMemberDTO struct {
	ProjectMainID uint         `json:"project_main_id" binding:"required"`
	UserID        uint         `json:"user_id" binding:"required"`
	IsActive      *MemberState `json:"is_active" binding:"required,oneof=-1 0 1"`
}

type RespondInviteDTO struct {
	MemberID uint  `json:"project_members_id" binding:"required"`
	Accept   *bool `json:"accept" binding:"required"`
}

type JoinWorkspaceDTO struct {
	Code string `json:"project_code" binding:"required"`
}

type BatchJoinDTO struct {
	Code    string  `json:"project_code" binding:"required"`
	UserIDs []int64 `json:"user_ids" binding:"required,min=1"`
}

// SkippedJoin explains why a batch entry was not enrolled.
type SkippedJoin struct {
	UserID int64  `json:"user_id"`
	Reason string `json:"reason"`
}

const (
	SkipAlreadyJoined = "already_joined"
	SkipInvalidUserID = "invalid_user_id"
	SkipStorageError  = "storage_error"
)

type BatchJoinResult struct {
	ProjectMasterID uint          `json:"project_master_id"`
	Inserted        []int64       `json:"inserted"`
	Skipped         []SkippedJoin `json:"skipped"`
	Duplicates      []int64       `json:"duplicates"`
	TotalInserted   int           `json:"total_inserted"`
	TotalSkipped    int           `json:"total_skipped"`
}

package repository

import (
	"fmt"

	"github.com/linskybing/projecthub-go/internal/domain/view"
	"gorm.io/gorm"
)

// ViewRepo serves the joined read models. Nothing here writes.
type ViewRepo interface {
	ListProjectsByMaster(masterID uint) ([]view.ProjectSummary, error)
	ListProjectsByUser(userID uint) ([]view.MyProjectRow, error)
	ListCollaborations(userID uint) ([]view.ProjectSummary, error)
	ListMembers(projectMainID uint) ([]view.MemberRow, error)
	ListJoinedWorkspaces(studentID uint) ([]view.JoinedWorkspace, error)
	PhaseOverview(projectMainID, masterID uint) ([]view.PhaseOverviewRow, error)
	GetPhaseRow(phaseProjectID uint) (view.PhaseRow, error)
	PhaseStatusHistory(phaseProjectID uint) ([]view.StatusRow, error)
	ListDiscussions(phaseProjectID uint) ([]view.DiscussionRow, error)
	ListFiles(phaseProjectID uint) ([]view.FileRow, error)
	ListTasks(projectMainID uint) ([]view.TaskRow, error)
	WithTx(tx *gorm.DB) ViewRepo
}

type DBViewRepo struct {
	db *gorm.DB
}

func NewViewRepo(db *gorm.DB) *DBViewRepo {
	return &DBViewRepo{
		db: db,
	}
}

func nameOf(alias string) string {
	return fmt.Sprintf("TRIM(CONCAT(%[1]s.users_fname, ' ', %[1]s.users_lname))", alias)
}

const projectSummaryColumns = `pm.project_main_id, pm.project_main_master_id, pm.project_main_title,
	pm.project_main_description, pm.project_created_by_user_id, pm.project_main_is_active,
	pm.project_main_created_at,
	(SELECT COUNT(*) FROM project_members c WHERE c.project_main_id = pm.project_main_id AND c.is_active = 1) AS member_count`

func (r *DBViewRepo) ListProjectsByMaster(masterID uint) ([]view.ProjectSummary, error) {
	var rows []view.ProjectSummary
	err := r.db.Table("project_main pm").
		Select(projectSummaryColumns+", "+nameOf("u")+" AS creator_name").
		Joins("LEFT JOIN users u ON u.users_id = pm.project_created_by_user_id").
		Where("pm.project_main_master_id = ?", masterID).
		Order("pm.project_main_created_at DESC, pm.project_main_id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *DBViewRepo) ListProjectsByUser(userID uint) ([]view.MyProjectRow, error) {
	var rows []view.MyProjectRow
	err := r.db.Table("project_members m").
		Select(`ms.project_master_id, ms.project_title, ms.project_code,
			pm.project_main_id, pm.project_main_title, m.is_active`).
		Joins("JOIN project_main pm ON pm.project_main_id = m.project_main_id").
		Joins("JOIN project_master ms ON ms.project_master_id = pm.project_main_master_id").
		Where("m.project_users_id = ? AND m.is_active = 1", userID).
		Order("ms.project_master_id ASC, pm.project_main_id ASC").
		Scan(&rows).Error
	return rows, err
}

// ListCollaborations returns projects the user was invited to but did not create.
func (r *DBViewRepo) ListCollaborations(userID uint) ([]view.ProjectSummary, error) {
	var rows []view.ProjectSummary
	err := r.db.Table("project_members m").
		Select(projectSummaryColumns+", "+nameOf("u")+" AS creator_name").
		Joins("JOIN project_main pm ON pm.project_main_id = m.project_main_id").
		Joins("LEFT JOIN users u ON u.users_id = pm.project_created_by_user_id").
		Where("m.project_users_id = ? AND pm.project_created_by_user_id <> ?", userID, userID).
		Order("pm.project_main_created_at DESC, pm.project_main_id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *DBViewRepo) ListMembers(projectMainID uint) ([]view.MemberRow, error) {
	var rows []view.MemberRow
	err := r.db.Table("project_members m").
		Select("m.project_members_id, m.project_main_id, m.project_users_id, m.is_active, "+
			nameOf("u")+" AS user_name, u.users_email").
		Joins("LEFT JOIN users u ON u.users_id = m.project_users_id").
		Where("m.project_main_id = ?", projectMainID).
		Order("m.project_members_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *DBViewRepo) ListJoinedWorkspaces(studentID uint) ([]view.JoinedWorkspace, error) {
	var rows []view.JoinedWorkspace
	err := r.db.Table("student_joined sj").
		Select(`sj.student_joined_id, sj.student_user_id, sj.student_joined_date,
			ms.project_master_id, ms.project_title, ms.project_description, ms.project_code,
			ms.project_is_active, ms.project_school_year_id, ms.project_teacher_id, `+
			nameOf("t")+" AS teacher_name, t.users_email AS teacher_email").
		Joins("JOIN project_master ms ON ms.project_master_id = sj.project_master_id").
		Joins("LEFT JOIN users t ON t.users_id = ms.project_teacher_id").
		Where("sj.student_user_id = ?", studentID).
		Order("sj.student_joined_date DESC, sj.student_joined_id DESC").
		Scan(&rows).Error
	return rows, err
}

// PhaseOverview lists every template phase of masterID with the project's instance
// and its current status, if any. The current status is the ledger row with the
// latest timestamp, ties broken by the higher id.
func (r *DBViewRepo) PhaseOverview(projectMainID, masterID uint) ([]view.PhaseOverviewRow, error) {
	var rows []view.PhaseOverviewRow
	err := r.db.Raw(`
		SELECT ph.phase_main_id, ph.phase_main_name, ph.phase_main_description,
		       ph.phase_start_date, ph.phase_end_date, pp.phase_project_id,
		       (SELECT s.phase_project_status_status_id
		          FROM phase_project_status s
		         WHERE s.phase_project_id = pp.phase_project_id
		         ORDER BY s.phase_project_status_created_at DESC, s.phase_project_status_id DESC
		         LIMIT 1) AS status_code
		  FROM phase_main ph
		  LEFT JOIN phase_project pp
		    ON pp.phase_project_phase_id = ph.phase_main_id
		   AND pp.phase_project_main_id = ?
		 WHERE ph.phase_project_master_id = ?
		 ORDER BY ph.phase_main_id ASC`, projectMainID, masterID).
		Scan(&rows).Error
	return rows, err
}

func (r *DBViewRepo) GetPhaseRow(phaseProjectID uint) (view.PhaseRow, error) {
	var row view.PhaseRow
	res := r.db.Table("phase_project pp").
		Select(`pp.phase_project_id, ph.phase_main_id, pp.phase_project_main_id, ph.phase_main_name,
			ph.phase_main_description, ph.phase_start_date, ph.phase_end_date, pp.phase_created_by,
			pp.phase_project_created_at, `+nameOf("u")+" AS created_by_name").
		Joins("JOIN phase_main ph ON ph.phase_main_id = pp.phase_project_phase_id").
		Joins("LEFT JOIN users u ON u.users_id = pp.phase_created_by").
		Where("pp.phase_project_id = ?", phaseProjectID).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return row, res.Error
	}
	if res.RowsAffected == 0 {
		return row, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (r *DBViewRepo) PhaseStatusHistory(phaseProjectID uint) ([]view.StatusRow, error) {
	var rows []view.StatusRow
	err := r.db.Table("phase_project_status s").
		Select(`s.phase_project_status_id AS id, s.phase_project_status_status_id AS code,
			s.phase_project_status_created_by AS actor_id, s.phase_project_status_created_at AS created_at, `+
			nameOf("u")+" AS actor_name").
		Joins("LEFT JOIN users u ON u.users_id = s.phase_project_status_created_by").
		Where("s.phase_project_id = ?", phaseProjectID).
		Order("s.phase_project_status_created_at DESC, s.phase_project_status_id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *DBViewRepo) ListDiscussions(phaseProjectID uint) ([]view.DiscussionRow, error) {
	var rows []view.DiscussionRow
	err := r.db.Table("phase_discussion d").
		Select("d.phase_discussion_id, d.discussion_user_id, d.discussion_text, d.discussion_created_at, "+
			nameOf("u")+" AS user_name").
		Joins("LEFT JOIN users u ON u.users_id = d.discussion_user_id").
		Where("d.phase_project_id = ?", phaseProjectID).
		Order("d.discussion_created_at DESC, d.phase_discussion_id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *DBViewRepo) ListFiles(phaseProjectID uint) ([]view.FileRow, error) {
	var rows []view.FileRow
	err := r.db.Table("phase_project_files f").
		Select(`f.phase_project_files_id, f.phase_project_file, f.phase_file_original_name,
			f.phase_file_content_type, f.phase_file_size, f.phase_file_created_by, f.phase_file_created_at, `+
			nameOf("u")+" AS uploader_name").
		Joins("LEFT JOIN users u ON u.users_id = f.phase_file_created_by").
		Where("f.phase_project_id = ?", phaseProjectID).
		Order("f.phase_file_created_at DESC, f.phase_project_files_id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *DBViewRepo) ListTasks(projectMainID uint) ([]view.TaskRow, error) {
	var rows []view.TaskRow
	err := r.db.Table("project_tasks t").
		Select(`t.project_task_id, t.project_main_id, t.task_name, t.priority_id, t.assigned_by,
			t.task_start_date, t.task_end_date, t.is_done, t.task_created_at, `+
			nameOf("u")+" AS assigner_name").
		Joins("LEFT JOIN users u ON u.users_id = t.assigned_by").
		Where("t.project_main_id = ?", projectMainID).
		Order("t.priority_id DESC, t.project_task_id ASC").
		Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return rows, err
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	var assigned []struct {
		TaskID uint `gorm:"column:project_task_id"`
		UserID uint `gorm:"column:user_id"`
	}
	if err := r.db.Table("project_assigned").
		Select("project_task_id, user_id").
		Where("project_task_id IN ?", ids).
		Order("project_assigned_id ASC").
		Scan(&assigned).Error; err != nil {
		return nil, err
	}
	byTask := make(map[uint][]uint, len(rows))
	for _, a := range assigned {
		byTask[a.TaskID] = append(byTask[a.TaskID], a.UserID)
	}
	for i := range rows {
		rows[i].Assignees = byTask[rows[i].ID]
		if rows[i].Assignees == nil {
			rows[i].Assignees = []uint{}
		}
	}
	return rows, nil
}

func (r *DBViewRepo) WithTx(tx *gorm.DB) ViewRepo {
	if tx == nil {
		return r
	}
	return &DBViewRepo{
		db: tx,
	}
}

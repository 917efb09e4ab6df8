package repository

import (
	"github.com/linskybing/projecthub-go/internal/domain/project"
	"gorm.io/gorm"
)

type MemberRepo interface {
	CreateMember(m *project.ProjectMember) error
	GetMember(id uint) (project.ProjectMember, error)
	FindMember(projectMainID, userID uint) (*project.ProjectMember, error)
	SetMemberState(id uint, state project.MemberState) (int64, error)
	WithTx(tx *gorm.DB) MemberRepo
}

type DBMemberRepo struct {
	db *gorm.DB
}

func NewMemberRepo(db *gorm.DB) *DBMemberRepo {
	return &DBMemberRepo{
		db: db,
	}
}

func (r *DBMemberRepo) CreateMember(m *project.ProjectMember) error {
	return r.db.Create(m).Error
}

func (r *DBMemberRepo) GetMember(id uint) (project.ProjectMember, error) {
	var m project.ProjectMember
	err := r.db.First(&m, id).Error
	return m, err
}

// FindMember returns nil when the user has no row on the project.
func (r *DBMemberRepo) FindMember(projectMainID, userID uint) (*project.ProjectMember, error) {
	var rows []project.ProjectMember
	err := r.db.Where("project_main_id = ? AND project_users_id = ?", projectMainID, userID).
		Limit(1).
		Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

// SetMemberState only touches the row when the state actually changes and
// reports how many rows were updated.
func (r *DBMemberRepo) SetMemberState(id uint, state project.MemberState) (int64, error) {
	res := r.db.Model(&project.ProjectMember{}).
		Where("project_members_id = ? AND is_active <> ?", id, state).
		Update("is_active", state)
	return res.RowsAffected, res.Error
}

func (r *DBMemberRepo) WithTx(tx *gorm.DB) MemberRepo {
	if tx == nil {
		return r
	}
	return &DBMemberRepo{
		db: tx,
	}
}

package repository

import (
	"github.com/linskybing/projecthub-go/internal/domain/project"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo interface {
	CreateMaster(m *project.ProjectMaster) error
	GetMasterByID(id uint) (project.ProjectMaster, error)
	GetMasterByCode(code string) (project.ProjectMaster, error)
	ListMastersBySchoolYear(schoolYearID uint) ([]project.ProjectMaster, error)
	CreateProject(p *project.ProjectMain) error
	GetProjectByID(id uint) (project.ProjectMain, error)
	LockProject(id uint) (project.ProjectMain, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

func (r *DBProjectRepo) CreateMaster(m *project.ProjectMaster) error {
	return r.db.Create(m).Error
}

func (r *DBProjectRepo) GetMasterByID(id uint) (project.ProjectMaster, error) {
	var m project.ProjectMaster
	err := r.db.First(&m, id).Error
	return m, err
}

func (r *DBProjectRepo) GetMasterByCode(code string) (project.ProjectMaster, error) {
	var m project.ProjectMaster
	err := r.db.Where("project_code = ?", code).First(&m).Error
	return m, err
}

func (r *DBProjectRepo) ListMastersBySchoolYear(schoolYearID uint) ([]project.ProjectMaster, error) {
	var masters []project.ProjectMaster
	err := r.db.Where("project_school_year_id = ?", schoolYearID).
		Order("project_created_at DESC").
		Find(&masters).Error
	return masters, err
}

func (r *DBProjectRepo) CreateProject(p *project.ProjectMain) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) GetProjectByID(id uint) (project.ProjectMain, error) {
	var p project.ProjectMain
	err := r.db.First(&p, id).Error
	return p, err
}

// LockProject reads the project row with FOR UPDATE. Must run inside a transaction.
func (r *DBProjectRepo) LockProject(id uint) (project.ProjectMain, error) {
	var p project.ProjectMain
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error
	return p, err
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{
		db: tx,
	}
}

package repository

import (
	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"gorm.io/gorm"
)

type PhaseRepo interface {
	CreatePhases(phases []phase.PhaseMain) error
	GetPhaseByID(id uint) (phase.PhaseMain, error)
	ListPhasesByMaster(masterID uint) ([]phase.PhaseMain, error)
	InstanceExists(phaseMainID, projectMainID uint) (bool, error)
	CreateInstance(pp *phase.PhaseProject) error
	GetInstance(id uint) (phase.PhaseProject, error)
	FindInstance(phaseMainID, projectMainID uint) (*phase.PhaseProject, error)
	WithTx(tx *gorm.DB) PhaseRepo
}

type DBPhaseRepo struct {
	db *gorm.DB
}

func NewPhaseRepo(db *gorm.DB) *DBPhaseRepo {
	return &DBPhaseRepo{
		db: db,
	}
}

func (r *DBPhaseRepo) CreatePhases(phases []phase.PhaseMain) error {
	if len(phases) == 0 {
		return nil
	}
	return r.db.Create(&phases).Error
}

func (r *DBPhaseRepo) GetPhaseByID(id uint) (phase.PhaseMain, error) {
	var p phase.PhaseMain
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBPhaseRepo) ListPhasesByMaster(masterID uint) ([]phase.PhaseMain, error) {
	var phases []phase.PhaseMain
	err := r.db.Where("phase_project_master_id = ?", masterID).
		Order("phase_main_id ASC").
		Find(&phases).Error
	return phases, err
}

func (r *DBPhaseRepo) InstanceExists(phaseMainID, projectMainID uint) (bool, error) {
	var count int64
	err := r.db.Model(&phase.PhaseProject{}).
		Where("phase_project_phase_id = ? AND phase_project_main_id = ?", phaseMainID, projectMainID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBPhaseRepo) CreateInstance(pp *phase.PhaseProject) error {
	return r.db.Create(pp).Error
}

func (r *DBPhaseRepo) GetInstance(id uint) (phase.PhaseProject, error) {
	var pp phase.PhaseProject
	err := r.db.First(&pp, id).Error
	return pp, err
}

// FindInstance returns nil when the phase has not been started for the project.
func (r *DBPhaseRepo) FindInstance(phaseMainID, projectMainID uint) (*phase.PhaseProject, error) {
	var rows []phase.PhaseProject
	err := r.db.Where("phase_project_phase_id = ? AND phase_project_main_id = ?", phaseMainID, projectMainID).
		Limit(1).
		Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (r *DBPhaseRepo) WithTx(tx *gorm.DB) PhaseRepo {
	if tx == nil {
		return r
	}
	return &DBPhaseRepo{
		db: tx,
	}
}

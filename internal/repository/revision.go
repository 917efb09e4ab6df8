package repository

import (
	"time"

	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"gorm.io/gorm"
)

type RevisionRepo interface {
	CreateRevision(rev *phase.RevisionPhase) error
	GetRevision(id uint) (phase.RevisionPhase, error)
	SetRevisedFile(id uint, file string, at time.Time) (int64, error)
	ListRevisions(phaseProjectID uint) ([]phase.RevisionPhase, error)
	WithTx(tx *gorm.DB) RevisionRepo
}

type DBRevisionRepo struct {
	db *gorm.DB
}

func NewRevisionRepo(db *gorm.DB) *DBRevisionRepo {
	return &DBRevisionRepo{
		db: db,
	}
}

func (r *DBRevisionRepo) CreateRevision(rev *phase.RevisionPhase) error {
	return r.db.Create(rev).Error
}

func (r *DBRevisionRepo) GetRevision(id uint) (phase.RevisionPhase, error) {
	var rev phase.RevisionPhase
	err := r.db.First(&rev, id).Error
	return rev, err
}

func (r *DBRevisionRepo) SetRevisedFile(id uint, file string, at time.Time) (int64, error) {
	res := r.db.Model(&phase.RevisionPhase{}).
		Where("revision_phase_id = ?", id).
		Updates(map[string]any{
			"revision_file_revised": file,
			"revision_revised_at":   at,
		})
	return res.RowsAffected, res.Error
}

func (r *DBRevisionRepo) ListRevisions(phaseProjectID uint) ([]phase.RevisionPhase, error) {
	var revs []phase.RevisionPhase
	err := r.db.Where("phase_project_id = ?", phaseProjectID).
		Order("revision_created_at DESC, revision_phase_id DESC").
		Find(&revs).Error
	return revs, err
}

func (r *DBRevisionRepo) WithTx(tx *gorm.DB) RevisionRepo {
	if tx == nil {
		return r
	}
	return &DBRevisionRepo{
		db: tx,
	}
}

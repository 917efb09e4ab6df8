package repository

import (
	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"gorm.io/gorm"
)

type FileRepo interface {
	CreateFile(f *phase.PhaseProjectFile) error
	WithTx(tx *gorm.DB) FileRepo
}

type DBFileRepo struct {
	db *gorm.DB
}

func NewFileRepo(db *gorm.DB) *DBFileRepo {
	return &DBFileRepo{
		db: db,
	}
}

func (r *DBFileRepo) CreateFile(f *phase.PhaseProjectFile) error {
	return r.db.Create(f).Error
}

func (r *DBFileRepo) WithTx(tx *gorm.DB) FileRepo {
	if tx == nil {
		return r
	}
	return &DBFileRepo{
		db: tx,
	}
}

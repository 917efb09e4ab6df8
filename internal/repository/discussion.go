package repository

import (
	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"gorm.io/gorm"
)

type DiscussionRepo interface {
	CreateDiscussion(d *phase.PhaseDiscussion) error
	WithTx(tx *gorm.DB) DiscussionRepo
}

type DBDiscussionRepo struct {
	db *gorm.DB
}

func NewDiscussionRepo(db *gorm.DB) *DBDiscussionRepo {
	return &DBDiscussionRepo{
		db: db,
	}
}

func (r *DBDiscussionRepo) CreateDiscussion(d *phase.PhaseDiscussion) error {
	return r.db.Create(d).Error
}

func (r *DBDiscussionRepo) WithTx(tx *gorm.DB) DiscussionRepo {
	if tx == nil {
		return r
	}
	return &DBDiscussionRepo{
		db: tx,
	}
}

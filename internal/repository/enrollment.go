package repository

import (
	"github.com/linskybing/projecthub-go/internal/domain/project"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepo interface {
	// Join inserts the enrollment and reports false when it already existed.
	Join(sj *project.StudentJoined) (bool, error)
	WithTx(tx *gorm.DB) EnrollmentRepo
}

type DBEnrollmentRepo struct {
	db *gorm.DB
}

func NewEnrollmentRepo(db *gorm.DB) *DBEnrollmentRepo {
	return &DBEnrollmentRepo{
		db: db,
	}
}

func (r *DBEnrollmentRepo) Join(sj *project.StudentJoined) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(sj)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *DBEnrollmentRepo) WithTx(tx *gorm.DB) EnrollmentRepo {
	if tx == nil {
		return r
	}
	return &DBEnrollmentRepo{
		db: tx,
	}
}

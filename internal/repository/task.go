package repository

import (
	"github.com/linskybing/projecthub-go/internal/domain/task"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskRepo interface {
	CreateTask(t *task.ProjectTask) error
	AssignUsers(taskID uint, userIDs []uint) error
	SetDone(taskID uint, done bool) (int64, error)
	WithTx(tx *gorm.DB) TaskRepo
}

type DBTaskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *DBTaskRepo {
	return &DBTaskRepo{
		db: db,
	}
}

func (r *DBTaskRepo) CreateTask(t *task.ProjectTask) error {
	return r.db.Omit(clause.Associations).Create(t).Error
}

func (r *DBTaskRepo) AssignUsers(taskID uint, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}
	rows := make([]task.ProjectAssigned, 0, len(userIDs))
	for _, uid := range userIDs {
		rows = append(rows, task.ProjectAssigned{TaskID: taskID, UserID: uid})
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (r *DBTaskRepo) SetDone(taskID uint, done bool) (int64, error) {
	res := r.db.Model(&task.ProjectTask{}).
		Where("project_task_id = ?", taskID).
		Update("is_done", done)
	return res.RowsAffected, res.Error
}

func (r *DBTaskRepo) WithTx(tx *gorm.DB) TaskRepo {
	if tx == nil {
		return r
	}
	return &DBTaskRepo{
		db: tx,
	}
}

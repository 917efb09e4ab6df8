package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repos struct {
	Project    ProjectRepo
	Member     MemberRepo
	Enrollment EnrollmentRepo
	Phase      PhaseRepo
	Ledger     LedgerRepo
	Revision   RevisionRepo
	Discussion DiscussionRepo
	File       FileRepo
	Task       TaskRepo
	User       UserRepo
	Audit      AuditRepo
	View       ViewRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Project:    NewProjectRepo(db),
		Member:     NewMemberRepo(db),
		Enrollment: NewEnrollmentRepo(db),
		Phase:      NewPhaseRepo(db),
		Ledger:     NewLedgerRepo(db),
		Revision:   NewRevisionRepo(db),
		Discussion: NewDiscussionRepo(db),
		File:       NewFileRepo(db),
		Task:       NewTaskRepo(db),
		User:       NewUserRepo(db),
		Audit:      NewAuditRepo(db),
		View:       NewViewRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Project:    r.Project.WithTx(tx),
		Member:     r.Member.WithTx(tx),
		Enrollment: r.Enrollment.WithTx(tx),
		Phase:      r.Phase.WithTx(tx),
		Ledger:     r.Ledger.WithTx(tx),
		Revision:   r.Revision.WithTx(tx),
		Discussion: r.Discussion.WithTx(tx),
		File:       r.File.WithTx(tx),
		Task:       r.Task.WithTx(tx),
		User:       r.User.WithTx(tx),
		Audit:      r.Audit.WithTx(tx),
		View:       r.View.WithTx(tx),
		db:         tx,
	}
}

// WithContext binds every repository to ctx so queries are cancelled with the request.
// Repos built without a database (unit tests) are returned unchanged.
func (r *Repos) WithContext(ctx context.Context) *Repos {
	if r.db == nil {
		return r
	}
	return r.WithTx(r.db.WithContext(ctx))
}

// ExecTx runs fn inside a single database transaction. Any error returned by fn
// rolls back every write made through the Repos passed to it.
func (r *Repos) ExecTx(ctx context.Context, fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}

// Ping reports whether the database answers.
func (r *Repos) Ping(ctx context.Context) error {
	if r.db == nil {
		return errors.New("database not configured")
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

package repository

import (
	"fmt"
	"time"

	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"github.com/linskybing/projecthub-go/internal/domain/project"
	"github.com/linskybing/projecthub-go/internal/domain/status"
	"gorm.io/gorm"
)

// LedgerRepo reads and appends the two append-only status ledgers.
type LedgerRepo interface {
	Append(e *status.Entry) error
	// Current returns nil when the ledger has no rows for scopeID.
	Current(scope status.Scope, scopeID uint) (*status.Entry, error)
	History(scope status.Scope, scopeID uint) ([]status.Entry, error)
	HasCode(scope status.Scope, scopeID uint, code status.Code) (bool, error)
	WithTx(tx *gorm.DB) LedgerRepo
}

type ledgerTable struct {
	table, id, fk, code, actor, createdAt string
}

var ledgerTables = map[status.Scope]ledgerTable{
	status.ScopeProject: {
		table:     "project_status",
		id:        "project_status_id",
		fk:        "project_main_id",
		code:      "project_status_status_id",
		actor:     "project_status_updated_by",
		createdAt: "project_status_created_at",
	},
	status.ScopePhase: {
		table:     "phase_project_status",
		id:        "phase_project_status_id",
		fk:        "phase_project_id",
		code:      "phase_project_status_status_id",
		actor:     "phase_project_status_created_by",
		createdAt: "phase_project_status_created_at",
	},
}

func (t ledgerTable) columns() string {
	return fmt.Sprintf("%s AS id, %s AS scope_id, %s AS code, %s AS actor_id, %s AS created_at",
		t.id, t.fk, t.code, t.actor, t.createdAt)
}

func (t ledgerTable) newestFirst() string {
	return fmt.Sprintf("%s DESC, %s DESC", t.createdAt, t.id)
}

type ledgerRow struct {
	ID        uint
	ScopeID   uint
	Code      int
	ActorID   uint
	CreatedAt time.Time
}

type DBLedgerRepo struct {
	db *gorm.DB
}

func NewLedgerRepo(db *gorm.DB) *DBLedgerRepo {
	return &DBLedgerRepo{
		db: db,
	}
}

func lookupLedger(scope status.Scope) (ledgerTable, error) {
	t, ok := ledgerTables[scope]
	if !ok {
		return ledgerTable{}, fmt.Errorf("unknown ledger scope %q", scope)
	}
	return t, nil
}

func (r *DBLedgerRepo) Append(e *status.Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	switch e.Scope {
	case status.ScopeProject:
		row := project.ProjectStatus{
			ProjectMainID: e.ScopeID,
			StatusCode:    e.Code,
			UpdatedBy:     e.ActorID,
			CreatedAt:     e.CreatedAt,
		}
		if err := r.db.Create(&row).Error; err != nil {
			return err
		}
		e.ID = row.ID
	case status.ScopePhase:
		row := phase.PhaseProjectStatus{
			PhaseProjectID: e.ScopeID,
			StatusCode:     e.Code,
			CreatedBy:      e.ActorID,
			CreatedAt:      e.CreatedAt,
		}
		if err := r.db.Create(&row).Error; err != nil {
			return err
		}
		e.ID = row.ID
	default:
		return fmt.Errorf("unknown ledger scope %q", e.Scope)
	}
	return nil
}

func (r *DBLedgerRepo) Current(scope status.Scope, scopeID uint) (*status.Entry, error) {
	t, err := lookupLedger(scope)
	if err != nil {
		return nil, err
	}
	var rows []ledgerRow
	err = r.db.Table(t.table).
		Select(t.columns()).
		Where(t.fk+" = ?", scopeID).
		Order(t.newestFirst()).
		Limit(1).
		Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	e := rows[0].entry(scope)
	return &e, nil
}

func (r *DBLedgerRepo) History(scope status.Scope, scopeID uint) ([]status.Entry, error) {
	t, err := lookupLedger(scope)
	if err != nil {
		return nil, err
	}
	var rows []ledgerRow
	err = r.db.Table(t.table).
		Select(t.columns()).
		Where(t.fk+" = ?", scopeID).
		Order(t.newestFirst()).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	entries := make([]status.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.entry(scope))
	}
	return entries, nil
}

func (r *DBLedgerRepo) HasCode(scope status.Scope, scopeID uint, code status.Code) (bool, error) {
	t, err := lookupLedger(scope)
	if err != nil {
		return false, err
	}
	var count int64
	err = r.db.Table(t.table).
		Where(t.fk+" = ? AND "+t.code+" = ?", scopeID, int(code)).
		Count(&count).Error
	return count > 0, err
}

func (row ledgerRow) entry(scope status.Scope) status.Entry {
	return status.Entry{
		ID:        row.ID,
		Scope:     scope,
		ScopeID:   row.ScopeID,
		Code:      status.Code(row.Code),
		ActorID:   row.ActorID,
		CreatedAt: row.CreatedAt,
	}
}

func (r *DBLedgerRepo) WithTx(tx *gorm.DB) LedgerRepo {
	if tx == nil {
		return r
	}
	return &DBLedgerRepo{
		db: tx,
	}
}

package application

import (
	"context"
	"time"

	"github.com/linskybing/projecthub-go/internal/domain/status"
	"github.com/linskybing/projecthub-go/internal/repository"
)

var timeNow = time.Now

// LedgerService exposes the project and phase status ledgers directly.
// Workflow services append through appendStatus inside their own transactions.
type LedgerService struct {
	Repos *repository.Repos
}

func NewLedgerService(repos *repository.Repos) *LedgerService {
	return &LedgerService{
		Repos: repos,
	}
}

// Append writes a status directly onto a project or phase ledger, for
// transitions no workflow operation covers such as closing a project.
func (s *LedgerService) Append(ctx context.Context, scope status.Scope, scopeID uint, code status.Code, actorID uint) (*status.Entry, error) {
	if !scope.Valid() || scopeID == 0 {
		return nil, validationf("invalid ledger reference %s/%d", scope, scopeID)
	}
	var entry *status.Entry
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if err := ledgerTargetExists(tx, scope, scopeID); err != nil {
			return err
		}
		var err error
		if entry, err = appendStatus(tx, scope, scopeID, code, actorID); err != nil {
			return err
		}
		return recordAudit(tx, actorID, "set_status", ledgerResource(scope), scopeID, nil, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Current returns nil when no row exists yet.
func (s *LedgerService) Current(ctx context.Context, scope status.Scope, scopeID uint) (*status.Entry, error) {
	if !scope.Valid() || scopeID == 0 {
		return nil, validationf("invalid ledger reference %s/%d", scope, scopeID)
	}
	e, err := s.Repos.WithContext(ctx).Ledger.Current(scope, scopeID)
	if err != nil {
		return nil, storageErr("failed to read status", err)
	}
	return e, nil
}

// History lists every ledger row for the target, newest first.
func (s *LedgerService) History(ctx context.Context, scope status.Scope, scopeID uint) ([]status.Entry, error) {
	if !scope.Valid() || scopeID == 0 {
		return nil, validationf("invalid ledger reference %s/%d", scope, scopeID)
	}
	entries, err := s.Repos.WithContext(ctx).Ledger.History(scope, scopeID)
	if err != nil {
		return nil, storageErr("failed to read status history", err)
	}
	if entries == nil {
		entries = []status.Entry{}
	}
	return entries, nil
}

func ledgerTargetExists(repos *repository.Repos, scope status.Scope, scopeID uint) error {
	if scope == status.ScopeProject {
		if _, err := repos.Project.GetProjectByID(scopeID); err != nil {
			return classify(err, ErrProjectNotFound)
		}
		return nil
	}
	if _, err := repos.Phase.GetInstance(scopeID); err != nil {
		return classify(err, ErrPhaseNotFound)
	}
	return nil
}

func ledgerResource(scope status.Scope) string {
	if scope == status.ScopeProject {
		return "project_main"
	}
	return "phase_project"
}

func appendStatus(repos *repository.Repos, scope status.Scope, scopeID uint, code status.Code, actorID uint) (*status.Entry, error) {
	if !scope.Valid() {
		return nil, validationf("unknown ledger scope %q", scope)
	}
	if scopeID == 0 || actorID == 0 {
		return nil, validationf("status append requires a target and an actor")
	}
	if !code.Writable() {
		return nil, validationf("status code %d cannot be written", int(code))
	}
	e := &status.Entry{
		Scope:     scope,
		ScopeID:   scopeID,
		Code:      code,
		ActorID:   actorID,
		CreatedAt: timeNow(),
	}
	if err := repos.Ledger.Append(e); err != nil {
		return nil, storageErr("failed to append status", err)
	}
	return e, nil
}

// seedProjectInProgress moves a project into In Progress the first time any of
// its phases starts. It never appends when the project already left Not Started
// or has an In Progress row somewhere in its history.
func seedProjectInProgress(repos *repository.Repos, projectMainID, actorID uint) error {
	cur, err := repos.Ledger.Current(status.ScopeProject, projectMainID)
	if err != nil {
		return storageErr("failed to read project status", err)
	}
	if cur != nil && cur.Code != status.NotStarted {
		return nil
	}
	seeded, err := repos.Ledger.HasCode(status.ScopeProject, projectMainID, status.InProgress)
	if err != nil {
		return storageErr("failed to read project status", err)
	}
	if seeded {
		return nil
	}
	_, err = appendStatus(repos, status.ScopeProject, projectMainID, status.InProgress, actorID)
	return err
}

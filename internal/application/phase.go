package application

import (
	"context"
	"errors"

	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"github.com/linskybing/projecthub-go/internal/domain/status"
	"github.com/linskybing/projecthub-go/internal/repository"
	"gorm.io/gorm"
)

// PhaseService starts template phases on project instances.
type PhaseService struct {
	Repos *repository.Repos
}

func NewPhaseService(repos *repository.Repos) *PhaseService {
	return &PhaseService{
		Repos: repos,
	}
}

// StartPhase creates the phase instance for (phaseMainID, projectMainID) and
// records In Progress on it. The first phase started on a project also moves the
// project from Not Started to In Progress. All writes share one transaction and
// the project row is locked for its duration, so concurrent starts on the same
// project are serialised and a second start of the same phase fails with
// ErrPhaseAlreadyStarted.
func (s *PhaseService) StartPhase(ctx context.Context, phaseMainID, projectMainID, actorID uint) (*phase.PhaseProject, error) {
	if phaseMainID == 0 || projectMainID == 0 {
		return nil, validationf("phase_main_id and project_main_id are required")
	}
	if actorID == 0 {
		return nil, validationf("actor is required")
	}

	var created *phase.PhaseProject
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		pm, err := tx.Project.LockProject(projectMainID)
		if err != nil {
			return classify(err, ErrProjectNotFound)
		}
		tpl, err := tx.Phase.GetPhaseByID(phaseMainID)
		if err != nil {
			return classify(err, ErrPhaseNotFound)
		}
		if tpl.MasterID != pm.MasterID {
			return validationf("phase %d is not part of project %d's template", phaseMainID, projectMainID)
		}

		exists, err := tx.Phase.InstanceExists(phaseMainID, projectMainID)
		if err != nil {
			return storageErr("failed to check phase", err)
		}
		if exists {
			return ErrPhaseAlreadyStarted
		}

		if err := seedProjectInProgress(tx, projectMainID, actorID); err != nil {
			return err
		}

		pp := &phase.PhaseProject{
			PhaseMainID:   phaseMainID,
			ProjectMainID: projectMainID,
			CreatedBy:     actorID,
		}
		if err := tx.Phase.CreateInstance(pp); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrPhaseAlreadyStarted
			}
			return storageErr("failed to start phase", err)
		}
		if _, err := appendStatus(tx, status.ScopePhase, pp.ID, status.InProgress, actorID); err != nil {
			return err
		}
		created = pp
		return recordAudit(tx, actorID, "start", "phase_project", pp.ID, nil, pp)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

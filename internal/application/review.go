package application

import (
	"context"
	"strings"

	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"github.com/linskybing/projecthub-go/internal/domain/status"
	"github.com/linskybing/projecthub-go/internal/repository"
)

// ReviewService drives a started phase through review, revision and decision.
// None of the transitions check the phase's current status.
type ReviewService struct {
	Repos *repository.Repos
}

func NewReviewService(repos *repository.Repos) *ReviewService {
	return &ReviewService{
		Repos: repos,
	}
}

func (s *ReviewService) SubmitForReview(ctx context.Context, phaseProjectID, actorID uint) (*status.Entry, error) {
	return s.transition(ctx, phaseProjectID, actorID, status.UnderReview, "submit")
}

// Decide records Approved or Failed on the phase.
func (s *ReviewService) Decide(ctx context.Context, phaseProjectID, actorID uint, approve bool) (*status.Entry, error) {
	if approve {
		return s.transition(ctx, phaseProjectID, actorID, status.Approved, "approve")
	}
	return s.transition(ctx, phaseProjectID, actorID, status.Failed, "fail")
}

func (s *ReviewService) transition(ctx context.Context, phaseProjectID, actorID uint, code status.Code, action string) (*status.Entry, error) {
	if phaseProjectID == 0 || actorID == 0 {
		return nil, validationf("phase_project_id and actor are required")
	}
	var entry *status.Entry
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.Phase.GetInstance(phaseProjectID); err != nil {
			return classify(err, ErrPhaseNotFound)
		}
		var err error
		if entry, err = appendStatus(tx, status.ScopePhase, phaseProjectID, code, actorID); err != nil {
			return err
		}
		return recordAudit(tx, actorID, action, "phase_project", phaseProjectID, nil, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

type RevisionRequest struct {
	PhaseProjectID uint
	ActorID        uint
	FeedbackText   string
	OriginalFile   string
}

// RequestRevision records the teacher's feedback and moves the phase to
// Revision Needed. Both rows commit together or not at all.
func (s *ReviewService) RequestRevision(ctx context.Context, req RevisionRequest) (*phase.RevisionPhase, error) {
	req.FeedbackText = strings.TrimSpace(req.FeedbackText)
	req.OriginalFile = strings.TrimSpace(req.OriginalFile)
	if req.PhaseProjectID == 0 || req.ActorID == 0 {
		return nil, validationf("phase_project_id and actor are required")
	}
	if req.FeedbackText == "" || req.OriginalFile == "" {
		return nil, validationf("feedback and original file are required")
	}

	rev := &phase.RevisionPhase{
		PhaseProjectID: req.PhaseProjectID,
		OriginalFile:   req.OriginalFile,
		FeedbackText:   req.FeedbackText,
		CreatedBy:      req.ActorID,
	}
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.Phase.GetInstance(req.PhaseProjectID); err != nil {
			return classify(err, ErrPhaseNotFound)
		}
		if err := tx.Revision.CreateRevision(rev); err != nil {
			return storageErr("failed to save revision", err)
		}
		if _, err := appendStatus(tx, status.ScopePhase, req.PhaseProjectID, status.RevisionNeeded, req.ActorID); err != nil {
			return err
		}
		return recordAudit(tx, req.ActorID, "request_revision", "revision_phase", rev.ID, nil, rev)
	})
	if err != nil {
		return nil, err
	}
	return rev, nil
}

// FulfillRevision attaches the team's revised file. It does not touch the ledger;
// the team resubmits with SubmitForReview.
func (s *ReviewService) FulfillRevision(ctx context.Context, revisionID uint, revisedFile string, actorID uint) (*phase.RevisionPhase, error) {
	revisedFile = strings.TrimSpace(revisedFile)
	if revisionID == 0 || actorID == 0 {
		return nil, validationf("revision_phase_id and actor are required")
	}
	if revisedFile == "" {
		return nil, validationf("revised file is required")
	}

	var rev phase.RevisionPhase
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		before, err := tx.Revision.GetRevision(revisionID)
		if err != nil {
			return classify(err, ErrRevisionNotFound)
		}
		at := timeNow()
		n, err := tx.Revision.SetRevisedFile(revisionID, revisedFile, at)
		if err != nil {
			return storageErr("failed to update revision", err)
		}
		if n == 0 {
			return ErrRevisionNotFound
		}
		rev = before
		rev.RevisedFile = revisedFile
		rev.RevisedAt = &at
		return recordAudit(tx, actorID, "fulfill_revision", "revision_phase", revisionID, before, rev)
	})
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (s *ReviewService) ListRevisions(ctx context.Context, phaseProjectID uint) ([]phase.RevisionPhase, error) {
	if phaseProjectID == 0 {
		return nil, validationf("phase_project_id is required")
	}
	revs, err := s.Repos.WithContext(ctx).Revision.ListRevisions(phaseProjectID)
	if err != nil {
		return nil, storageErr("failed to list revisions", err)
	}
	if revs == nil {
		revs = []phase.RevisionPhase{}
	}
	return revs, nil
}

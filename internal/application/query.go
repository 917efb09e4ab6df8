package application

import (
	"context"

	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"github.com/linskybing/projecthub-go/internal/domain/project"
	"github.com/linskybing/projecthub-go/internal/domain/status"
	"github.com/linskybing/projecthub-go/internal/domain/view"
	"github.com/linskybing/projecthub-go/internal/repository"
	"golang.org/x/sync/errgroup"
)

// QueryService assembles read-only views over projects and phases.
type QueryService struct {
	Repos *repository.Repos
}

func NewQueryService(repos *repository.Repos) *QueryService {
	return &QueryService{
		Repos: repos,
	}
}

type StatusSummary struct {
	Code  status.Code `json:"status_code"`
	Label string      `json:"status"`
}

func summarize(c status.Code) StatusSummary {
	return StatusSummary{Code: c, Label: c.Label()}
}

type PhaseOverview struct {
	PhaseMainID    uint          `json:"phase_main_id"`
	Name           string        `json:"phase_main_name"`
	Description    string        `json:"phase_main_description"`
	StartDate      string        `json:"phase_start_date,omitempty"`
	EndDate        string        `json:"phase_end_date,omitempty"`
	PhaseProjectID *uint         `json:"phase_project_id"`
	Started        bool          `json:"started"`
	Status         StatusSummary `json:"current_status"`
}

type ProjectOverview struct {
	Project       project.ProjectMain `json:"project"`
	ProjectStatus StatusSummary       `json:"project_status"`
	DerivedStatus StatusSummary       `json:"derived_status"`
	Phases        []PhaseOverview     `json:"phases"`
}

// ProjectOverview lists every template phase of the project's master with the
// current status of its instance. Phases that were never started read as Not
// Started. Instances with an empty ledger read as Pending.
func (s *QueryService) ProjectOverview(ctx context.Context, projectMainID uint) (*ProjectOverview, error) {
	if projectMainID == 0 {
		return nil, validationf("project_main_id is required")
	}
	repos := s.Repos.WithContext(ctx)
	p, err := repos.Project.GetProjectByID(projectMainID)
	if err != nil {
		return nil, classify(err, ErrProjectNotFound)
	}
	rows, err := repos.View.PhaseOverview(projectMainID, p.MasterID)
	if err != nil {
		return nil, storageErr("failed to load phases", err)
	}
	cur, err := repos.Ledger.Current(status.ScopeProject, projectMainID)
	if err != nil {
		return nil, storageErr("failed to read project status", err)
	}
	projectCode := status.NotStarted
	if cur != nil {
		projectCode = cur.Code
	}

	out := &ProjectOverview{
		Project:       p,
		ProjectStatus: summarize(projectCode),
		Phases:        make([]PhaseOverview, 0, len(rows)),
	}
	states := make([]status.PhaseState, 0, len(rows))
	for _, r := range rows {
		po := PhaseOverview{
			PhaseMainID:    r.PhaseMainID,
			Name:           r.Name,
			Description:    r.Description,
			StartDate:      formatDate(r.StartDate),
			EndDate:        formatDate(r.EndDate),
			PhaseProjectID: r.PhaseProjectID,
			Started:        r.PhaseProjectID != nil,
		}
		var code status.Code
		switch {
		case !po.Started:
			code = status.NotStarted
		case r.StatusCode != nil:
			code = status.Code(*r.StatusCode)
		}
		po.Status = summarize(code)
		out.Phases = append(out.Phases, po)
		states = append(states, status.PhaseState{Started: po.Started, Code: code})
	}
	out.DerivedStatus = summarize(status.Derive(projectCode, states))
	return out, nil
}

// ProjectStatus returns the current row of the project ledger.
func (s *QueryService) ProjectStatus(ctx context.Context, projectMainID uint) (StatusSummary, *status.Entry, error) {
	if projectMainID == 0 {
		return StatusSummary{}, nil, validationf("project_main_id is required")
	}
	repos := s.Repos.WithContext(ctx)
	if _, err := repos.Project.GetProjectByID(projectMainID); err != nil {
		return StatusSummary{}, nil, classify(err, ErrProjectNotFound)
	}
	cur, err := repos.Ledger.Current(status.ScopeProject, projectMainID)
	if err != nil {
		return StatusSummary{}, nil, storageErr("failed to read project status", err)
	}
	if cur == nil {
		return summarize(status.NotStarted), nil, nil
	}
	return summarize(cur.Code), cur, nil
}

type PhaseDetail struct {
	Phase         view.PhaseRow         `json:"phase"`
	CurrentStatus *view.StatusRow       `json:"current_status"`
	StatusHistory []view.StatusRow      `json:"status_history"`
	Discussions   []view.DiscussionRow  `json:"discussions"`
	Files         []view.FileRow        `json:"files"`
	Revisions     []phase.RevisionPhase `json:"revisions"`
}

// PhaseDetail loads a started phase with its ledger, discussion, files and
// revisions. The four lists are fetched concurrently.
func (s *QueryService) PhaseDetail(ctx context.Context, phaseProjectID uint) (*PhaseDetail, error) {
	if phaseProjectID == 0 {
		return nil, validationf("phase_project_id is required")
	}
	repos := s.Repos.WithContext(ctx)
	row, err := repos.View.GetPhaseRow(phaseProjectID)
	if err != nil {
		return nil, classify(err, ErrPhaseNotFound)
	}

	d := &PhaseDetail{Phase: row}
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		d.StatusHistory, err = repos.View.PhaseStatusHistory(phaseProjectID)
		return err
	})
	g.Go(func() error {
		var err error
		d.Discussions, err = repos.View.ListDiscussions(phaseProjectID)
		return err
	})
	g.Go(func() error {
		var err error
		d.Files, err = repos.View.ListFiles(phaseProjectID)
		return err
	})
	g.Go(func() error {
		var err error
		d.Revisions, err = repos.Revision.ListRevisions(phaseProjectID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storageErr("failed to load phase detail", err)
	}

	if d.StatusHistory == nil {
		d.StatusHistory = []view.StatusRow{}
	}
	if d.Discussions == nil {
		d.Discussions = []view.DiscussionRow{}
	}
	if d.Files == nil {
		d.Files = []view.FileRow{}
	}
	if d.Revisions == nil {
		d.Revisions = []phase.RevisionPhase{}
	}

	entries := make([]status.Entry, 0, len(d.StatusHistory))
	for i := range d.StatusHistory {
		d.StatusHistory[i].Label = d.StatusHistory[i].Code.Label()
		entries = append(entries, d.StatusHistory[i].Entry(status.ScopePhase, phaseProjectID))
	}
	if latest, ok := status.Latest(entries); ok {
		for i := range d.StatusHistory {
			if d.StatusHistory[i].ID == latest.ID {
				d.CurrentStatus = &d.StatusHistory[i]
				break
			}
		}
	}
	return d, nil
}

// PhaseDetailByTemplate resolves the instance of a template phase on a project
// and returns its detail.
func (s *QueryService) PhaseDetailByTemplate(ctx context.Context, phaseMainID, projectMainID uint) (*PhaseDetail, error) {
	if phaseMainID == 0 || projectMainID == 0 {
		return nil, validationf("phase_main_id and project_main_id are required")
	}
	pp, err := s.Repos.WithContext(ctx).Phase.FindInstance(phaseMainID, projectMainID)
	if err != nil {
		return nil, storageErr("failed to look up phase", err)
	}
	if pp == nil {
		return nil, notFound("phase has not been started for this project")
	}
	return s.PhaseDetail(ctx, pp.ID)
}

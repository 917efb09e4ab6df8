package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"github.com/linskybing/projecthub-go/internal/domain/project"
	"github.com/linskybing/projecthub-go/internal/repository"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// TemplateService manages ProjectMaster templates and their phases.
type TemplateService struct {
	Repos *repository.Repos
}

func NewTemplateService(repos *repository.Repos) *TemplateService {
	return &TemplateService{
		Repos: repos,
	}
}

func (s *TemplateService) CreateMaster(ctx context.Context, teacherID uint, input project.CreateMasterDTO) (*project.ProjectMaster, error) {
	if teacherID == 0 {
		return nil, validationf("teacher id is required")
	}
	m := &project.ProjectMaster{
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Code:         strings.TrimSpace(input.Code),
		TeacherID:    teacherID,
		IsActive:     true,
		SchoolYearID: input.SchoolYearID,
	}
	if input.IsActive != nil {
		m.IsActive = *input.IsActive
	}
	if m.Title == "" || m.Code == "" || m.SchoolYearID == 0 {
		return nil, validationf("project title, code and school year are required")
	}

	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if err := tx.Project.CreateMaster(m); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflictf("project code %s is already in use", m.Code)
			}
			return storageErr("failed to save project", err)
		}
		return recordAudit(tx, teacherID, "create", "project_master", m.ID, nil, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *TemplateService) ListMastersBySchoolYear(ctx context.Context, schoolYearID uint) ([]project.ProjectMaster, error) {
	if schoolYearID == 0 {
		return nil, validationf("school year id is required")
	}
	masters, err := s.Repos.WithContext(ctx).Project.ListMastersBySchoolYear(schoolYearID)
	if err != nil {
		return nil, storageErr("failed to list projects", err)
	}
	if masters == nil {
		masters = []project.ProjectMaster{}
	}
	return masters, nil
}

func (s *TemplateService) FindMasterByCode(ctx context.Context, code string) (*project.ProjectMaster, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, validationf("project code is required")
	}
	m, err := s.Repos.WithContext(ctx).Project.GetMasterByCode(code)
	if err != nil {
		return nil, classify(err, notFound("no project uses code "+code))
	}
	return &m, nil
}

// SavePhases appends template phases to a master in one transaction.
func (s *TemplateService) SavePhases(ctx context.Context, actorID uint, input phase.SavePhasesDTO) ([]phase.PhaseMain, error) {
	if len(input.Phases) == 0 {
		return nil, validationf("at least one phase is required")
	}
	phases := make([]phase.PhaseMain, 0, len(input.Phases))
	for i, in := range input.Phases {
		p := phase.PhaseMain{
			MasterID:    input.MasterID,
			Name:        strings.TrimSpace(in.Name),
			Description: in.Description,
		}
		if p.Name == "" {
			return nil, validationf("phase %d: name is required", i+1)
		}
		var err error
		if p.StartDate, err = parseDate(in.StartDate); err != nil {
			return nil, validationf("phase %d: invalid start date %q", i+1, in.StartDate)
		}
		if p.EndDate, err = parseDate(in.EndDate); err != nil {
			return nil, validationf("phase %d: invalid end date %q", i+1, in.EndDate)
		}
		if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
			return nil, validationf("phase %d: end date is before start date", i+1)
		}
		phases = append(phases, p)
	}

	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.Project.GetMasterByID(input.MasterID); err != nil {
			return classify(err, notFound("project template not found"))
		}
		if err := tx.Phase.CreatePhases(phases); err != nil {
			return storageErr("failed to save phases", err)
		}
		return recordAudit(tx, actorID, "create", "phase_main", input.MasterID, nil, phases)
	})
	if err != nil {
		return nil, err
	}
	return phases, nil
}

func (s *TemplateService) ListPhases(ctx context.Context, masterID uint) ([]phase.PhaseMain, error) {
	if masterID == 0 {
		return nil, validationf("project master id is required")
	}
	phases, err := s.Repos.WithContext(ctx).Phase.ListPhasesByMaster(masterID)
	if err != nil {
		return nil, storageErr("failed to list phases", err)
	}
	if phases == nil {
		phases = []phase.PhaseMain{}
	}
	return phases, nil
}

func parseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

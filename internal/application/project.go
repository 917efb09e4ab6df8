package application

import (
	"context"
	"strings"

	"github.com/linskybing/projecthub-go/internal/domain/project"
	"github.com/linskybing/projecthub-go/internal/domain/status"
	"github.com/linskybing/projecthub-go/internal/domain/view"
	"github.com/linskybing/projecthub-go/internal/repository"
)

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{
		Repos: repos,
	}
}

// CreateProject creates a team project under a master. The creator becomes an
// accepted member, every other listed teammate gets a pending invitation and the
// project ledger starts at Not Started.
func (s *ProjectService) CreateProject(ctx context.Context, creatorID uint, input project.CreateProjectDTO) (*project.ProjectMain, error) {
	if creatorID == 0 {
		return nil, validationf("creator is required")
	}
	p := &project.ProjectMain{
		MasterID:    input.MasterID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		CreatorID:   creatorID,
		IsActive:    true,
	}
	if p.MasterID == 0 || p.Title == "" {
		return nil, validationf("project_master_id and project_main_title are required")
	}

	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.Project.GetMasterByID(p.MasterID); err != nil {
			return classify(err, notFound("project template not found"))
		}
		if err := tx.Project.CreateProject(p); err != nil {
			return storageErr("failed to create project", err)
		}
		if _, err := appendStatus(tx, status.ScopeProject, p.ID, status.NotStarted, creatorID); err != nil {
			return err
		}

		creator := &project.ProjectMember{ProjectMainID: p.ID, UserID: creatorID, IsActive: project.MemberAccepted}
		if err := tx.Member.CreateMember(creator); err != nil {
			return storageErr("failed to add creator", err)
		}
		seen := map[uint]bool{creatorID: true}
		for _, uid := range input.TeamMembers {
			if uid == 0 || seen[uid] {
				continue
			}
			seen[uid] = true
			m := &project.ProjectMember{ProjectMainID: p.ID, UserID: uid, IsActive: project.MemberPending}
			if err := tx.Member.CreateMember(m); err != nil {
				return storageErr("failed to invite teammate", err)
			}
		}
		return recordAudit(tx, creatorID, "create", "project_main", p.ID, nil, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) ListByMaster(ctx context.Context, masterID uint) ([]view.ProjectSummary, error) {
	if masterID == 0 {
		return nil, validationf("project_master_id is required")
	}
	rows, err := s.Repos.WithContext(ctx).View.ListProjectsByMaster(masterID)
	if err != nil {
		return nil, storageErr("failed to list projects", err)
	}
	if rows == nil {
		rows = []view.ProjectSummary{}
	}
	return rows, nil
}

// ListMine groups the user's accepted projects by master, keeping query order.
func (s *ProjectService) ListMine(ctx context.Context, userID uint) ([]view.MasterProjects, error) {
	rows, err := s.Repos.WithContext(ctx).View.ListProjectsByUser(userID)
	if err != nil {
		return nil, storageErr("failed to list projects", err)
	}
	return groupByMaster(rows), nil
}

func groupByMaster(rows []view.MyProjectRow) []view.MasterProjects {
	grouped := []view.MasterProjects{}
	index := make(map[uint]int)
	for _, r := range rows {
		i, ok := index[r.MasterID]
		if !ok {
			i = len(grouped)
			index[r.MasterID] = i
			grouped = append(grouped, view.MasterProjects{
				MasterID:    r.MasterID,
				MasterTitle: r.MasterTitle,
				MasterCode:  r.MasterCode,
				Projects:    []view.MyProjectItem{},
			})
		}
		grouped[i].Projects = append(grouped[i].Projects, view.MyProjectItem{
			ProjectMainID: r.ProjectMainID,
			Title:         r.Title,
			MemberState:   r.MemberState,
		})
	}
	return grouped
}

func (s *ProjectService) ListCollaborations(ctx context.Context, userID uint) ([]view.ProjectSummary, error) {
	rows, err := s.Repos.WithContext(ctx).View.ListCollaborations(userID)
	if err != nil {
		return nil, storageErr("failed to list collaborations", err)
	}
	if rows == nil {
		rows = []view.ProjectSummary{}
	}
	return rows, nil
}

package application

import (
	"context"
	"log"
	"strings"

	"github.com/linskybing/projecthub-go/internal/domain/project"
	"github.com/linskybing/projecthub-go/internal/domain/view"
	"github.com/linskybing/projecthub-go/internal/repository"
)

// EnrollmentService joins students to project masters by code.
type EnrollmentService struct {
	Repos *repository.Repos
}

func NewEnrollmentService(repos *repository.Repos) *EnrollmentService {
	return &EnrollmentService{
		Repos: repos,
	}
}

func (s *EnrollmentService) masterByCode(repos *repository.Repos, code string) (project.ProjectMaster, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return project.ProjectMaster{}, validationf("project code is required")
	}
	m, err := repos.Project.GetMasterByCode(code)
	if err != nil {
		return m, classify(err, notFound("no project uses code "+code))
	}
	return m, nil
}

func (s *EnrollmentService) Join(ctx context.Context, code string, studentID uint) (*project.StudentJoined, error) {
	if studentID == 0 {
		return nil, validationf("student is required")
	}
	var sj *project.StudentJoined
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		m, err := s.masterByCode(tx, code)
		if err != nil {
			return err
		}
		sj = &project.StudentJoined{StudentUserID: studentID, ProjectMasterID: m.ID}
		inserted, err := tx.Enrollment.Join(sj)
		if err != nil {
			return storageErr("failed to join workspace", err)
		}
		if !inserted {
			return ErrAlreadyJoined
		}
		return recordAudit(tx, studentID, "join", "student_joined", sj.ID, nil, sj)
	})
	if err != nil {
		return nil, err
	}
	return sj, nil
}

// BatchJoin enrolls many students at once. Each id is handled on its own so
// one bad entry never blocks the rest. Repeated ids are collapsed and listed
// in Duplicates; they count neither as inserted nor as skipped.
func (s *EnrollmentService) BatchJoin(ctx context.Context, actorID uint, code string, userIDs []int64) (*project.BatchJoinResult, error) {
	if len(userIDs) == 0 {
		return nil, validationf("user_ids must not be empty")
	}
	repos := s.Repos.WithContext(ctx)
	m, err := s.masterByCode(repos, code)
	if err != nil {
		return nil, err
	}

	res := &project.BatchJoinResult{
		ProjectMasterID: m.ID,
		Inserted:        []int64{},
		Skipped:         []project.SkippedJoin{},
		Duplicates:      []int64{},
	}
	seen := make(map[int64]bool, len(userIDs))
	for _, id := range userIDs {
		if seen[id] {
			res.Duplicates = append(res.Duplicates, id)
			continue
		}
		seen[id] = true

		if id <= 0 {
			res.Skipped = append(res.Skipped, project.SkippedJoin{UserID: id, Reason: project.SkipInvalidUserID})
			continue
		}
		sj := &project.StudentJoined{StudentUserID: uint(id), ProjectMasterID: m.ID}
		inserted, err := repos.Enrollment.Join(sj)
		switch {
		case err != nil:
			log.Printf("[Enrollment] batch join user=%d master=%d: %v", id, m.ID, err)
			res.Skipped = append(res.Skipped, project.SkippedJoin{UserID: id, Reason: project.SkipStorageError})
		case !inserted:
			res.Skipped = append(res.Skipped, project.SkippedJoin{UserID: id, Reason: project.SkipAlreadyJoined})
		default:
			res.Inserted = append(res.Inserted, id)
		}
	}
	res.TotalInserted = len(res.Inserted)
	res.TotalSkipped = len(res.Skipped)

	if res.TotalInserted > 0 {
		if err := recordAudit(repos, actorID, "batch_join", "project_master", m.ID, nil, res); err != nil {
			log.Printf("[Enrollment] %v", err)
		}
	}
	return res, nil
}

func (s *EnrollmentService) ListJoined(ctx context.Context, studentID uint) ([]view.JoinedWorkspace, error) {
	rows, err := s.Repos.WithContext(ctx).View.ListJoinedWorkspaces(studentID)
	if err != nil {
		return nil, storageErr("failed to list workspaces", err)
	}
	if rows == nil {
		rows = []view.JoinedWorkspace{}
	}
	return rows, nil
}

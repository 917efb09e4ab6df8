package application

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/projecthub-go/internal/repository"
	"github.com/linskybing/projecthub-go/internal/repository/mock"
	"github.com/linskybing/projecthub-go/pkg/utils"
)

var testNow = time.Date(2025, 9, 1, 9, 30, 0, 0, time.UTC)

type mockRepos struct {
	project    *mock.MockProjectRepo
	member     *mock.MockMemberRepo
	enrollment *mock.MockEnrollmentRepo
	phase      *mock.MockPhaseRepo
	ledger     *mock.MockLedgerRepo
	revision   *mock.MockRevisionRepo
	discussion *mock.MockDiscussionRepo
	file       *mock.MockFileRepo
	task       *mock.MockTaskRepo
	user       *mock.MockUserRepo
	audit      *mock.MockAuditRepo
	view       *mock.MockViewRepo

	repos *repository.Repos
}

// newMockRepos wires a Repos made of mocks. Audit writes are swallowed and the
// clock is pinned to testNow for the duration of the test.
func newMockRepos(t *testing.T) *mockRepos {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &mockRepos{
		project:    mock.NewMockProjectRepo(ctrl),
		member:     mock.NewMockMemberRepo(ctrl),
		enrollment: mock.NewMockEnrollmentRepo(ctrl),
		phase:      mock.NewMockPhaseRepo(ctrl),
		ledger:     mock.NewMockLedgerRepo(ctrl),
		revision:   mock.NewMockRevisionRepo(ctrl),
		discussion: mock.NewMockDiscussionRepo(ctrl),
		file:       mock.NewMockFileRepo(ctrl),
		task:       mock.NewMockTaskRepo(ctrl),
		user:       mock.NewMockUserRepo(ctrl),
		audit:      mock.NewMockAuditRepo(ctrl),
		view:       mock.NewMockViewRepo(ctrl),
	}
	m.repos = &repository.Repos{
		Project:    m.project,
		Member:     m.member,
		Enrollment: m.enrollment,
		Phase:      m.phase,
		Ledger:     m.ledger,
		Revision:   m.revision,
		Discussion: m.discussion,
		File:       m.file,
		Task:       m.task,
		User:       m.user,
		Audit:      m.audit,
		View:       m.view,
	}

	origAudit, origNow := utils.LogAudit, timeNow
	utils.LogAudit = func(repo repository.AuditRepo, userID uint, action, resourceType string, resourceID uint, before, after any, description string) error {
		return nil
	}
	timeNow = func() time.Time { return testNow }
	t.Cleanup(func() {
		utils.LogAudit = origAudit
		timeNow = origNow
	})
	return m
}

var ctx = context.Background()

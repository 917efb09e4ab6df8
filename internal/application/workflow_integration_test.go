//go:build integration
// +build integration

package application

import (
	"os"
	"sync"
	"testing"

	"github.com/linskybing/projecthub-go/internal/domain/audit"
	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"github.com/linskybing/projecthub-go/internal/domain/project"
	"github.com/linskybing/projecthub-go/internal/domain/status"
	"github.com/linskybing/projecthub-go/internal/domain/user"
	"github.com/linskybing/projecthub-go/internal/repository"
	"github.com/linskybing/projecthub-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var integrationDB *gorm.DB

func TestMain(m *testing.M) {
	var cleanup func()
	integrationDB, _, cleanup = testutils.SetupPostgresForIntegration()
	code := m.Run()
	cleanup()
	os.Exit(code)
}

const (
	teacherID uint = 1
	aliceID   uint = 5
	bobID     uint = 6
	carolID   uint = 7
)

type fixture struct {
	svc     *Services
	master  *project.ProjectMaster
	phases  []phase.PhaseMain
	project *project.ProjectMain
}

// newFixture seeds a template with three phases and one project created by alice
// who invited bob.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	require.NoError(t, testutils.Truncate(integrationDB))
	for _, u := range []user.User{
		{ID: teacherID, FirstName: "Tina", LastName: "Teacher", IsActive: true},
		{ID: aliceID, FirstName: "Alice", LastName: "Ang", IsActive: true},
		{ID: bobID, FirstName: "Bob", LastName: "Bautista", IsActive: true},
		{ID: carolID, FirstName: "Carol", LastName: "Cruz", IsActive: true},
	} {
		require.NoError(t, integrationDB.Create(&u).Error)
	}

	svc := New(repository.NewRepositories(integrationDB), nil, 0)
	master, err := svc.Template.CreateMaster(ctx, teacherID, project.CreateMasterDTO{
		Title:        "Capstone",
		Code:         "CAP-2025",
		SchoolYearID: 2025,
	})
	require.NoError(t, err)

	phases, err := svc.Template.SavePhases(ctx, teacherID, phase.SavePhasesDTO{
		MasterID: master.ID,
		Phases: []phase.PhaseInput{
			{Name: "Proposal", StartDate: "2025-09-01", EndDate: "2025-09-30"},
			{Name: "Design"},
			{Name: "Defense"},
		},
	})
	require.NoError(t, err)
	require.Len(t, phases, 3)

	p, err := svc.Project.CreateProject(ctx, aliceID, project.CreateProjectDTO{
		MasterID:    master.ID,
		Title:       "Library kiosk",
		TeamMembers: []uint{bobID, aliceID, bobID},
	})
	require.NoError(t, err)

	return &fixture{svc: svc, master: master, phases: phases, project: p}
}

func countRows(t *testing.T, model any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, integrationDB.Model(model).Where(where, args...).Count(&n).Error)
	return n
}

func TestIntegration_CreateProject(t *testing.T) {
	f := newFixture(t)

	members, err := f.svc.Membership.ListMembers(ctx, f.project.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	summary, entry, err := f.svc.Query.ProjectStatus(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, status.NotStarted, summary.Code)
	require.NotNil(t, entry)
	assert.Equal(t, aliceID, entry.ActorID)

	assert.Equal(t, int64(1), countRows(t, &audit.AuditLog{}, "resource_type = ? AND action = ?", "project_main", "create"))
}

func TestIntegration_ConcurrentStartPhase(t *testing.T) {
	f := newFixture(t)
	const callers = 8

	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Phase.StartPhase(ctx, f.phases[0].ID, f.project.ID, aliceID)
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, ErrConflict)
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, int64(1), countRows(t, &phase.PhaseProject{}, "phase_project_phase_id = ? AND phase_project_main_id = ?", f.phases[0].ID, f.project.ID))
}

func TestIntegration_StartPhaseSeedsProjectOnce(t *testing.T) {
	f := newFixture(t)

	for _, ph := range f.phases {
		_, err := f.svc.Phase.StartPhase(ctx, ph.ID, f.project.ID, aliceID)
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), countRows(t, &project.ProjectStatus{}, "project_main_id = ? AND project_status_status_id = ?", f.project.ID, int(status.InProgress)))
	summary, _, err := f.svc.Query.ProjectStatus(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, status.InProgress, summary.Code)

	_, err = f.svc.Phase.StartPhase(ctx, f.phases[1].ID, f.project.ID, bobID)
	assert.ErrorIs(t, err, ErrPhaseAlreadyStarted)
}

func TestIntegration_RevisionCycle(t *testing.T) {
	f := newFixture(t)
	pp, err := f.svc.Phase.StartPhase(ctx, f.phases[0].ID, f.project.ID, aliceID)
	require.NoError(t, err)

	_, err = f.svc.Review.SubmitForReview(ctx, pp.ID, aliceID)
	require.NoError(t, err)
	rev, err := f.svc.Review.RequestRevision(ctx, RevisionRequest{
		PhaseProjectID: pp.ID,
		ActorID:        teacherID,
		FeedbackText:   "Tighten the scope",
		OriginalFile:   "proposal-v1.pdf",
	})
	require.NoError(t, err)

	cur, err := f.svc.Ledger.Current(ctx, status.ScopePhase, pp.ID)
	require.NoError(t, err)
	assert.Equal(t, status.RevisionNeeded, cur.Code)

	_, err = f.svc.Review.FulfillRevision(ctx, rev.ID, "proposal-v2.pdf", aliceID)
	require.NoError(t, err)
	_, err = f.svc.Review.SubmitForReview(ctx, pp.ID, aliceID)
	require.NoError(t, err)

	cur, err = f.svc.Ledger.Current(ctx, status.ScopePhase, pp.ID)
	require.NoError(t, err)
	assert.Equal(t, status.UnderReview, cur.Code)

	revs, err := f.svc.Review.ListRevisions(ctx, pp.ID)
	require.NoError(t, err)
	require.Len(t, revs, 1)
	assert.Equal(t, "proposal-v1.pdf", revs[0].OriginalFile)
	assert.Equal(t, "proposal-v2.pdf", revs[0].RevisedFile)
	assert.True(t, revs[0].Fulfilled())

	_, err = f.svc.Review.FulfillRevision(ctx, rev.ID+100, "x.pdf", aliceID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Review.Decide(ctx, pp.ID, teacherID, true)
	require.NoError(t, err)
	detail, err := f.svc.Query.PhaseDetail(ctx, pp.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.CurrentStatus)
	assert.Equal(t, int(status.Approved), int(detail.CurrentStatus.Code))
	assert.Len(t, detail.StatusHistory, 5)
}

func TestIntegration_ProjectOverview(t *testing.T) {
	f := newFixture(t)
	pp, err := f.svc.Phase.StartPhase(ctx, f.phases[1].ID, f.project.ID, aliceID)
	require.NoError(t, err)
	_, err = f.svc.Review.SubmitForReview(ctx, pp.ID, aliceID)
	require.NoError(t, err)

	ov, err := f.svc.Query.ProjectOverview(ctx, f.project.ID)
	require.NoError(t, err)
	require.Len(t, ov.Phases, 3)
	assert.Equal(t, "Not Started", ov.Phases[0].Status.Label)
	assert.Equal(t, "Under Review", ov.Phases[1].Status.Label)
	assert.Equal(t, "Not Started", ov.Phases[2].Status.Label)
	assert.Equal(t, "2025-09-01", ov.Phases[0].StartDate)
	assert.Equal(t, status.InProgress, ov.DerivedStatus.Code)
}

func TestIntegration_InviteToggle(t *testing.T) {
	f := newFixture(t)
	var bob project.ProjectMember
	require.NoError(t, integrationDB.Where("project_main_id = ? AND project_users_id = ?", f.project.ID, bobID).First(&bob).Error)
	assert.Equal(t, project.MemberPending, bob.IsActive)

	for _, step := range []struct {
		accept bool
		want   project.MemberState
	}{
		{true, project.MemberAccepted},
		{false, project.MemberDeclined},
		{true, project.MemberAccepted},
	} {
		m, err := f.svc.Membership.RespondToInvite(ctx, Actor{ID: bobID}, bob.ID, step.accept)
		require.NoError(t, err)
		assert.Equal(t, step.want, m.IsActive)
	}

	_, err := f.svc.Membership.RespondToInvite(ctx, Actor{ID: bobID}, bob.ID, true)
	assert.ErrorIs(t, err, ErrInviteUnchanged)

	_, err = f.svc.Membership.AddMember(ctx, Actor{ID: aliceID}, f.project.ID, bobID, project.MemberPending)
	assert.ErrorIs(t, err, ErrAlreadyMember)
	m, err := f.svc.Membership.AddMember(ctx, Actor{ID: aliceID}, f.project.ID, carolID, project.MemberPending)
	require.NoError(t, err)
	assert.NotZero(t, m.ID)

	_, err = f.svc.Membership.RespondToInvite(ctx, Actor{ID: carolID}, bob.ID, false)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestIntegration_BatchJoin(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Enrollment.Join(ctx, "CAP-2025", carolID)
	require.NoError(t, err)

	res, err := f.svc.Enrollment.BatchJoin(ctx, teacherID, "CAP-2025", []int64{5, 5, 7})
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, res.Inserted)
	assert.Equal(t, []project.SkippedJoin{{UserID: 7, Reason: project.SkipAlreadyJoined}}, res.Skipped)
	assert.Equal(t, []int64{5}, res.Duplicates)
	assert.Equal(t, 1, res.TotalInserted)
	assert.Equal(t, 1, res.TotalSkipped)

	assert.Equal(t, int64(2), countRows(t, &project.StudentJoined{}, "project_master_id = ?", f.master.ID))

	joined, err := f.svc.Enrollment.ListJoined(ctx, aliceID)
	require.NoError(t, err)
	require.Len(t, joined, 1)
}

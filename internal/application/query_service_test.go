package application

import (
	"errors"
	"testing"
	"time"

	"github.com/linskybing/projecthub-go/internal/domain/phase"
	"github.com/linskybing/projecthub-go/internal/domain/project"
	"github.com/linskybing/projecthub-go/internal/domain/status"
	"github.com/linskybing/projecthub-go/internal/domain/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }

func TestProjectOverview_OnlySecondPhaseStarted(t *testing.T) {
	m := newMockRepos(t)
	svc := NewQueryService(m.repos)

	m.project.EXPECT().GetProjectByID(uint(10)).Return(project.ProjectMain{ID: 10, MasterID: 3}, nil)
	m.view.EXPECT().PhaseOverview(uint(10), uint(3)).Return([]view.PhaseOverviewRow{
		{PhaseMainID: 1, Name: "Proposal"},
		{PhaseMainID: 2, Name: "Design", PhaseProjectID: uintPtr(55), StatusCode: intPtr(int(status.UnderReview))},
		{PhaseMainID: 3, Name: "Defense"},
	}, nil)
	m.ledger.EXPECT().Current(status.ScopeProject, uint(10)).Return(&status.Entry{Code: status.InProgress}, nil)

	ov, err := svc.ProjectOverview(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ov.Phases, 3)

	assert.False(t, ov.Phases[0].Started)
	assert.Equal(t, "Not Started", ov.Phases[0].Status.Label)
	assert.True(t, ov.Phases[1].Started)
	assert.Equal(t, "Under Review", ov.Phases[1].Status.Label)
	assert.Equal(t, uint(55), *ov.Phases[1].PhaseProjectID)
	assert.Equal(t, "Not Started", ov.Phases[2].Status.Label)

	assert.Equal(t, status.InProgress, ov.ProjectStatus.Code)
	assert.Equal(t, status.InProgress, ov.DerivedStatus.Code)
}

func TestProjectOverview_StartedWithoutLedgerRowIsPending(t *testing.T) {
	m := newMockRepos(t)
	m.project.EXPECT().GetProjectByID(uint(10)).Return(project.ProjectMain{ID: 10, MasterID: 3}, nil)
	m.view.EXPECT().PhaseOverview(uint(10), uint(3)).Return([]view.PhaseOverviewRow{
		{PhaseMainID: 1, PhaseProjectID: uintPtr(55)},
	}, nil)
	m.ledger.EXPECT().Current(status.ScopeProject, uint(10)).Return(nil, nil)

	ov, err := NewQueryService(m.repos).ProjectOverview(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, status.LabelPending, ov.Phases[0].Status.Label)
	assert.Equal(t, status.NotStarted, ov.ProjectStatus.Code)
}

func TestProjectOverview_AllApproved(t *testing.T) {
	m := newMockRepos(t)
	m.project.EXPECT().GetProjectByID(uint(10)).Return(project.ProjectMain{ID: 10, MasterID: 3}, nil)
	m.view.EXPECT().PhaseOverview(uint(10), uint(3)).Return([]view.PhaseOverviewRow{
		{PhaseMainID: 1, PhaseProjectID: uintPtr(55), StatusCode: intPtr(int(status.Approved))},
		{PhaseMainID: 2, PhaseProjectID: uintPtr(56), StatusCode: intPtr(int(status.Approved))},
	}, nil)
	m.ledger.EXPECT().Current(status.ScopeProject, uint(10)).Return(&status.Entry{Code: status.InProgress}, nil)

	ov, err := NewQueryService(m.repos).ProjectOverview(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Approved", ov.DerivedStatus.Label)
}

func TestProjectOverview_UnknownProject(t *testing.T) {
	m := newMockRepos(t)
	m.project.EXPECT().GetProjectByID(uint(10)).Return(project.ProjectMain{}, gorm.ErrRecordNotFound)

	_, err := NewQueryService(m.repos).ProjectOverview(ctx, 10)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestPhaseDetail(t *testing.T) {
	m := newMockRepos(t)
	svc := NewQueryService(m.repos)

	base := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	m.view.EXPECT().GetPhaseRow(uint(55)).Return(view.PhaseRow{PhaseProjectID: 55, Name: "Design"}, nil)
	m.view.EXPECT().PhaseStatusHistory(uint(55)).Return([]view.StatusRow{
		{ID: 3, Code: status.RevisionNeeded, CreatedAt: base.Add(2 * time.Minute)},
		{ID: 4, Code: status.UnderReview, CreatedAt: base.Add(time.Minute)},
		{ID: 1, Code: status.InProgress, CreatedAt: base},
	}, nil)
	m.view.EXPECT().ListDiscussions(uint(55)).Return(nil, nil)
	m.view.EXPECT().ListFiles(uint(55)).Return([]view.FileRow{{ID: 1}}, nil)
	m.revision.EXPECT().ListRevisions(uint(55)).Return([]phase.RevisionPhase{{ID: 9}}, nil)

	d, err := svc.PhaseDetail(ctx, 55)
	require.NoError(t, err)
	require.NotNil(t, d.CurrentStatus)
	assert.Equal(t, uint(3), d.CurrentStatus.ID)
	assert.Equal(t, "Revision Needed", d.CurrentStatus.Label)
	assert.Equal(t, "In Progress", d.StatusHistory[2].Label)
	assert.NotNil(t, d.Discussions)
	assert.Len(t, d.Files, 1)
	assert.Len(t, d.Revisions, 1)
}

func TestPhaseDetail_ListFailure(t *testing.T) {
	m := newMockRepos(t)
	m.view.EXPECT().GetPhaseRow(uint(55)).Return(view.PhaseRow{PhaseProjectID: 55}, nil)
	m.view.EXPECT().PhaseStatusHistory(uint(55)).Return(nil, nil)
	m.view.EXPECT().ListDiscussions(uint(55)).Return(nil, errors.New("boom"))
	m.view.EXPECT().ListFiles(uint(55)).Return(nil, nil).AnyTimes()
	m.revision.EXPECT().ListRevisions(uint(55)).Return(nil, nil).AnyTimes()

	_, err := NewQueryService(m.repos).PhaseDetail(ctx, 55)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestPhaseDetailByTemplate_NotStarted(t *testing.T) {
	m := newMockRepos(t)
	m.phase.EXPECT().FindInstance(uint(2), uint(10)).Return(nil, nil)

	_, err := NewQueryService(m.repos).PhaseDetailByTemplate(ctx, 2, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectStatus(t *testing.T) {
	m := newMockRepos(t)
	m.project.EXPECT().GetProjectByID(uint(10)).Return(project.ProjectMain{ID: 10}, nil)
	m.ledger.EXPECT().Current(status.ScopeProject, uint(10)).Return(nil, nil)

	sum, cur, err := NewQueryService(m.repos).ProjectStatus(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, cur)
	assert.Equal(t, "Not Started", sum.Label)
}

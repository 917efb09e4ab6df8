package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/projecthub-go/internal/domain/project"
	"github.com/linskybing/projecthub-go/internal/domain/status"
	"github.com/linskybing/projecthub-go/internal/domain/user"
	"github.com/linskybing/projecthub-go/internal/domain/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateProject_CreatorAcceptedTeammatesPending(t *testing.T) {
	m := newMockRepos(t)
	svc := NewProjectService(m.repos)

	var members []project.ProjectMember
	var appended []status.Entry
	m.project.EXPECT().GetMasterByID(uint(3)).Return(project.ProjectMaster{ID: 3}, nil)
	m.project.EXPECT().CreateProject(gomock.Any()).DoAndReturn(func(p *project.ProjectMain) error {
		p.ID = 10
		return nil
	})
	m.ledger.EXPECT().Append(gomock.Any()).DoAndReturn(recordAppends(&appended))
	m.member.EXPECT().CreateMember(gomock.Any()).DoAndReturn(func(pm *project.ProjectMember) error {
		members = append(members, *pm)
		return nil
	}).Times(3)

	p, err := svc.CreateProject(ctx, 7, project.CreateProjectDTO{
		MasterID:    3,
		Title:       "Capstone",
		TeamMembers: []uint{8, 7, 9, 8},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(10), p.ID)

	require.Len(t, members, 3)
	assert.Equal(t, project.ProjectMember{ProjectMainID: 10, UserID: 7, IsActive: project.MemberAccepted}, members[0])
	assert.Equal(t, project.ProjectMember{ProjectMainID: 10, UserID: 8, IsActive: project.MemberPending}, members[1])
	assert.Equal(t, project.ProjectMember{ProjectMainID: 10, UserID: 9, IsActive: project.MemberPending}, members[2])

	require.Len(t, appended, 1)
	assert.Equal(t, status.NotStarted, appended[0].Code)
	assert.Equal(t, status.ScopeProject, appended[0].Scope)
}

func TestCreateProject_UnknownMaster(t *testing.T) {
	m := newMockRepos(t)
	m.project.EXPECT().GetMasterByID(uint(3)).Return(project.ProjectMaster{}, gorm.ErrRecordNotFound)
	m.project.EXPECT().CreateProject(gomock.Any()).Times(0)

	_, err := NewProjectService(m.repos).CreateProject(ctx, 7, project.CreateProjectDTO{MasterID: 3, Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMine_GroupsByMaster(t *testing.T) {
	m := newMockRepos(t)
	m.view.EXPECT().ListProjectsByUser(uint(7)).Return([]view.MyProjectRow{
		{MasterID: 1, MasterTitle: "Research", ProjectMainID: 10, Title: "A", MemberState: 1},
		{MasterID: 1, MasterTitle: "Research", ProjectMainID: 11, Title: "B", MemberState: 1},
		{MasterID: 2, MasterTitle: "Thesis", ProjectMainID: 20, Title: "C", MemberState: 1},
	}, nil)

	grouped, err := NewProjectService(m.repos).ListMine(ctx, 7)
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	assert.Equal(t, "Research", grouped[0].MasterTitle)
	assert.Len(t, grouped[0].Projects, 2)
	assert.Equal(t, uint(20), grouped[1].Projects[0].ProjectMainID)
}

var (
	teacherActor = Actor{ID: 2, Staff: true}
	studentActor = Actor{ID: 7}
)

func TestAddMember(t *testing.T) {
	t.Run("existing membership is a conflict", func(t *testing.T) {
		m := newMockRepos(t)
		m.project.EXPECT().GetProjectByID(uint(10)).Return(project.ProjectMain{ID: 10}, nil)
		m.user.EXPECT().GetUserByID(uint(8)).Return(user.User{ID: 8}, nil)
		m.member.EXPECT().FindMember(uint(10), uint(8)).Return(&project.ProjectMember{ID: 4}, nil)
		m.member.EXPECT().CreateMember(gomock.Any()).Times(0)

		_, err := NewMembershipService(m.repos).AddMember(ctx, teacherActor, 10, 8, project.MemberPending)
		assert.ErrorIs(t, err, ErrAlreadyMember)
	})

	t.Run("member invites a teammate", func(t *testing.T) {
		m := newMockRepos(t)
		gomock.InOrder(
			m.project.EXPECT().GetProjectByID(uint(10)).Return(project.ProjectMain{ID: 10}, nil),
			m.member.EXPECT().FindMember(uint(10), uint(7)).Return(&project.ProjectMember{ID: 3, UserID: 7, IsActive: project.MemberAccepted}, nil),
			m.user.EXPECT().GetUserByID(uint(8)).Return(user.User{ID: 8}, nil),
			m.member.EXPECT().FindMember(uint(10), uint(8)).Return(nil, nil),
			m.member.EXPECT().CreateMember(gomock.Any()).DoAndReturn(func(pm *project.ProjectMember) error {
				pm.ID = 5
				return nil
			}),
		)

		pm, err := NewMembershipService(m.repos).AddMember(ctx, studentActor, 10, 8, project.MemberPending)
		require.NoError(t, err)
		assert.Equal(t, uint(5), pm.ID)
		assert.Equal(t, project.MemberPending, pm.IsActive)
	})

	t.Run("outsider cannot invite", func(t *testing.T) {
		m := newMockRepos(t)
		m.project.EXPECT().GetProjectByID(uint(10)).Return(project.ProjectMain{ID: 10}, nil)
		m.member.EXPECT().FindMember(uint(10), uint(7)).Return(nil, nil)
		m.member.EXPECT().CreateMember(gomock.Any()).Times(0)

		_, err := NewMembershipService(m.repos).AddMember(ctx, studentActor, 10, 7, project.MemberPending)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("students cannot add accepted members", func(t *testing.T) {
		m := newMockRepos(t)
		m.member.EXPECT().CreateMember(gomock.Any()).Times(0)

		_, err := NewMembershipService(m.repos).AddMember(ctx, studentActor, 10, 7, project.MemberAccepted)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("invalid state", func(t *testing.T) {
		m := newMockRepos(t)
		_, err := NewMembershipService(m.repos).AddMember(ctx, teacherActor, 10, 8, project.MemberState(2))
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestRespondToInvite(t *testing.T) {
	invite := project.ProjectMember{ID: 5, ProjectMainID: 10, UserID: 8, IsActive: project.MemberPending}

	t.Run("accept", func(t *testing.T) {
		m := newMockRepos(t)
		gomock.InOrder(
			m.member.EXPECT().GetMember(uint(5)).Return(invite, nil),
			m.member.EXPECT().SetMemberState(uint(5), project.MemberAccepted).Return(int64(1), nil),
		)

		pm, err := NewMembershipService(m.repos).RespondToInvite(ctx, Actor{ID: 8}, 5, true)
		require.NoError(t, err)
		assert.Equal(t, project.MemberAccepted, pm.IsActive)
		assert.Equal(t, uint(8), pm.UserID)
	})

	t.Run("unchanged row", func(t *testing.T) {
		m := newMockRepos(t)
		m.member.EXPECT().GetMember(uint(5)).Return(invite, nil)
		m.member.EXPECT().SetMemberState(uint(5), project.MemberDeclined).Return(int64(0), nil)

		_, err := NewMembershipService(m.repos).RespondToInvite(ctx, Actor{ID: 8}, 5, false)
		assert.ErrorIs(t, err, ErrInviteUnchanged)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing row", func(t *testing.T) {
		m := newMockRepos(t)
		m.member.EXPECT().GetMember(uint(5)).Return(project.ProjectMember{}, gorm.ErrRecordNotFound)
		m.member.EXPECT().SetMemberState(gomock.Any(), gomock.Any()).Times(0)

		_, err := NewMembershipService(m.repos).RespondToInvite(ctx, Actor{ID: 8}, 5, true)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("someone else's invitation", func(t *testing.T) {
		m := newMockRepos(t)
		m.member.EXPECT().GetMember(uint(5)).Return(invite, nil)
		m.member.EXPECT().SetMemberState(gomock.Any(), gomock.Any()).Times(0)

		_, err := NewMembershipService(m.repos).RespondToInvite(ctx, studentActor, 5, true)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("staff may answer for a student", func(t *testing.T) {
		m := newMockRepos(t)
		m.member.EXPECT().GetMember(uint(5)).Return(invite, nil)
		m.member.EXPECT().SetMemberState(uint(5), project.MemberDeclined).Return(int64(1), nil)

		pm, err := NewMembershipService(m.repos).RespondToInvite(ctx, teacherActor, 5, false)
		require.NoError(t, err)
		assert.Equal(t, project.MemberDeclined, pm.IsActive)
	})
}

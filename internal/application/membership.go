package application

import (
	"context"

	"github.com/linskybing/projecthub-go/internal/domain/project"
	"github.com/linskybing/projecthub-go/internal/domain/view"
	"github.com/linskybing/projecthub-go/internal/repository"
)

// MembershipService handles project team invitations.
type MembershipService struct {
	Repos *repository.Repos
}

func NewMembershipService(repos *repository.Repos) *MembershipService {
	return &MembershipService{
		Repos: repos,
	}
}

// Actor is the caller of a membership change. Staff may manage any project;
// everyone else acts only on their own projects and invitations.
type Actor struct {
	ID    uint
	Staff bool
}

// AddMember puts userID on the project. Non-staff callers must be accepted
// members themselves and can only create pending invitations.
func (s *MembershipService) AddMember(ctx context.Context, actor Actor, projectMainID, userID uint, state project.MemberState) (*project.ProjectMember, error) {
	if projectMainID == 0 || userID == 0 {
		return nil, validationf("project_main_id and user_id are required")
	}
	if !state.Valid() {
		return nil, validationf("is_active must be -1, 0 or 1")
	}
	if !actor.Staff && state != project.MemberPending {
		return nil, forbidden("only teachers can set a member's state directly")
	}

	m := &project.ProjectMember{ProjectMainID: projectMainID, UserID: userID, IsActive: state}
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.Project.GetProjectByID(projectMainID); err != nil {
			return classify(err, ErrProjectNotFound)
		}
		if !actor.Staff {
			self, err := tx.Member.FindMember(projectMainID, actor.ID)
			if err != nil {
				return storageErr("failed to check membership", err)
			}
			if self == nil || self.IsActive != project.MemberAccepted {
				return forbidden("only project members can invite teammates")
			}
		}
		if _, err := tx.User.GetUserByID(userID); err != nil {
			return classify(err, notFound("user not found"))
		}
		existing, err := tx.Member.FindMember(projectMainID, userID)
		if err != nil {
			return storageErr("failed to check membership", err)
		}
		if existing != nil {
			return ErrAlreadyMember
		}
		if err := tx.Member.CreateMember(m); err != nil {
			return classify(err, nil)
		}
		return recordAudit(tx, actor.ID, "add_member", "project_members", m.ID, nil, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// RespondToInvite accepts or declines an invitation. Only the invited user or
// staff may answer it. Answering with the state the row already has is
// reported as ErrInviteUnchanged.
func (s *MembershipService) RespondToInvite(ctx context.Context, actor Actor, memberID uint, accept bool) (*project.ProjectMember, error) {
	if memberID == 0 {
		return nil, validationf("project_members_id is required")
	}
	state := project.MemberDeclined
	if accept {
		state = project.MemberAccepted
	}

	var updated project.ProjectMember
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		before, err := tx.Member.GetMember(memberID)
		if err != nil {
			return classify(err, ErrInviteUnchanged)
		}
		if !actor.Staff && before.UserID != actor.ID {
			return forbidden("cannot answer another user's invitation")
		}
		n, err := tx.Member.SetMemberState(memberID, state)
		if err != nil {
			return storageErr("failed to update invitation", err)
		}
		if n == 0 {
			return ErrInviteUnchanged
		}
		updated = before
		updated.IsActive = state
		return recordAudit(tx, actor.ID, "respond_invite", "project_members", memberID, before, updated)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *MembershipService) ListMembers(ctx context.Context, projectMainID uint) ([]view.MemberRow, error) {
	if projectMainID == 0 {
		return nil, validationf("project_main_id is required")
	}
	rows, err := s.Repos.WithContext(ctx).View.ListMembers(projectMainID)
	if err != nil {
		return nil, storageErr("failed to list members", err)
	}
	if rows == nil {
		rows = []view.MemberRow{}
	}
	return rows, nil
}

package application

import (
	"github.com/linskybing/projecthub-go/internal/repository"
	"github.com/linskybing/projecthub-go/internal/storage"
)

type Services struct {
	Audit      *AuditService
	Ledger     *LedgerService
	Template   *TemplateService
	Project    *ProjectService
	Membership *MembershipService
	Enrollment *EnrollmentService
	Phase      *PhaseService
	Review     *ReviewService
	Activity   *ActivityService
	Task       *TaskService
	Query      *QueryService
}

func New(repos *repository.Repos, blobs storage.BlobStore, maxUploadBytes int64) *Services {
	return &Services{
		Audit:      NewAuditService(repos),
		Ledger:     NewLedgerService(repos),
		Template:   NewTemplateService(repos),
		Project:    NewProjectService(repos),
		Membership: NewMembershipService(repos),
		Enrollment: NewEnrollmentService(repos),
		Phase:      NewPhaseService(repos),
		Review:     NewReviewService(repos),
		Activity:   NewActivityService(repos, blobs, maxUploadBytes),
		Task:       NewTaskService(repos),
		Query:      NewQueryService(repos),
	}
}

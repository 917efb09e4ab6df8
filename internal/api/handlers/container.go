package handlers

import (
	"github.com/linskybing/projecthub-go/internal/application"
)

type Handlers struct {
	Template   *TemplateHandler
	Project    *ProjectHandler
	Enrollment *EnrollmentHandler
	Phase      *PhaseHandler
	Activity   *ActivityHandler
	Query      *QueryHandler
	Ledger     *LedgerHandler
	Dispatcher *Dispatcher
}

// New builds every handler and registers its operations on one dispatcher.
func New(svc *application.Services) *Handlers {
	h := &Handlers{
		Template:   NewTemplateHandler(svc.Template),
		Project:    NewProjectHandler(svc.Project, svc.Membership),
		Enrollment: NewEnrollmentHandler(svc.Enrollment),
		Phase:      NewPhaseHandler(svc.Phase, svc.Review),
		Activity:   NewActivityHandler(svc.Activity, svc.Task),
		Query:      NewQueryHandler(svc.Query, svc.Audit),
		Ledger:     NewLedgerHandler(svc.Ledger),
		Dispatcher: NewDispatcher(),
	}
	h.Template.Register(h.Dispatcher)
	h.Project.Register(h.Dispatcher)
	h.Enrollment.Register(h.Dispatcher)
	h.Phase.Register(h.Dispatcher)
	h.Activity.Register(h.Dispatcher)
	h.Query.Register(h.Dispatcher)
	h.Ledger.Register(h.Dispatcher)
	return h
}

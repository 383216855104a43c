package handlers

import (
	"github.com/linskybing/portal-go/internal/application"
	"github.com/linskybing/portal-go/internal/events"
)

type Handlers struct {
	Auth          *AuthHandler
	Questionnaire *QuestionnaireHandler
	Dashboard     *DashboardHandler
	Admin         *AdminHandler
	Payment       *PaymentHandler
	Contact       *ContactHandler
	I18n          *I18nHandler
	Health        *HealthHandler
	Events        *EventsHandler
}

// Options carries what handlers need beyond the services.
type Options struct {
	Responder      Responder
	Hub            *events.Hub
	Health         map[string]Pinger
	AllowedOrigins []string
}

func New(svc *application.Services, opts Options) *Handlers {
	r := opts.Responder
	h := &Handlers{
		Auth:          NewAuthHandler(svc.Identity, r),
		Questionnaire: NewQuestionnaireHandler(svc.Questionnaire, r),
		Dashboard:     NewDashboardHandler(svc.Dashboard, r),
		Admin:         NewAdminHandler(svc.Request, svc.Identity, svc.Contact, r),
		Payment:       NewPaymentHandler(svc.Payment, r),
		Contact:       NewContactHandler(svc.Contact, r),
		I18n:          NewI18nHandler(r),
		Health:        NewHealthHandler(opts.Health),
	}
	if opts.Hub != nil {
		h.Events = NewEventsHandler(opts.Hub, opts.AllowedOrigins, r)
	}
	return h
}

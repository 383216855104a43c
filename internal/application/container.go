package application

import (
	"time"

	"github.com/linskybing/portal-go/internal/domain/request"
	"github.com/linskybing/portal-go/internal/events"
	"github.com/linskybing/portal-go/internal/repository"
	"github.com/linskybing/portal-go/pkg/cache"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/linskybing/portal-go/pkg/logger"
	"github.com/linskybing/portal-go/pkg/storage"
)

// Deps are the collaborators shared by the services. Zero values get
// in-process defaults so tests only set what they exercise.
type Deps struct {
	Translator *i18n.Translator
	Policy     request.DeadlinePolicy
	Locks      cache.Store
	Revoked    cache.Store
	Objects    storage.ObjectStore
	Gateway    PaymentGateway
	Events     events.Publisher
	Logger     logger.Logger
	Clock      func() time.Time
	LockTTL    time.Duration
	TokenTTL   time.Duration
}

func (d Deps) withDefaults() Deps {
	if d.Translator == nil {
		d.Translator = i18n.MustTranslator()
	}
	if d.Policy.Mode() == "" {
		d.Policy = request.TieredPolicy()
	}
	if d.Locks == nil {
		d.Locks = cache.NewMemoryStore()
	}
	if d.Revoked == nil {
		d.Revoked = cache.NewMemoryStore()
	}
	if d.Gateway == nil {
		d.Gateway = NewSimulatedGateway()
	}
	if d.Events == nil {
		d.Events = events.Nop
	}
	if d.Logger == nil {
		d.Logger = logger.NewNop()
	}
	if d.Clock == nil {
		d.Clock = func() time.Time { return time.Now().UTC() }
	}
	if d.LockTTL <= 0 {
		d.LockTTL = 30 * time.Second
	}
	if d.TokenTTL <= 0 {
		d.TokenTTL = 24 * time.Hour
	}
	return d
}

type Services struct {
	Identity      *IdentityService
	Questionnaire *QuestionnaireService
	Request       *RequestService
	Dashboard     *DashboardService
	Payment       *PaymentService
	Contact       *ContactService
}

func New(repos *repository.Repos, deps Deps) *Services {
	deps = deps.withDefaults()
	return &Services{
		Identity:      NewIdentityService(repos, deps),
		Questionnaire: NewQuestionnaireService(repos, NewTxSubmitter(repos), deps),
		Request:       NewRequestService(repos, deps),
		Dashboard:     NewDashboardService(repos, deps),
		Payment:       NewPaymentService(repos, deps),
		Contact:       NewContactService(repos, deps),
	}
}

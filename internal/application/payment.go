package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/linskybing/portal-go/internal/domain/payment"
	"github.com/linskybing/portal-go/internal/domain/request"
	"github.com/linskybing/portal-go/internal/events"
	"github.com/linskybing/portal-go/internal/repository"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/linskybing/portal-go/pkg/logger"
	"github.com/linskybing/portal-go/pkg/metrics"
	"github.com/linskybing/portal-go/pkg/validation"
)

var (
	ErrPaymentNotAllowed = request.ErrNotPayable
	ErrPaymentInFlight   = errors.New("payment already in progress")
	ErrUnknownPackage    = errors.New("unknown package")
)

type Charge struct {
	RequestID uint
	UserID    uint
	Method    payment.Method
	Amount    int64
	Currency  string
}

// PaymentGateway collects a charge and returns the provider's reference.
type PaymentGateway interface {
	Charge(ctx context.Context, c Charge) (string, error)
}

// SimulatedGateway accepts every charge without contacting a provider.
type SimulatedGateway struct{}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{}
}

func (SimulatedGateway) Charge(_ context.Context, c Charge) (string, error) {
	return fmt.Sprintf("sim-%s-%s", c.Method, uuid.NewString()), nil
}

type PaymentService struct {
	Repos *repository.Repos
	deps  Deps
}

func NewPaymentService(repos *repository.Repos, deps Deps) *PaymentService {
	return &PaymentService{Repos: repos, deps: deps.withDefaults()}
}

func (s *PaymentService) Catalog(lang i18n.Language) payment.CatalogDTO {
	return payment.LocalizedCatalog(s.deps.Translator, lang)
}

func paymentKey(userID uint) string {
	return fmt.Sprintf("payment:%d", userID)
}

// Confirm charges the selected package and marks the request paid in one transaction.
// One confirmation per customer runs at a time; the paid transition is conditional
// on the request still showing its preview.
func (s *PaymentService) Confirm(ctx context.Context, userID uint, in payment.ConfirmInput) (payment.Payment, error) {
	if err := validation.Struct(in); err != nil {
		return payment.Payment{}, err
	}
	pkg, ok := payment.Lookup(request.SiteType(in.Package))
	if !ok {
		return payment.Payment{}, ErrUnknownPackage
	}

	key := paymentKey(userID)
	acquired, err := s.deps.Locks.SetNX(ctx, key, s.deps.LockTTL)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("acquire payment guard: %w", err)
	}
	if !acquired {
		return payment.Payment{}, ErrPaymentInFlight
	}
	defer func() {
		if err := s.deps.Locks.Delete(context.WithoutCancel(ctx), key); err != nil {
			s.deps.Logger.Warn("release payment guard", logger.Uint("user_id", userID), logger.Error(err))
		}
	}()

	latest, err := s.Repos.Request.GetLatestByUser(userID)
	if err != nil {
		return payment.Payment{}, err
	}
	now := s.deps.Clock()
	if latest == nil {
		return payment.Payment{}, ErrPaymentNotAllowed
	}
	switch request.Project(latest, now).Status {
	case request.CustomerPreviewAvailable, request.CustomerApprovalPending:
	default:
		return payment.Payment{}, ErrPaymentNotAllowed
	}

	method := payment.Method(in.Method)
	ref, err := s.deps.Gateway.Charge(ctx, Charge{
		RequestID: latest.ID,
		UserID:    userID,
		Method:    method,
		Amount:    pkg.PriceXOF,
		Currency:  payment.Currency,
	})
	if err != nil {
		return payment.Payment{}, fmt.Errorf("payment gateway: %w", err)
	}

	p := payment.Payment{
		RequestID: latest.ID,
		UserID:    userID,
		Package:   string(pkg.SiteType),
		Method:    method,
		Amount:    pkg.PriceXOF,
		Currency:  payment.Currency,
		Reference: ref,
	}
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Request.MarkPaid(latest.ID, now); err != nil {
			return err
		}
		return r.Payment.Create(&p)
	})
	if err != nil {
		if errors.Is(err, ErrPaymentNotAllowed) {
			// the request moved while the charge was running
			s.deps.Logger.Error("charge collected for a request that is no longer payable",
				logger.Uint("request_id", latest.ID),
				logger.String("reference", ref),
			)
		}
		return payment.Payment{}, err
	}

	paid, err := s.Repos.Request.GetByID(latest.ID)
	if err != nil {
		return payment.Payment{}, err
	}
	metrics.RecordPayment(string(method), p.Package)
	metrics.RecordStatusTransition(string(request.StatusPaid))
	s.deps.Events.Publish(events.FromRequest(events.RequestPaid, paid, now))
	s.deps.Logger.Info("payment confirmed",
		logger.Uint("request_id", latest.ID),
		logger.String("method", string(method)),
		logger.String("reference", ref),
	)
	return p, nil
}

func (s *PaymentService) List(userID uint) ([]payment.Payment, error) {
	return s.Repos.Payment.ListByUser(userID)
}

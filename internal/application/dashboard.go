package application

import (
	"github.com/linskybing/portal-go/internal/domain/request"
	"github.com/linskybing/portal-go/internal/events"
	"github.com/linskybing/portal-go/internal/repository"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/linskybing/portal-go/pkg/logger"
)

type DashboardService struct {
	Repos *repository.Repos
	deps  Deps
}

func NewDashboardService(repos *repository.Repos, deps Deps) *DashboardService {
	return &DashboardService{Repos: repos, deps: deps.withDefaults()}
}

// Get recomputes the dashboard from the customer's latest request on every call.
func (s *DashboardService) Get(userID uint, lang i18n.Language) (request.Dashboard, error) {
	latest, err := s.Repos.Request.GetLatestByUser(userID)
	if err != nil {
		return request.Dashboard{}, err
	}
	return request.NewDashboard(latest, s.deps.Clock(), s.deps.Translator, lang), nil
}

// ApprovePreview records the customer's approval of the current preview.
func (s *DashboardService) ApprovePreview(userID uint, lang i18n.Language) (request.Dashboard, error) {
	latest, err := s.Repos.Request.GetLatestByUser(userID)
	if err != nil {
		return request.Dashboard{}, err
	}
	now := s.deps.Clock()
	if latest == nil || request.Project(latest, now).Status != request.CustomerPreviewAvailable {
		return request.Dashboard{}, request.ErrApprovalNotAllowed
	}

	if err := s.Repos.Request.Approve(latest.ID, now); err != nil {
		return request.Dashboard{}, err
	}
	r, err := s.Repos.Request.GetByID(latest.ID)
	if err != nil {
		return request.Dashboard{}, err
	}

	s.deps.Events.Publish(events.FromRequest(events.RequestApproved, r, now))
	s.deps.Logger.Info("preview approved", logger.Uint("request_id", r.ID), logger.Uint("user_id", userID))
	return request.NewDashboard(&r, now, s.deps.Translator, lang), nil
}

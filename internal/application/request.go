package application

import (
	"context"
	"errors"
	"time"

	"github.com/linskybing/portal-go/internal/domain/contact"
	"github.com/linskybing/portal-go/internal/domain/questionnaire"
	"github.com/linskybing/portal-go/internal/domain/request"
	"github.com/linskybing/portal-go/internal/events"
	"github.com/linskybing/portal-go/internal/repository"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/linskybing/portal-go/pkg/logger"
	"github.com/linskybing/portal-go/pkg/metrics"
	"gorm.io/gorm"
)

const exportLinkExpiry = 15 * time.Minute

// RequestService backs the admin console.
type RequestService struct {
	Repos *repository.Repos
	deps  Deps
}

func NewRequestService(repos *repository.Repos, deps Deps) *RequestService {
	return &RequestService{Repos: repos, deps: deps.withDefaults()}
}

func (s *RequestService) view(r request.WebsiteRequest, lang i18n.Language) request.AdminView {
	return request.NewAdminView(r, s.deps.Clock(), s.deps.Translator, lang)
}

// List returns requests newest first. An empty status means all.
func (s *RequestService) List(status string, page, limit int, lang i18n.Language) ([]request.AdminView, int64, error) {
	filter := request.ListFilter{Page: page, Limit: limit}
	if status != "" {
		st, err := request.ParseStaffStatus(status)
		if err != nil {
			return nil, 0, err
		}
		filter.Status = &st
	}

	reqs, total, err := s.Repos.Request.List(filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]request.AdminView, 0, len(reqs))
	for _, r := range reqs {
		views = append(views, s.view(r, lang))
	}
	return views, total, nil
}

func (s *RequestService) Get(id uint, lang i18n.Language) (request.AdminView, error) {
	r, err := s.Repos.Request.GetByID(id)
	if err != nil {
		return request.AdminView{}, err
	}
	return s.view(r, lang), nil
}

// SetStatus overrides the staff status. Any transition is allowed.
func (s *RequestService) SetStatus(id uint, status string, lang i18n.Language) (request.AdminView, error) {
	st, err := request.ParseStaffStatus(status)
	if err != nil {
		return request.AdminView{}, err
	}
	if err := s.Repos.Request.UpdateStatus(id, st); err != nil {
		return request.AdminView{}, err
	}

	r, err := s.Repos.Request.GetByID(id)
	if err != nil {
		return request.AdminView{}, err
	}
	metrics.RecordStatusTransition(string(st))
	s.deps.Events.Publish(events.FromRequest(events.RequestStatusChanged, r, s.deps.Clock()))
	s.deps.Logger.Info("request status updated", logger.Uint("request_id", id), logger.String("status", string(st)))
	return s.view(r, lang), nil
}

// SetPreviewLink stores the link and moves the request to preview_sent whatever its prior status.
func (s *RequestService) SetPreviewLink(id uint, link string, lang i18n.Language) (request.AdminView, error) {
	link, err := request.NormalizePreviewLink(link)
	if err != nil {
		return request.AdminView{}, err
	}
	if err := s.Repos.Request.SetPreviewLink(id, link); err != nil {
		return request.AdminView{}, err
	}

	r, err := s.Repos.Request.GetByID(id)
	if err != nil {
		return request.AdminView{}, err
	}
	metrics.RecordStatusTransition(string(request.StatusPreviewSent))
	s.deps.Events.Publish(events.FromRequest(events.RequestPreviewSent, r, s.deps.Clock()))
	s.deps.Logger.Info("preview link saved", logger.Uint("request_id", id))
	return s.view(r, lang), nil
}

// Export returns the intake of a request with time limited download links.
func (s *RequestService) Export(ctx context.Context, id uint, lang i18n.Language) (questionnaire.Export, error) {
	r, err := s.Repos.Request.GetByID(id)
	if err != nil {
		return questionnaire.Export{}, err
	}
	q, err := s.Repos.Questionnaire.GetByRequestID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return questionnaire.Export{}, ErrQuestionnaireAbsent
	}
	if err != nil {
		return questionnaire.Export{}, err
	}

	files := make([]questionnaire.ExportedFile, 0, len(q.Attachments))
	for _, a := range q.Attachments {
		f := questionnaire.ExportedFile{
			ID:          a.ID,
			FileName:    a.FileName,
			ContentType: a.ContentType,
			Size:        a.Size,
		}
		if s.deps.Objects != nil {
			url, err := s.deps.Objects.PresignedURL(ctx, a.ObjectName, a.FileName, exportLinkExpiry)
			if err != nil {
				return questionnaire.Export{}, err
			}
			f.URL = url
		}
		files = append(files, f)
	}

	return questionnaire.Export{
		Questionnaire: q,
		Files:         files,
		Request:       s.view(r, lang),
	}, nil
}

func (s *RequestService) Stats() (request.Stats, error) {
	byStatus, err := s.Repos.Request.CountByStatus()
	if err != nil {
		return request.Stats{}, err
	}
	var total int64
	for _, n := range byStatus {
		total += n
	}

	overdue, err := s.Repos.Request.CountOverdue(s.deps.Clock())
	if err != nil {
		return request.Stats{}, err
	}
	revenue, err := s.Repos.Payment.TotalRevenue()
	if err != nil {
		return request.Stats{}, err
	}
	open, err := s.Repos.Contact.CountByStatus(contact.StatusNew)
	if err != nil {
		return request.Stats{}, err
	}

	return request.Stats{
		TotalSubmissions: total,
		ByStatus:         byStatus,
		CompletedSites:   byStatus[request.StatusCompleted],
		Overdue:          overdue,
		RevenueXOF:       revenue,
		OpenInquiries:    open,
	}, nil
}

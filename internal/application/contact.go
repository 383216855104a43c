package application

import (
	"errors"
	"strings"

	"github.com/linskybing/portal-go/internal/domain/contact"
	"github.com/linskybing/portal-go/internal/repository"
	"github.com/linskybing/portal-go/pkg/logger"
	"github.com/linskybing/portal-go/pkg/metrics"
	"github.com/linskybing/portal-go/pkg/validation"
	"gorm.io/gorm"
)

var (
	ErrInquiryNotFound      = errors.New("inquiry not found")
	ErrInvalidInquiryStatus = errors.New("invalid inquiry status")
)

type ContactService struct {
	Repos *repository.Repos
	deps  Deps
}

func NewContactService(repos *repository.Repos, deps Deps) *ContactService {
	return &ContactService{Repos: repos, deps: deps.withDefaults()}
}

func (s *ContactService) Create(in contact.CreateInquiryInput) (contact.Inquiry, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Message = strings.TrimSpace(in.Message)
	if err := validation.Struct(in); err != nil {
		return contact.Inquiry{}, err
	}

	inq := contact.Inquiry{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
		Status:  contact.StatusNew,
	}
	if err := s.Repos.Contact.Create(&inq); err != nil {
		return contact.Inquiry{}, err
	}
	metrics.RecordContactSubmission()
	s.deps.Logger.Info("contact inquiry received", logger.Uint("inquiry_id", inq.ID))
	return inq, nil
}

func parseInquiryStatus(s string) (contact.Status, bool) {
	switch st := contact.Status(s); st {
	case contact.StatusNew, contact.StatusRead, contact.StatusReplied:
		return st, true
	}
	return "", false
}

func (s *ContactService) List(status string, page, limit int) ([]contact.Inquiry, int64, error) {
	var filter *contact.Status
	if status != "" {
		st, ok := parseInquiryStatus(status)
		if !ok {
			return nil, 0, ErrInvalidInquiryStatus
		}
		filter = &st
	}
	return s.Repos.Contact.List(filter, page, limit)
}

func (s *ContactService) UpdateStatus(id uint, status string) error {
	st, ok := parseInquiryStatus(status)
	if !ok {
		return ErrInvalidInquiryStatus
	}
	err := s.Repos.Contact.UpdateStatus(id, st)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInquiryNotFound
	}
	return err
}

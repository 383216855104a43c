package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/linskybing/portal-go/internal/domain/questionnaire"
	"github.com/linskybing/portal-go/internal/domain/request"
	"github.com/linskybing/portal-go/internal/domain/user"
	"github.com/linskybing/portal-go/internal/events"
	"github.com/linskybing/portal-go/internal/repository"
	"github.com/linskybing/portal-go/pkg/logger"
	"github.com/linskybing/portal-go/pkg/metrics"
	"github.com/linskybing/portal-go/pkg/storage"
	"gorm.io/gorm"
)

var (
	ErrSubmissionInFlight  = errors.New("submission already in progress")
	ErrAttachmentNotFound  = errors.New("attachment not found")
	ErrStorageUnavailable  = errors.New("file storage is not configured")
	ErrQuestionnaireAbsent = errors.New("questionnaire not found")
)

// Intake is everything persisted by one questionnaire submission.
type Intake struct {
	Profile     user.Profile
	Input       questionnaire.SubmitInput
	SubmittedAt time.Time
	Deadline    time.Time
}

// Submitter persists an intake atomically: the request, the questionnaire
// and the binding of staged attachments either all exist or none do.
type Submitter interface {
	Submit(ctx context.Context, in Intake) (request.WebsiteRequest, error)
}

type TxSubmitter struct {
	repos *repository.Repos
}

func NewTxSubmitter(repos *repository.Repos) *TxSubmitter {
	return &TxSubmitter{repos: repos}
}

func (s *TxSubmitter) Submit(_ context.Context, in Intake) (request.WebsiteRequest, error) {
	var created request.WebsiteRequest
	err := s.repos.ExecTx(func(r *repository.Repos) error {
		req := request.WebsiteRequest{
			UserID:       in.Profile.UserID,
			CustomerName: in.Profile.Name,
			Email:        in.Profile.Email,
			Phone:        in.Profile.Phone,
			SiteType:     request.SiteType(in.Input.SiteType),
			Status:       request.StatusNew,
			Description:  in.Input.Description,
			Domain:       in.Input.Domain,
			WantDomain:   in.Input.WantDomain,
			SocialLinks:  in.Input.SocialLinks(),
			SubmittedAt:  in.SubmittedAt,
			Deadline:     in.Deadline,
		}
		if err := r.Request.Create(&req); err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		q := questionnaire.Questionnaire{
			UserID:              in.Profile.UserID,
			RequestID:           req.ID,
			BusinessName:        in.Input.BusinessName,
			BusinessDescription: in.Input.BusinessDescription,
			SiteType:            in.Input.SiteType,
			Description:         in.Input.Description,
			HasDomain:           in.Input.HasDomain,
			Domain:              in.Input.Domain,
			WantDomain:          in.Input.WantDomain,
			Facebook:            in.Input.Facebook,
			Instagram:           in.Input.Instagram,
			Twitter:             in.Input.Twitter,
			LinkedIn:            in.Input.LinkedIn,
			WhatsApp:            in.Input.WhatsApp,
			References:          in.Input.References,
		}
		if err := r.Questionnaire.Create(&q); err != nil {
			return fmt.Errorf("create questionnaire: %w", err)
		}

		ids := uniqueIDs(in.Input.AttachmentIDs)
		n, err := r.Attachment.Bind(in.Profile.UserID, ids, q.ID)
		if err != nil {
			return fmt.Errorf("bind attachments: %w", err)
		}
		if n != int64(len(ids)) {
			return ErrAttachmentNotFound
		}

		created = req
		return nil
	})
	return created, err
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

type QuestionnaireService struct {
	Repos     *repository.Repos
	submitter Submitter
	deps      Deps
}

func NewQuestionnaireService(repos *repository.Repos, submitter Submitter, deps Deps) *QuestionnaireService {
	return &QuestionnaireService{Repos: repos, submitter: submitter, deps: deps.withDefaults()}
}

func submissionKey(userID uint) string {
	return fmt.Sprintf("submission:%d", userID)
}

// Submit validates, takes the per-customer guard and persists the intake.
// The guard is released on every path so a failed attempt can be retried.
func (s *QuestionnaireService) Submit(ctx context.Context, userID uint, in questionnaire.SubmitInput) (questionnaire.Receipt, error) {
	if err := questionnaire.Validate(&in); err != nil {
		metrics.RecordSubmission("invalid")
		return questionnaire.Receipt{}, err
	}

	key := submissionKey(userID)
	acquired, err := s.deps.Locks.SetNX(ctx, key, s.deps.LockTTL)
	if err != nil {
		metrics.RecordSubmission("error")
		return questionnaire.Receipt{}, fmt.Errorf("acquire submission guard: %w", err)
	}
	if !acquired {
		metrics.RecordSubmission("in_flight")
		return questionnaire.Receipt{}, ErrSubmissionInFlight
	}
	defer func() {
		if err := s.deps.Locks.Delete(context.WithoutCancel(ctx), key); err != nil {
			s.deps.Logger.Warn("release submission guard", logger.Uint("user_id", userID), logger.Error(err))
		}
	}()

	latest, err := s.Repos.Request.GetLatestByUser(userID)
	if err != nil {
		metrics.RecordSubmission("error")
		return questionnaire.Receipt{}, err
	}
	if latest != nil && latest.Active() {
		metrics.RecordSubmission("duplicate")
		return questionnaire.Receipt{}, request.ErrActiveRequestExists
	}

	u, err := s.Repos.User.GetByID(userID)
	if err != nil {
		metrics.RecordSubmission("error")
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return questionnaire.Receipt{}, ErrUserNotFound
		}
		return questionnaire.Receipt{}, err
	}

	now := s.deps.Clock()
	siteType := request.SiteType(in.SiteType)
	req, err := s.submitter.Submit(ctx, Intake{
		Profile:     u.Profile(),
		Input:       in,
		SubmittedAt: now,
		Deadline:    s.deps.Policy.DeadlineFor(siteType, now),
	})
	if err != nil {
		metrics.RecordSubmission("error")
		return questionnaire.Receipt{}, err
	}

	metrics.RecordSubmission("ok")
	s.deps.Events.Publish(events.FromRequest(events.RequestCreated, req, now))
	s.deps.Logger.Info("questionnaire submitted",
		logger.Uint("user_id", userID),
		logger.Uint("request_id", req.ID),
		logger.String("site_type", string(siteType)),
	)

	receipt := questionnaire.Receipt{
		RequestID:      req.ID,
		Deadline:       req.Deadline,
		CustomerStatus: request.Project(&req, now).Status,
	}
	if in.WantDomain {
		receipt.DomainFeeXOF = questionnaire.DomainFeeXOF
	}
	return receipt, nil
}

// Status reports whether the customer has submitted and what.
func (s *QuestionnaireService) Status(userID uint) (questionnaire.Status, error) {
	q, err := s.Repos.Questionnaire.GetLatestByUser(userID)
	if err != nil {
		return questionnaire.Status{}, err
	}
	return questionnaire.Status{Submitted: q != nil, Questionnaire: q}, nil
}

// UploadAttachment streams a file to object storage and records it as staged.
func (s *QuestionnaireService) UploadAttachment(ctx context.Context, userID uint, fileName, contentType string, r io.Reader, size int64) (questionnaire.Attachment, error) {
	if s.deps.Objects == nil {
		return questionnaire.Attachment{}, ErrStorageUnavailable
	}

	objectName := storage.ObjectName(userID, fileName)
	if err := s.deps.Objects.Upload(ctx, objectName, contentType, r, size); err != nil {
		return questionnaire.Attachment{}, fmt.Errorf("upload attachment: %w", err)
	}

	a := questionnaire.Attachment{
		UserID:      userID,
		ObjectName:  objectName,
		FileName:    fileName,
		ContentType: contentType,
		Size:        size,
	}
	if err := s.Repos.Attachment.Create(&a); err != nil {
		if derr := s.deps.Objects.Delete(context.WithoutCancel(ctx), objectName); derr != nil {
			s.deps.Logger.Warn("remove orphaned object", logger.String("object", objectName), logger.Error(derr))
		}
		return questionnaire.Attachment{}, err
	}
	return a, nil
}

func (s *QuestionnaireService) ListAttachments(userID uint) ([]questionnaire.Attachment, error) {
	return s.Repos.Attachment.ListStaged(userID)
}

// RemoveAttachment deletes one of the caller's staged files. Files already
// bound to a submitted questionnaire are not removable.
func (s *QuestionnaireService) RemoveAttachment(ctx context.Context, userID, id uint) error {
	a, err := s.Repos.Attachment.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAttachmentNotFound
	}
	if err != nil {
		return err
	}
	if a.UserID != userID || !a.Staged() {
		return ErrAttachmentNotFound
	}

	if err := s.Repos.Attachment.Delete(id); err != nil {
		return err
	}
	if s.deps.Objects != nil {
		if err := s.deps.Objects.Delete(ctx, a.ObjectName); err != nil {
			s.deps.Logger.Warn("remove attachment object", logger.String("object", a.ObjectName), logger.Error(err))
		}
	}
	return nil
}

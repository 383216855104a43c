package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/portal-go/internal/domain/questionnaire"
	"github.com/linskybing/portal-go/internal/domain/request"
	"github.com/linskybing/portal-go/internal/domain/user"
	"github.com/linskybing/portal-go/internal/events"
	"github.com/linskybing/portal-go/pkg/cache"
	"github.com/linskybing/portal-go/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubSubmitter struct {
	got    *Intake
	result request.WebsiteRequest
	err    error
}

func (s *stubSubmitter) Submit(_ context.Context, in Intake) (request.WebsiteRequest, error) {
	s.got = &in
	if s.err != nil {
		return request.WebsiteRequest{}, s.err
	}
	r := s.result
	r.UserID = in.Profile.UserID
	r.Status = request.StatusNew
	r.SubmittedAt = in.SubmittedAt
	r.Deadline = in.Deadline
	return r, nil
}

func validInput() questionnaire.SubmitInput {
	return questionnaire.SubmitInput{
		BusinessName:        "Boulangerie Awa",
		BusinessDescription: "Artisan bakery in Dakar",
		SiteType:            "basic",
		Description:         "Need a bakery site with gallery",
		HasDomain:           "no",
		WantDomain:          true,
		References:          "https://example.com",
	}
}

func setupQuestionnaire(t *testing.T, sub Submitter) (*QuestionnaireService, mockRepos, *cache.MemoryStore, *recordingPublisher) {
	repos, m := setupMocks(t)
	pub := &recordingPublisher{}
	deps := testDeps(pub)
	locks := cache.NewMemoryStore()
	deps.Locks = locks
	return NewQuestionnaireService(repos, sub, deps), m, locks, pub
}

func guardHeld(t *testing.T, locks *cache.MemoryStore, userID uint) bool {
	t.Helper()
	held, err := locks.Exists(context.Background(), submissionKey(userID))
	require.NoError(t, err)
	return held
}

// --------------------- Submit ---------------------
func TestSubmit_ValidationWritesNothing(t *testing.T) {
	sub := &stubSubmitter{}
	svc, _, locks, pub := setupQuestionnaire(t, sub)

	in := validInput()
	in.Description = "too short"
	_, err := svc.Submit(context.Background(), 3, in)

	verrs, ok := validation.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "description", verrs.Violations[0].Field)
	assert.Nil(t, sub.got)
	assert.Empty(t, pub.All())
	assert.False(t, guardHeld(t, locks, 3))
}

func TestSubmit_InFlightGuard(t *testing.T) {
	sub := &stubSubmitter{}
	svc, _, locks, _ := setupQuestionnaire(t, sub)
	_, err := locks.SetNX(context.Background(), submissionKey(3), time.Minute)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), 3, validInput())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Nil(t, sub.got)
}

func TestSubmit_ActiveRequestConflict(t *testing.T) {
	sub := &stubSubmitter{}
	svc, m, locks, _ := setupQuestionnaire(t, sub)
	m.Request.EXPECT().GetLatestByUser(uint(3)).Return(&request.WebsiteRequest{ID: 1, Status: request.StatusInProgress}, nil)

	_, err := svc.Submit(context.Background(), 3, validInput())
	assert.ErrorIs(t, err, request.ErrActiveRequestExists)
	assert.False(t, guardHeld(t, locks, 3))
}

func TestSubmit_Success(t *testing.T) {
	sub := &stubSubmitter{result: request.WebsiteRequest{ID: 11}}
	svc, m, locks, pub := setupQuestionnaire(t, sub)
	m.Request.EXPECT().GetLatestByUser(uint(3)).Return(nil, nil)
	m.User.EXPECT().GetByID(uint(3)).Return(user.User{ID: 3, Name: "Awa", Email: "awa@example.com"}, nil)

	in := validInput()
	in.BusinessName = "  Boulangerie Awa  "
	receipt, err := svc.Submit(context.Background(), 3, in)
	require.NoError(t, err)

	assert.Equal(t, uint(11), receipt.RequestID)
	assert.Equal(t, request.CustomerInProgress, receipt.CustomerStatus)
	assert.True(t, fixedNow.Add(24*time.Hour).Equal(receipt.Deadline))
	assert.Equal(t, int64(questionnaire.DomainFeeXOF), receipt.DomainFeeXOF)

	require.NotNil(t, sub.got)
	assert.Equal(t, "Boulangerie Awa", sub.got.Input.BusinessName)
	assert.Equal(t, "Awa", sub.got.Profile.Name)

	evts := pub.All()
	require.Len(t, evts, 1)
	assert.Equal(t, events.RequestCreated, evts[0].Type)
	assert.Equal(t, uint(3), evts[0].UserID)
	assert.False(t, guardHeld(t, locks, 3))
}

func TestSubmit_AfterCompletedEngagement(t *testing.T) {
	sub := &stubSubmitter{result: request.WebsiteRequest{ID: 12}}
	svc, m, _, _ := setupQuestionnaire(t, sub)
	m.Request.EXPECT().GetLatestByUser(uint(3)).Return(&request.WebsiteRequest{ID: 2, Status: request.StatusCompleted}, nil)
	m.User.EXPECT().GetByID(uint(3)).Return(user.User{ID: 3}, nil)

	in := validInput()
	in.HasDomain = "yes"
	in.Domain = "boulangerie-awa.sn"
	receipt, err := svc.Submit(context.Background(), 3, in)
	require.NoError(t, err)
	assert.Zero(t, receipt.DomainFeeXOF)
	assert.False(t, sub.got.Input.WantDomain)
}

func TestSubmit_FailureReleasesGuard(t *testing.T) {
	sub := &stubSubmitter{err: errors.New("db down")}
	svc, m, locks, pub := setupQuestionnaire(t, sub)
	m.Request.EXPECT().GetLatestByUser(uint(3)).Return(nil, nil)
	m.User.EXPECT().GetByID(uint(3)).Return(user.User{ID: 3}, nil)

	_, err := svc.Submit(context.Background(), 3, validInput())
	assert.Error(t, err)
	assert.False(t, guardHeld(t, locks, 3))
	assert.Empty(t, pub.All())
}

// --------------------- Attachments ---------------------
func TestUploadAttachment_NoStorage(t *testing.T) {
	svc, _, _, _ := setupQuestionnaire(t, &stubSubmitter{})
	_, err := svc.UploadAttachment(context.Background(), 3, "logo.png", "image/png", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestUploadAttachment_RemovesObjectWhenRecordFails(t *testing.T) {
	repos, m := setupMocks(t)
	objects := newMemoryObjects()
	deps := testDeps(&recordingPublisher{})
	deps.Objects = objects
	svc := NewQuestionnaireService(repos, &stubSubmitter{}, deps)

	var stored string
	m.Attachment.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *questionnaire.Attachment) error {
		stored = a.ObjectName
		return errors.New("insert failed")
	})

	_, err := svc.UploadAttachment(context.Background(), 3, "logo.png", "image/png", strings.NewReader("png"), 3)
	assert.Error(t, err)
	assert.True(t, strings.HasPrefix(stored, "attachments/3/"))
	assert.False(t, objects.Has(stored))
}

func TestRemoveAttachment_OwnershipAndStage(t *testing.T) {
	svc, m, _, _ := setupQuestionnaire(t, &stubSubmitter{})
	bound := uint(4)

	m.Attachment.EXPECT().GetByID(uint(1)).Return(questionnaire.Attachment{ID: 1, UserID: 8}, nil)
	assert.ErrorIs(t, svc.RemoveAttachment(context.Background(), 3, 1), ErrAttachmentNotFound)

	m.Attachment.EXPECT().GetByID(uint(2)).Return(questionnaire.Attachment{ID: 2, UserID: 3, QuestionnaireID: &bound}, nil)
	assert.ErrorIs(t, svc.RemoveAttachment(context.Background(), 3, 2), ErrAttachmentNotFound)

	m.Attachment.EXPECT().GetByID(uint(5)).Return(questionnaire.Attachment{}, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.RemoveAttachment(context.Background(), 3, 5), ErrAttachmentNotFound)

	m.Attachment.EXPECT().GetByID(uint(6)).Return(questionnaire.Attachment{ID: 6, UserID: 3, ObjectName: "attachments/3/x"}, nil)
	m.Attachment.EXPECT().Delete(uint(6)).Return(nil)
	assert.NoError(t, svc.RemoveAttachment(context.Background(), 3, 6))
}

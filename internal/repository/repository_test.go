package repository

import (
	"testing"
	"time"

	"github.com/linskybing/portal-go/internal/config/db"
	"github.com/linskybing/portal-go/internal/domain/contact"
	"github.com/linskybing/portal-go/internal/domain/payment"
	"github.com/linskybing/portal-go/internal/domain/questionnaire"
	"github.com/linskybing/portal-go/internal/domain/request"
	"github.com/linskybing/portal-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var base = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func setupRepos(t *testing.T) *Repos {
	t.Helper()
	gormDB, err := db.Open("sqlite://:memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewRepositories(gormDB)
}

func seedUser(t *testing.T, repos *Repos, email string) user.User {
	t.Helper()
	u := user.User{Email: email, Password: "x", Name: "Awa", Role: user.RoleCustomer}
	require.NoError(t, repos.User.Create(&u))
	return u
}

func seedRequest(t *testing.T, repos *Repos, userID uint, status request.StaffStatus, submitted time.Time) request.WebsiteRequest {
	t.Helper()
	r := request.WebsiteRequest{
		UserID:       userID,
		CustomerName: "Awa",
		Email:        "awa@example.com",
		SiteType:     request.SiteBasic,
		Status:       status,
		Description:  "Need a bakery site with gallery",
		SocialLinks:  datatypes.JSONMap{"facebook": "fb.com/awa"},
		SubmittedAt:  submitted,
		Deadline:     submitted.Add(24 * time.Hour),
	}
	require.NoError(t, repos.Request.Create(&r))
	return r
}

// --------------------- User ---------------------
func TestUserRepo_EmailIsCaseInsensitive(t *testing.T) {
	repos := setupRepos(t)
	seedUser(t, repos, " Awa@Example.com ")

	u, err := repos.User.GetByEmail("AWA@example.COM")
	require.NoError(t, err)
	assert.Equal(t, "awa@example.com", u.Email)

	_, err = repos.User.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepo_UpdateRoleAndList(t *testing.T) {
	repos := setupRepos(t)
	a := seedUser(t, repos, "a@example.com")
	seedUser(t, repos, "b@example.com")

	require.NoError(t, repos.User.UpdateRole(a.ID, user.RoleAdmin))
	assert.ErrorIs(t, repos.User.UpdateRole(999, user.RoleAdmin), gorm.ErrRecordNotFound)

	role := user.RoleAdmin
	admins, err := repos.User.List(&role)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, a.ID, admins[0].ID)
}

// --------------------- Request ---------------------
func TestRequestRepo_UpdateStatusRoundTrip(t *testing.T) {
	repos := setupRepos(t)
	u := seedUser(t, repos, "a@example.com")
	r := seedRequest(t, repos, u.ID, request.StatusNew, base)

	for _, st := range request.StaffStatuses {
		require.NoError(t, repos.Request.UpdateStatus(r.ID, st))

		got, err := repos.Request.GetByID(r.ID)
		require.NoError(t, err)
		assert.Equal(t, st, got.Status)
		assert.Equal(t, r.Description, got.Description)
		assert.Equal(t, r.SiteType, got.SiteType)
		assert.True(t, r.Deadline.Equal(got.Deadline))
		assert.Empty(t, got.PreviewLink)
	}
}

func TestRequestRepo_RollbackDropsApproval(t *testing.T) {
	repos := setupRepos(t)
	u := seedUser(t, repos, "a@example.com")
	r := seedRequest(t, repos, u.ID, request.StatusNew, base)
	require.NoError(t, repos.Request.SetPreviewLink(r.ID, "https://preview.example.com"))
	require.NoError(t, repos.Request.Approve(r.ID, base))

	// staff re-sending the same status keeps the approval
	require.NoError(t, repos.Request.UpdateStatus(r.ID, request.StatusPreviewSent))
	got, _ := repos.Request.GetByID(r.ID)
	require.NotNil(t, got.ApprovedAt)

	require.NoError(t, repos.Request.UpdateStatus(r.ID, request.StatusInProgress))
	require.NoError(t, repos.Request.UpdateStatus(r.ID, request.StatusPreviewSent))
	got, _ = repos.Request.GetByID(r.ID)
	assert.Nil(t, got.ApprovedAt)
	assert.Equal(t, "https://preview.example.com", got.PreviewLink)
	assert.Equal(t, request.CustomerPreviewAvailable, request.Project(&got, base).Status)
}

func TestRequestRepo_UnknownID(t *testing.T) {
	repos := setupRepos(t)

	assert.ErrorIs(t, repos.Request.UpdateStatus(42, request.StatusPaid), request.ErrRequestNotFound)
	assert.ErrorIs(t, repos.Request.SetPreviewLink(42, "https://x"), request.ErrRequestNotFound)
	_, err := repos.Request.GetByID(42)
	assert.ErrorIs(t, err, request.ErrRequestNotFound)
}

func TestRequestRepo_SetPreviewLinkForcesPreviewSent(t *testing.T) {
	repos := setupRepos(t)
	u := seedUser(t, repos, "a@example.com")

	for _, st := range request.StaffStatuses {
		r := seedRequest(t, repos, u.ID, st, base)
		require.NoError(t, repos.Request.SetPreviewLink(r.ID, "https://x"))

		got, err := repos.Request.GetByID(r.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://x", got.PreviewLink)
		assert.Equal(t, request.StatusPreviewSent, got.Status)
	}
}

func TestRequestRepo_Approve(t *testing.T) {
	repos := setupRepos(t)
	u := seedUser(t, repos, "a@example.com")
	r := seedRequest(t, repos, u.ID, request.StatusInProgress, base)

	assert.ErrorIs(t, repos.Request.Approve(r.ID, base), request.ErrApprovalNotAllowed)

	require.NoError(t, repos.Request.SetPreviewLink(r.ID, "https://x"))
	require.NoError(t, repos.Request.Approve(r.ID, base))
	assert.ErrorIs(t, repos.Request.Approve(r.ID, base), request.ErrApprovalNotAllowed)

	got, _ := repos.Request.GetByID(r.ID)
	require.NotNil(t, got.ApprovedAt)

	// a fresh preview resets the approval
	require.NoError(t, repos.Request.SetPreviewLink(r.ID, "https://y"))
	got, _ = repos.Request.GetByID(r.ID)
	assert.Nil(t, got.ApprovedAt)
}

func TestRequestRepo_ListAndCounts(t *testing.T) {
	repos := setupRepos(t)
	u := seedUser(t, repos, "a@example.com")
	seedRequest(t, repos, u.ID, request.StatusNew, base.Add(-48*time.Hour))
	seedRequest(t, repos, u.ID, request.StatusInProgress, base)
	newest := seedRequest(t, repos, u.ID, request.StatusPaid, base.Add(time.Hour))

	all, total, err := repos.Request.List(request.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, newest.ID, all[0].ID)

	st := request.StatusInProgress
	filtered, total, err := repos.Request.List(request.ListFilter{Status: &st})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, request.StatusInProgress, filtered[0].Status)

	page2, _, err := repos.Request.List(request.ListFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page2, 1)

	counts, err := repos.Request.CountByStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[request.StatusNew])
	assert.Equal(t, int64(0), counts[request.StatusCompleted])

	overdue, err := repos.Request.CountOverdue(base)
	require.NoError(t, err)
	assert.Equal(t, int64(1), overdue)

	latest, err := repos.Request.GetLatestByUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, newest.ID, latest.ID)

	none, err := repos.Request.GetLatestByUser(999)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestRequestRepo_MarkPaid(t *testing.T) {
	repos := setupRepos(t)
	u := seedUser(t, repos, "a@example.com")
	r := seedRequest(t, repos, u.ID, request.StatusPreviewSent, base)
	assert.ErrorIs(t, repos.Request.MarkPaid(r.ID, base), request.ErrNotPayable, "no preview link yet")

	require.NoError(t, repos.Request.SetPreviewLink(r.ID, "https://preview.example.com"))
	require.NoError(t, repos.Request.MarkPaid(r.ID, base))
	got, _ := repos.Request.GetByID(r.ID)
	assert.Equal(t, request.StatusPaid, got.Status)
	require.NotNil(t, got.PaidAt)

	assert.ErrorIs(t, repos.Request.MarkPaid(r.ID, base.Add(time.Minute)), request.ErrNotPayable, "already paid")
}

func TestRequestRepo_MarkPaidAfterRollback(t *testing.T) {
	repos := setupRepos(t)
	u := seedUser(t, repos, "a@example.com")
	r := seedRequest(t, repos, u.ID, request.StatusNew, base)
	require.NoError(t, repos.Request.SetPreviewLink(r.ID, "https://preview.example.com"))
	require.NoError(t, repos.Request.UpdateStatus(r.ID, request.StatusInProgress))

	assert.ErrorIs(t, repos.Request.MarkPaid(r.ID, base), request.ErrNotPayable)
	got, _ := repos.Request.GetByID(r.ID)
	assert.Equal(t, request.StatusInProgress, got.Status)
	assert.Nil(t, got.PaidAt)
}

// --------------------- Questionnaire & attachments ---------------------
func TestAttachmentRepo_BindOnlyOwnStaged(t *testing.T) {
	repos := setupRepos(t)
	owner := seedUser(t, repos, "a@example.com")
	other := seedUser(t, repos, "b@example.com")
	r := seedRequest(t, repos, owner.ID, request.StatusNew, base)

	mine := questionnaire.Attachment{UserID: owner.ID, ObjectName: "o1", FileName: "logo.png"}
	theirs := questionnaire.Attachment{UserID: other.ID, ObjectName: "o2", FileName: "x.png"}
	require.NoError(t, repos.Attachment.Create(&mine))
	require.NoError(t, repos.Attachment.Create(&theirs))

	staged, err := repos.Attachment.ListStaged(owner.ID)
	require.NoError(t, err)
	assert.Len(t, staged, 1)

	q := questionnaire.Questionnaire{UserID: owner.ID, RequestID: r.ID, BusinessName: "Awa", SiteType: "basic", HasDomain: "no", References: "https://example.com"}
	require.NoError(t, repos.Questionnaire.Create(&q))

	n, err := repos.Attachment.Bind(owner.ID, []uint{mine.ID, theirs.ID}, q.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	staged, _ = repos.Attachment.ListStaged(owner.ID)
	assert.Empty(t, staged)

	got, err := repos.Questionnaire.GetByRequestID(r.ID)
	require.NoError(t, err)
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, "logo.png", got.Attachments[0].FileName)

	latest, err := repos.Questionnaire.GetLatestByUser(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, q.ID, latest.ID)
}

// --------------------- Payment & contact ---------------------
func TestPaymentRepo_TotalRevenue(t *testing.T) {
	repos := setupRepos(t)

	total, err := repos.Payment.TotalRevenue()
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	require.NoError(t, repos.Payment.Create(&payment.Payment{RequestID: 1, UserID: 1, Package: "basic", Method: payment.MethodWave, Amount: 50000, Currency: "XOF", Reference: "r1"}))
	require.NoError(t, repos.Payment.Create(&payment.Payment{RequestID: 2, UserID: 2, Package: "premium", Method: payment.MethodStripe, Amount: 200000, Currency: "XOF", Reference: "r2"}))

	total, err = repos.Payment.TotalRevenue()
	require.NoError(t, err)
	assert.Equal(t, int64(250000), total)

	mine, err := repos.Payment.ListByUser(1)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestContactRepo(t *testing.T) {
	repos := setupRepos(t)
	i := contact.Inquiry{Name: "Awa", Email: "awa@example.com", Message: "Hello there team", Status: contact.StatusNew}
	require.NoError(t, repos.Contact.Create(&i))

	n, err := repos.Contact.CountByStatus(contact.StatusNew)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repos.Contact.UpdateStatus(i.ID, contact.StatusRead))
	assert.ErrorIs(t, repos.Contact.UpdateStatus(999, contact.StatusRead), gorm.ErrRecordNotFound)

	st := contact.StatusRead
	items, total, err := repos.Contact.List(&st, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Awa", items[0].Name)
}

func TestRepos_ExecTxRollsBack(t *testing.T) {
	repos := setupRepos(t)
	u := seedUser(t, repos, "a@example.com")

	err := repos.ExecTx(func(tx *Repos) error {
		r := request.WebsiteRequest{UserID: u.ID, CustomerName: "Awa", Email: "a@example.com", SiteType: request.SiteBasic, Status: request.StatusNew, SubmittedAt: base, Deadline: base}
		if err := tx.Request.Create(&r); err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})
	assert.ErrorIs(t, err, gorm.ErrInvalidData)

	latest, err := repos.Request.GetLatestByUser(u.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

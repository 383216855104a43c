package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(status StaffStatus, preview string) *WebsiteRequest {
	return &WebsiteRequest{
		ID:          1,
		Status:      status,
		PreviewLink: preview,
		SubmittedAt: now.Add(-10 * time.Hour),
		Deadline:    now.Add(62 * time.Hour),
	}
}

func TestProject_NoRequest(t *testing.T) {
	view := Project(nil, now)
	assert.Equal(t, CustomerFormNotSubmitted, view.Status)
	assert.Empty(t, view.PreviewURL)
	assert.Nil(t, view.HoursRemaining)
}

func TestProject_MappingTable(t *testing.T) {
	approved := now.Add(-time.Hour)
	cases := []struct {
		status   StaffStatus
		preview  string
		approved *time.Time
		want     CustomerStatus
	}{
		{StatusNew, "", nil, CustomerInProgress},
		{StatusInProgress, "", nil, CustomerInProgress},
		{StatusPreviewSent, "https://x", nil, CustomerPreviewAvailable},
		{StatusPreviewSent, "https://x", &approved, CustomerApprovalPending},
		{StatusPaid, "https://x", nil, CustomerPaymentComplete},
		{StatusCompleted, "https://x", nil, CustomerPaymentComplete},
	}
	for _, tc := range cases {
		r := newRequest(tc.status, tc.preview)
		r.ApprovedAt = tc.approved
		assert.Equal(t, tc.want, Project(r, now).Status, "status %s", tc.status)
	}
}

func TestProject_CapsWithoutPreviewLink(t *testing.T) {
	for _, st := range []StaffStatus{StatusPreviewSent, StatusPaid, StatusCompleted} {
		view := Project(newRequest(st, ""), now)
		assert.Equal(t, CustomerInProgress, view.Status, "status %s", st)
		assert.Empty(t, view.PreviewURL)
	}
}

func TestProject_PreviewURLOnlyFromPreviewAvailable(t *testing.T) {
	for _, st := range StaffStatuses {
		view := Project(newRequest(st, "https://x"), now)
		if view.Status.AtLeast(CustomerPreviewAvailable) {
			assert.Equal(t, "https://x", view.PreviewURL)
		} else {
			assert.Empty(t, view.PreviewURL, "status %s", st)
		}
	}
}

func TestProject_Countdown(t *testing.T) {
	view := Project(newRequest(StatusInProgress, ""), now)
	require.NotNil(t, view.HoursRemaining)
	assert.Equal(t, 62, *view.HoursRemaining)

	late := newRequest(StatusNew, "")
	late.Deadline = now.Add(-5 * time.Hour)
	view = Project(late, now)
	require.NotNil(t, view.HoursRemaining)
	assert.Equal(t, 0, *view.HoursRemaining)

	view = Project(newRequest(StatusPreviewSent, "https://x"), now)
	assert.Nil(t, view.HoursRemaining)
}

func TestWebsiteRequest_Overdue(t *testing.T) {
	r := newRequest(StatusInProgress, "")
	assert.False(t, r.Overdue(now))
	assert.True(t, r.Overdue(r.Deadline.Add(time.Minute)))

	r.Status = StatusPreviewSent
	assert.False(t, r.Overdue(r.Deadline.Add(time.Minute)))
}

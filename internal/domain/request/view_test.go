package request

import (
	"testing"
	"time"

	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePreviewLink(t *testing.T) {
	got, err := NormalizePreviewLink("  https://preview.example.com/bakery ")
	require.NoError(t, err)
	assert.Equal(t, "https://preview.example.com/bakery", got)

	_, err = NormalizePreviewLink("   ")
	assert.ErrorIs(t, err, ErrEmptyPreviewLink)

	for _, bad := range []string{"preview.example.com", "ftp://example.com/x", "https://", "javascript:alert(1)"} {
		_, err := NormalizePreviewLink(bad)
		assert.ErrorIs(t, err, ErrInvalidPreviewLink, bad)
	}
}

func TestNewAdminView(t *testing.T) {
	tr := i18n.MustTranslator()
	r := *newRequest(StatusInProgress, "")
	r.Deadline = now.Add(50 * time.Hour)

	v := NewAdminView(r, now, tr, i18n.EN)
	assert.Equal(t, "In progress", v.StatusLabel)
	assert.Equal(t, "2d 2h left", v.TimeRemaining)
	assert.False(t, v.Overdue)
	assert.Equal(t, CustomerInProgress, v.CustomerStatus)

	r.Deadline = now.Add(-time.Minute)
	v = NewAdminView(r, now, tr, i18n.FR)
	assert.Equal(t, "En cours", v.StatusLabel)
	assert.True(t, v.Overdue)
}

func TestNewDashboard_NotSubmitted(t *testing.T) {
	d := NewDashboard(nil, now, i18n.MustTranslator(), i18n.EN)
	assert.Equal(t, CustomerFormNotSubmitted, d.Status)
	assert.Nil(t, d.Request)
	assert.Empty(t, d.Countdown)
	require.Len(t, d.Steps, 5)
	assert.Equal(t, StepActive, d.Steps[0].State)
	assert.False(t, d.CanApprove)
	assert.False(t, d.CanPay)
}

func TestNewDashboard_InProgressCountdown(t *testing.T) {
	r := newRequest(StatusNew, "")
	r.Deadline = now.Add(50 * time.Hour)

	d := NewDashboard(r, now, i18n.MustTranslator(), i18n.EN)
	assert.Equal(t, CustomerInProgress, d.Status)
	require.NotNil(t, d.HoursRemaining)
	assert.Equal(t, 50, *d.HoursRemaining)
	assert.Equal(t, "2 days and 2 hours", d.Countdown)
	require.NotNil(t, d.Request)
	assert.Equal(t, uint(1), d.Request.ID)
	assert.Equal(t, StepComplete, d.Steps[0].State)
	assert.Equal(t, StepActive, d.Steps[1].State)
}

func TestNewDashboard_PreviewActions(t *testing.T) {
	tr := i18n.MustTranslator()
	d := NewDashboard(newRequest(StatusPreviewSent, "https://x"), now, tr, i18n.FR)
	assert.Equal(t, "https://x", d.PreviewURL)
	assert.True(t, d.CanApprove)
	assert.True(t, d.CanPay)
	assert.Equal(t, "Aperçu disponible", d.StatusLabel)

	approved := now
	r := newRequest(StatusPreviewSent, "https://x")
	r.ApprovedAt = &approved
	d = NewDashboard(r, now, tr, i18n.FR)
	assert.False(t, d.CanApprove)
	assert.True(t, d.CanPay)

	d = NewDashboard(newRequest(StatusPaid, "https://x"), now, tr, i18n.FR)
	assert.False(t, d.CanPay)
}

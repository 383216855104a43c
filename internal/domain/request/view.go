package request

import (
	"time"

	"github.com/linskybing/portal-go/pkg/i18n"
)

// NewAdminView renders one console row. Deadline, countdown and customer status
// all come from the stored row and the same clock.
func NewAdminView(r WebsiteRequest, now time.Time, tr *i18n.Translator, lang i18n.Language) AdminView {
	return AdminView{
		ID:             r.ID,
		UserID:         r.UserID,
		CustomerName:   r.CustomerName,
		Email:          r.Email,
		Phone:          r.Phone,
		SiteType:       r.SiteType,
		Status:         r.Status,
		StatusLabel:    tr.Translate(r.Status.LabelKey(), lang),
		Description:    r.Description,
		Domain:         r.Domain,
		WantDomain:     r.WantDomain,
		SocialLinks:    r.SocialLinks,
		PreviewLink:    r.PreviewLink,
		SubmittedAt:    r.SubmittedAt,
		Deadline:       r.Deadline,
		TimeRemaining:  TimeRemaining(r.Deadline, now).Localize(tr, lang),
		Overdue:        r.Overdue(now),
		CustomerStatus: Project(&r, now).Status,
		ApprovedAt:     r.ApprovedAt,
		PaidAt:         r.PaidAt,
	}
}

// NewDashboard renders the customer's dashboard from their latest request, or nil.
func NewDashboard(r *WebsiteRequest, now time.Time, tr *i18n.Translator, lang i18n.Language) Dashboard {
	view := Project(r, now)
	d := Dashboard{
		Status:         view.Status,
		StatusLabel:    tr.Translate(view.Status.LabelKey(), lang),
		PreviewURL:     view.PreviewURL,
		HoursRemaining: view.HoursRemaining,
		Deadline:       view.Deadline,
		Steps:          Tracker(view.Status, tr, lang),
		CanApprove:     view.Status == CustomerPreviewAvailable,
		CanPay:         view.Status == CustomerPreviewAvailable || view.Status == CustomerApprovalPending,
	}
	if view.HoursRemaining != nil {
		d.Countdown = Countdown(*view.HoursRemaining, tr, lang)
	}
	if r != nil {
		d.Request = &Summary{
			ID:          r.ID,
			SiteType:    r.SiteType,
			SubmittedAt: r.SubmittedAt,
			Deadline:    r.Deadline,
			Domain:      r.Domain,
			WantDomain:  r.WantDomain,
		}
	}
	return d
}

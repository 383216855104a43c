package request

import "time"

// CustomerView is what the dashboard shows for a customer's request.
type CustomerView struct {
	Status         CustomerStatus `json:"status"`
	PreviewURL     string         `json:"preview_url,omitempty"`
	HoursRemaining *int           `json:"hours_remaining,omitempty"`
	Deadline       *time.Time     `json:"deadline,omitempty"`
}

// MapStatus is the staff to customer status table.
func MapStatus(r *WebsiteRequest) CustomerStatus {
	if r == nil {
		return CustomerFormNotSubmitted
	}
	switch r.Status {
	case StatusPreviewSent:
		if r.ApprovedAt != nil {
			return CustomerApprovalPending
		}
		return CustomerPreviewAvailable
	case StatusPaid, StatusCompleted:
		return CustomerPaymentComplete
	default:
		return CustomerInProgress
	}
}

// Project derives the customer view. A status at or past preview_available
// is capped to in_progress while no preview link is stored.
func Project(r *WebsiteRequest, now time.Time) CustomerView {
	status := MapStatus(r)
	if r == nil {
		return CustomerView{Status: status}
	}

	if status.AtLeast(CustomerPreviewAvailable) && r.PreviewLink == "" {
		status = CustomerInProgress
	}

	view := CustomerView{Status: status}
	if status.AtLeast(CustomerPreviewAvailable) {
		view.PreviewURL = r.PreviewLink
	}
	if status == CustomerInProgress {
		hours := TimeRemaining(r.Deadline, now).TotalHours()
		deadline := r.Deadline
		view.HoursRemaining = &hours
		view.Deadline = &deadline
	}
	return view
}

package request

import (
	"time"

	"gorm.io/datatypes"
)

type SetStatusInput struct {
	Status string `json:"status" binding:"required" example:"in_progress"`
}

type SetPreviewLinkInput struct {
	PreviewLink string `json:"preview_link" example:"https://preview.example.com/bakery"`
}

type ListFilter struct {
	Status *StaffStatus
	Page   int
	Limit  int
}

// AdminView is one row of the admin console.
type AdminView struct {
	ID             uint              `json:"id"`
	UserID         uint              `json:"user_id"`
	CustomerName   string            `json:"customer_name"`
	Email          string            `json:"email"`
	Phone          *string           `json:"phone,omitempty"`
	SiteType       SiteType          `json:"site_type"`
	Status         StaffStatus       `json:"status"`
	StatusLabel    string            `json:"status_label"`
	Description    string            `json:"description"`
	Domain         string            `json:"domain,omitempty"`
	WantDomain     bool              `json:"want_domain"`
	SocialLinks    datatypes.JSONMap `json:"social_links,omitempty"`
	PreviewLink    string            `json:"preview_link,omitempty"`
	SubmittedAt    time.Time         `json:"submitted_at"`
	Deadline       time.Time         `json:"deadline"`
	TimeRemaining  string            `json:"time_remaining"`
	Overdue        bool              `json:"overdue"`
	CustomerStatus CustomerStatus    `json:"customer_status"`
	ApprovedAt     *time.Time        `json:"approved_at,omitempty"`
	PaidAt         *time.Time        `json:"paid_at,omitempty"`
}

type Stats struct {
	TotalSubmissions int64                 `json:"total_submissions"`
	ByStatus         map[StaffStatus]int64 `json:"by_status"`
	CompletedSites   int64                 `json:"completed_sites"`
	Overdue          int64                 `json:"overdue"`
	RevenueXOF       int64                 `json:"revenue_xof"`
	OpenInquiries    int64                 `json:"open_inquiries"`
}

type Summary struct {
	ID          uint      `json:"id"`
	SiteType    SiteType  `json:"site_type"`
	SubmittedAt time.Time `json:"submitted_at"`
	Deadline    time.Time `json:"deadline"`
	Domain      string    `json:"domain,omitempty"`
	WantDomain  bool      `json:"want_domain"`
}

// Dashboard is the customer's view of their engagement.
type Dashboard struct {
	Status         CustomerStatus `json:"status"`
	StatusLabel    string         `json:"status_label"`
	PreviewURL     string         `json:"preview_url,omitempty"`
	HoursRemaining *int           `json:"hours_remaining,omitempty"`
	Deadline       *time.Time     `json:"deadline,omitempty"`
	Countdown      string         `json:"countdown,omitempty"`
	Steps          []TrackerStep  `json:"steps"`
	Request        *Summary       `json:"request,omitempty"`
	CanApprove     bool           `json:"can_approve"`
	CanPay         bool           `json:"can_pay"`
}

package request

import (
	"time"

	"gorm.io/datatypes"
)

// WebsiteRequest is the single canonical record of a customer's website order.
// Admin list, admin detail and the customer dashboard all read this row.
type WebsiteRequest struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	UserID       uint              `gorm:"not null;index" json:"user_id"`
	CustomerName string            `gorm:"size:100;not null" json:"customer_name"`
	Email        string            `gorm:"size:255;not null" json:"email"`
	Phone        *string           `gorm:"size:30" json:"phone,omitempty"`
	SiteType     SiteType          `gorm:"size:20;not null" json:"site_type"`
	Status       StaffStatus       `gorm:"size:20;not null;default:new;index" json:"status"`
	Description  string            `gorm:"type:text" json:"description"`
	Domain       string            `gorm:"size:255" json:"domain,omitempty"`
	WantDomain   bool              `json:"want_domain"`
	SocialLinks  datatypes.JSONMap `json:"social_links,omitempty"`
	PreviewLink  string            `gorm:"size:2048" json:"preview_link,omitempty"`
	SubmittedAt  time.Time         `gorm:"not null" json:"submitted_at"`
	Deadline     time.Time         `gorm:"not null;index" json:"deadline"`
	ApprovedAt   *time.Time        `json:"approved_at,omitempty"`
	PaidAt       *time.Time        `json:"paid_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func (WebsiteRequest) TableName() string {
	return "website_requests"
}

// Active reports whether the engagement is still open for this customer.
func (r WebsiteRequest) Active() bool {
	return r.Status != StatusCompleted
}

// Overdue is true while the build is still pending past its deadline.
func (r WebsiteRequest) Overdue(now time.Time) bool {
	return (r.Status == StatusNew || r.Status == StatusInProgress) && now.After(r.Deadline)
}

package request

import (
	"fmt"

	"github.com/linskybing/portal-go/pkg/i18n"
)

// StaffStatus is the status staff see and set in the admin console.
type StaffStatus string

const (
	StatusNew         StaffStatus = "new"
	StatusInProgress  StaffStatus = "in_progress"
	StatusPreviewSent StaffStatus = "preview_sent"
	StatusPaid        StaffStatus = "paid"
	StatusCompleted   StaffStatus = "completed"
)

var StaffStatuses = []StaffStatus{StatusNew, StatusInProgress, StatusPreviewSent, StatusPaid, StatusCompleted}

func ParseStaffStatus(s string) (StaffStatus, error) {
	for _, st := range StaffStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// CustomerStatus is the status shown on the customer dashboard.
type CustomerStatus string

const (
	CustomerFormNotSubmitted CustomerStatus = "form_not_submitted"
	CustomerInProgress       CustomerStatus = "in_progress"
	CustomerPreviewAvailable CustomerStatus = "preview_available"
	CustomerApprovalPending  CustomerStatus = "approval_pending"
	CustomerPaymentComplete  CustomerStatus = "payment_complete"
)

// CustomerStatuses is ordered; a status's index is its rank.
var CustomerStatuses = []CustomerStatus{
	CustomerFormNotSubmitted,
	CustomerInProgress,
	CustomerPreviewAvailable,
	CustomerApprovalPending,
	CustomerPaymentComplete,
}

func (s CustomerStatus) Rank() int {
	for i, cs := range CustomerStatuses {
		if cs == s {
			return i
		}
	}
	return -1
}

// AtLeast reports whether s is at or past other in the customer order.
func (s CustomerStatus) AtLeast(other CustomerStatus) bool {
	return s.Rank() >= other.Rank()
}

type SiteType string

const (
	SiteBasic    SiteType = "basic"
	SiteStandard SiteType = "standard"
	SitePremium  SiteType = "premium"
)

var SiteTypes = []SiteType{SiteBasic, SiteStandard, SitePremium}

func ParseSiteType(s string) (SiteType, error) {
	for _, st := range SiteTypes {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown site type %q", s)
}

var staffLabels = map[StaffStatus]i18n.Key{
	StatusNew:         i18n.KeyStatusNew,
	StatusInProgress:  i18n.KeyStatusInProgress,
	StatusPreviewSent: i18n.KeyStatusPreviewSent,
	StatusPaid:        i18n.KeyStatusPaid,
	StatusCompleted:   i18n.KeyStatusCompleted,
}

var customerLabels = map[CustomerStatus]i18n.Key{
	CustomerFormNotSubmitted: i18n.KeyProjectFormNotSubmitted,
	CustomerInProgress:       i18n.KeyProjectInProgress,
	CustomerPreviewAvailable: i18n.KeyProjectPreviewAvailable,
	CustomerApprovalPending:  i18n.KeyProjectApprovalPending,
	CustomerPaymentComplete:  i18n.KeyProjectPaymentComplete,
}

func (s StaffStatus) LabelKey() i18n.Key {
	if k, ok := staffLabels[s]; ok {
		return k
	}
	return i18n.Key(s)
}

func (s CustomerStatus) LabelKey() i18n.Key {
	if k, ok := customerLabels[s]; ok {
		return k
	}
	return i18n.Key(s)
}

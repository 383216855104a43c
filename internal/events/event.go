// Package events fans request changes out to connected websocket clients.
package events

import (
	"time"

	"github.com/linskybing/portal-go/internal/domain/request"
)

type Type string

const (
	RequestCreated       Type = "request.created"
	RequestStatusChanged Type = "request.status_changed"
	RequestPreviewSent   Type = "request.preview_sent"
	RequestApproved      Type = "request.approved"
	RequestPaid          Type = "request.paid"
)

type Event struct {
	Type           Type                   `json:"type"`
	RequestID      uint                   `json:"request_id"`
	UserID         uint                   `json:"-"`
	Status         request.StaffStatus    `json:"status"`
	CustomerStatus request.CustomerStatus `json:"customer_status"`
	PreviewLink    string                 `json:"preview_link,omitempty"`
	At             time.Time              `json:"at"`
}

// FromRequest builds an event describing the stored state of r.
func FromRequest(t Type, r request.WebsiteRequest, at time.Time) Event {
	view := request.Project(&r, at)
	return Event{
		Type:           t,
		RequestID:      r.ID,
		UserID:         r.UserID,
		Status:         r.Status,
		CustomerStatus: view.Status,
		PreviewLink:    view.PreviewURL,
		At:             at,
	}
}

// Publisher accepts events after the write they describe has committed.
type Publisher interface {
	Publish(e Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(Event) {}

// Nop discards every event.
var Nop Publisher = nopPublisher{}

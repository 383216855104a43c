package questionnaire

import (
	"strings"
	"time"

	"github.com/linskybing/portal-go/internal/domain/request"
	"gorm.io/datatypes"
)

// DomainFeeXOF is the yearly domain registration price quoted to customers.
const DomainFeeXOF = 20000

type SubmitInput struct {
	BusinessName        string `json:"business_name" binding:"required,min=2,max=200" example:"Boulangerie Awa"`
	BusinessDescription string `json:"business_description" binding:"required,min=10" example:"Artisan bakery in Dakar"`
	SiteType            string `json:"site_type" binding:"required,oneof=basic standard premium" example:"basic"`
	Description         string `json:"description" binding:"required,min=10" example:"Need a bakery site with gallery"`
	HasDomain           string `json:"has_domain" binding:"required,oneof=yes no" example:"no"`
	Domain              string `json:"domain" binding:"required_if=HasDomain yes,max=255" example:"boulangerie-awa.sn"`
	WantDomain          bool   `json:"want_domain"`
	Facebook            string `json:"facebook" binding:"max=255"`
	Instagram           string `json:"instagram" binding:"max=255"`
	Twitter             string `json:"twitter" binding:"max=255"`
	LinkedIn            string `json:"linkedin" binding:"max=255"`
	WhatsApp            string `json:"whatsapp" binding:"max=50"`
	References          string `json:"references" binding:"required,min=5" example:"https://example.com"`
	AttachmentIDs       []uint `json:"attachment_ids"`
}

// Normalize trims free text and drops fields that do not apply.
func (in *SubmitInput) Normalize() {
	for _, f := range []*string{
		&in.BusinessName, &in.BusinessDescription, &in.SiteType, &in.Description,
		&in.HasDomain, &in.Domain, &in.Facebook, &in.Instagram, &in.Twitter,
		&in.LinkedIn, &in.WhatsApp, &in.References,
	} {
		*f = strings.TrimSpace(*f)
	}
	in.HasDomain = strings.ToLower(in.HasDomain)
	if in.HasDomain == "yes" {
		in.WantDomain = false
	} else {
		in.Domain = ""
	}
}

func (in SubmitInput) SocialLinks() datatypes.JSONMap {
	links := datatypes.JSONMap{}
	add := func(k, v string) {
		if v != "" {
			links[k] = v
		}
	}
	add("facebook", in.Facebook)
	add("instagram", in.Instagram)
	add("twitter", in.Twitter)
	add("linkedin", in.LinkedIn)
	add("whatsapp", in.WhatsApp)
	return links
}

type Receipt struct {
	RequestID      uint                   `json:"request_id"`
	Deadline       time.Time              `json:"deadline"`
	CustomerStatus request.CustomerStatus `json:"customer_status"`
	DomainFeeXOF   int64                  `json:"domain_fee_xof,omitempty"`
	DomainFeeNote  string                 `json:"domain_fee_note,omitempty"`
	Message        string                 `json:"message"`
}

type Status struct {
	Submitted     bool           `json:"submitted"`
	Questionnaire *Questionnaire `json:"questionnaire,omitempty"`
}

// Export is the staff download of an intake with time limited file links.
type Export struct {
	Questionnaire Questionnaire     `json:"questionnaire"`
	Files         []ExportedFile    `json:"files"`
	Request       request.AdminView `json:"request"`
}

type ExportedFile struct {
	ID          uint   `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	URL         string `json:"url"`
}

package questionnaire

import "time"

// Questionnaire is the intake record of one engagement.
type Questionnaire struct {
	ID                  uint         `gorm:"primaryKey" json:"id"`
	UserID              uint         `gorm:"not null;index" json:"user_id"`
	RequestID           uint         `gorm:"not null;uniqueIndex" json:"request_id"`
	BusinessName        string       `gorm:"size:200;not null" json:"business_name"`
	BusinessDescription string       `gorm:"type:text" json:"business_description"`
	SiteType            string       `gorm:"size:20;not null" json:"site_type"`
	Description         string       `gorm:"type:text" json:"description"`
	HasDomain           string       `gorm:"size:3;not null" json:"has_domain"`
	Domain              string       `gorm:"size:255" json:"domain,omitempty"`
	WantDomain          bool         `json:"want_domain"`
	Facebook            string       `gorm:"size:255" json:"facebook,omitempty"`
	Instagram           string       `gorm:"size:255" json:"instagram,omitempty"`
	Twitter             string       `gorm:"size:255" json:"twitter,omitempty"`
	LinkedIn            string       `gorm:"column:linkedin;size:255" json:"linkedin,omitempty"`
	WhatsApp            string       `gorm:"column:whatsapp;size:50" json:"whatsapp,omitempty"`
	References          string       `gorm:"column:reference_sites;type:text" json:"references"`
	Attachments         []Attachment `gorm:"foreignKey:QuestionnaireID" json:"attachments,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
}

// Attachment is a file uploaded for the questionnaire. It stays staged
// (QuestionnaireID nil) until the questionnaire is submitted.
type Attachment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	QuestionnaireID *uint     `gorm:"index" json:"questionnaire_id,omitempty"`
	ObjectName      string    `gorm:"size:512;not null" json:"-"`
	FileName        string    `gorm:"size:255;not null" json:"file_name"`
	ContentType     string    `gorm:"size:100" json:"content_type"`
	Size            int64     `json:"size"`
	CreatedAt       time.Time `json:"created_at"`
}

func (a Attachment) Staged() bool {
	return a.QuestionnaireID == nil
}

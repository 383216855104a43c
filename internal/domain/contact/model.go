package contact

import "time"

type Status string

const (
	StatusNew     Status = "new"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
)

// Inquiry is a message left through the public contact form.
type Inquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    Status    `gorm:"size:20;not null;default:new;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Inquiry) TableName() string {
	return "contact_inquiries"
}

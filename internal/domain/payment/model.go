package payment

import "time"

type Method string

const (
	MethodStripe Method = "stripe"
	MethodOrange Method = "orange"
	MethodWave   Method = "wave"
)

var Methods = []Method{MethodStripe, MethodOrange, MethodWave}

const Currency = "XOF"

type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RequestID uint      `gorm:"not null;index" json:"request_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Package   string    `gorm:"size:20;not null" json:"package"`
	Method    Method    `gorm:"size:20;not null" json:"method"`
	Amount    int64     `gorm:"not null" json:"amount"`
	Currency  string    `gorm:"size:3;not null;default:XOF" json:"currency"`
	Reference string    `gorm:"size:100;not null" json:"reference"`
	CreatedAt time.Time `json:"created_at"`
}

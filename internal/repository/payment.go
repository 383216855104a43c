package repository

import (
	"github.com/linskybing/portal-go/internal/domain/payment"
	"gorm.io/gorm"
)

type PaymentRepo interface {
	Create(p *payment.Payment) error
	ListByUser(userID uint) ([]payment.Payment, error)
	TotalRevenue() (int64, error)
	WithTx(tx *gorm.DB) PaymentRepo
}

type DBPaymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *DBPaymentRepo {
	return &DBPaymentRepo{db: db}
}

func (r *DBPaymentRepo) Create(p *payment.Payment) error {
	return r.db.Create(p).Error
}

func (r *DBPaymentRepo) ListByUser(userID uint) ([]payment.Payment, error) {
	var items []payment.Payment
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&items).Error
	return items, err
}

func (r *DBPaymentRepo) TotalRevenue() (int64, error) {
	var total int64
	err := r.db.Model(&payment.Payment{}).Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

func (r *DBPaymentRepo) WithTx(tx *gorm.DB) PaymentRepo {
	if tx == nil {
		return r
	}
	return &DBPaymentRepo{db: tx}
}

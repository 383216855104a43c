package repository

import (
	"github.com/linskybing/portal-go/internal/domain/contact"
	"gorm.io/gorm"
)

type ContactRepo interface {
	Create(i *contact.Inquiry) error
	List(status *contact.Status, page, limit int) ([]contact.Inquiry, int64, error)
	UpdateStatus(id uint, status contact.Status) error
	CountByStatus(status contact.Status) (int64, error)
	WithTx(tx *gorm.DB) ContactRepo
}

type DBContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *DBContactRepo {
	return &DBContactRepo{db: db}
}

func (r *DBContactRepo) Create(i *contact.Inquiry) error {
	return r.db.Create(i).Error
}

func (r *DBContactRepo) List(status *contact.Status, page, limit int) ([]contact.Inquiry, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	q := r.db.Model(&contact.Inquiry{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []contact.Inquiry
	err := q.Order("created_at desc, id desc").Offset((page - 1) * limit).Limit(limit).Find(&items).Error
	return items, total, err
}

func (r *DBContactRepo) UpdateStatus(id uint, status contact.Status) error {
	res := r.db.Model(&contact.Inquiry{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBContactRepo) CountByStatus(status contact.Status) (int64, error) {
	var n int64
	err := r.db.Model(&contact.Inquiry{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *DBContactRepo) WithTx(tx *gorm.DB) ContactRepo {
	if tx == nil {
		return r
	}
	return &DBContactRepo{db: tx}
}

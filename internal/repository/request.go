package repository

import (
	"errors"
	"time"

	"github.com/linskybing/portal-go/internal/domain/request"
	"gorm.io/gorm"
)

type RequestRepo interface {
	Create(r *request.WebsiteRequest) error
	GetByID(id uint) (request.WebsiteRequest, error)
	GetLatestByUser(userID uint) (*request.WebsiteRequest, error)
	List(filter request.ListFilter) ([]request.WebsiteRequest, int64, error)
	UpdateStatus(id uint, status request.StaffStatus) error
	SetPreviewLink(id uint, link string) error
	Approve(id uint, at time.Time) error
	MarkPaid(id uint, at time.Time) error
	CountByStatus() (map[request.StaffStatus]int64, error)
	CountOverdue(now time.Time) (int64, error)
	WithTx(tx *gorm.DB) RequestRepo
}

type DBRequestRepo struct {
	db *gorm.DB
}

func NewRequestRepo(db *gorm.DB) *DBRequestRepo {
	return &DBRequestRepo{db: db}
}

func (r *DBRequestRepo) Create(req *request.WebsiteRequest) error {
	return r.db.Create(req).Error
}

func (r *DBRequestRepo) GetByID(id uint) (request.WebsiteRequest, error) {
	var req request.WebsiteRequest
	err := r.db.First(&req, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return req, request.ErrRequestNotFound
	}
	return req, err
}

// GetLatestByUser returns nil without error when the customer never submitted.
func (r *DBRequestRepo) GetLatestByUser(userID uint) (*request.WebsiteRequest, error) {
	var req request.WebsiteRequest
	err := r.db.Where("user_id = ?", userID).Order("submitted_at desc, id desc").First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *DBRequestRepo) List(filter request.ListFilter) ([]request.WebsiteRequest, int64, error) {
	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	q := r.db.Model(&request.WebsiteRequest{})
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reqs []request.WebsiteRequest
	err := q.Order("submitted_at desc, id desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&reqs).Error
	return reqs, total, err
}

// UpdateStatus replaces the status in one statement. Moving back before the preview
// (new or in_progress) also drops the customer's approval, so the next preview needs a fresh one.
func (r *DBRequestRepo) UpdateStatus(id uint, status request.StaffStatus) error {
	q := r.db.Model(&request.WebsiteRequest{}).Where("id = ?", id)
	var res *gorm.DB
	switch status {
	case request.StatusNew, request.StatusInProgress:
		res = q.Updates(map[string]any{"status": status, "approved_at": nil})
	default:
		res = q.Update("status", status)
	}
	return affected(res)
}

// SetPreviewLink stores the link and moves the request to preview_sent in one statement.
// A new link clears any earlier customer approval.
func (r *DBRequestRepo) SetPreviewLink(id uint, link string) error {
	res := r.db.Model(&request.WebsiteRequest{}).Where("id = ?", id).Updates(map[string]any{
		"preview_link": link,
		"status":       request.StatusPreviewSent,
		"approved_at":  nil,
	})
	return affected(res)
}

func (r *DBRequestRepo) Approve(id uint, at time.Time) error {
	res := r.db.Model(&request.WebsiteRequest{}).
		Where("id = ? AND status = ? AND preview_link <> '' AND approved_at IS NULL", id, request.StatusPreviewSent).
		Update("approved_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return request.ErrApprovalNotAllowed
	}
	return nil
}

// MarkPaid only moves a request that still shows a preview; anything else is ErrNotPayable.
func (r *DBRequestRepo) MarkPaid(id uint, at time.Time) error {
	res := r.db.Model(&request.WebsiteRequest{}).
		Where("id = ? AND status = ? AND preview_link <> ''", id, request.StatusPreviewSent).
		Updates(map[string]any{
			"status":  request.StatusPaid,
			"paid_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return request.ErrNotPayable
	}
	return nil
}

func (r *DBRequestRepo) CountByStatus() (map[request.StaffStatus]int64, error) {
	var rows []struct {
		Status request.StaffStatus
		Count  int64
	}
	err := r.db.Model(&request.WebsiteRequest{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[request.StaffStatus]int64, len(request.StaffStatuses))
	for _, st := range request.StaffStatuses {
		counts[st] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *DBRequestRepo) CountOverdue(now time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&request.WebsiteRequest{}).
		Where("status IN ? AND deadline < ?", []request.StaffStatus{request.StatusNew, request.StatusInProgress}, now).
		Count(&n).Error
	return n, err
}

func (r *DBRequestRepo) WithTx(tx *gorm.DB) RequestRepo {
	if tx == nil {
		return r
	}
	return &DBRequestRepo{db: tx}
}

func affected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return request.ErrRequestNotFound
	}
	return nil
}

package repository

import (
	"github.com/linskybing/portal-go/internal/domain/questionnaire"
	"gorm.io/gorm"
)

type AttachmentRepo interface {
	Create(a *questionnaire.Attachment) error
	GetByID(id uint) (questionnaire.Attachment, error)
	ListStaged(userID uint) ([]questionnaire.Attachment, error)
	Delete(id uint) error
	Bind(userID uint, ids []uint, questionnaireID uint) (int64, error)
	WithTx(tx *gorm.DB) AttachmentRepo
}

type DBAttachmentRepo struct {
	db *gorm.DB
}

func NewAttachmentRepo(db *gorm.DB) *DBAttachmentRepo {
	return &DBAttachmentRepo{db: db}
}

func (r *DBAttachmentRepo) Create(a *questionnaire.Attachment) error {
	return r.db.Create(a).Error
}

func (r *DBAttachmentRepo) GetByID(id uint) (questionnaire.Attachment, error) {
	var a questionnaire.Attachment
	err := r.db.First(&a, id).Error
	return a, err
}

func (r *DBAttachmentRepo) ListStaged(userID uint) ([]questionnaire.Attachment, error) {
	var items []questionnaire.Attachment
	err := r.db.Where("user_id = ? AND questionnaire_id IS NULL", userID).Order("id asc").Find(&items).Error
	return items, err
}

func (r *DBAttachmentRepo) Delete(id uint) error {
	return r.db.Delete(&questionnaire.Attachment{}, id).Error
}

// Bind attaches the caller's staged files to a submitted questionnaire.
func (r *DBAttachmentRepo) Bind(userID uint, ids []uint, questionnaireID uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.Model(&questionnaire.Attachment{}).
		Where("user_id = ? AND id IN ? AND questionnaire_id IS NULL", userID, ids).
		Update("questionnaire_id", questionnaireID)
	return res.RowsAffected, res.Error
}

func (r *DBAttachmentRepo) WithTx(tx *gorm.DB) AttachmentRepo {
	if tx == nil {
		return r
	}
	return &DBAttachmentRepo{db: tx}
}

package repository

import (
	"errors"

	"github.com/linskybing/portal-go/internal/domain/questionnaire"
	"gorm.io/gorm"
)

type QuestionnaireRepo interface {
	Create(q *questionnaire.Questionnaire) error
	GetByRequestID(requestID uint) (questionnaire.Questionnaire, error)
	GetLatestByUser(userID uint) (*questionnaire.Questionnaire, error)
	WithTx(tx *gorm.DB) QuestionnaireRepo
}

type DBQuestionnaireRepo struct {
	db *gorm.DB
}

func NewQuestionnaireRepo(db *gorm.DB) *DBQuestionnaireRepo {
	return &DBQuestionnaireRepo{db: db}
}

func (r *DBQuestionnaireRepo) Create(q *questionnaire.Questionnaire) error {
	return r.db.Omit("Attachments").Create(q).Error
}

func (r *DBQuestionnaireRepo) GetByRequestID(requestID uint) (questionnaire.Questionnaire, error) {
	var q questionnaire.Questionnaire
	err := r.db.Preload("Attachments").Where("request_id = ?", requestID).First(&q).Error
	return q, err
}

func (r *DBQuestionnaireRepo) GetLatestByUser(userID uint) (*questionnaire.Questionnaire, error) {
	var q questionnaire.Questionnaire
	err := r.db.Preload("Attachments").Where("user_id = ?", userID).Order("created_at desc, id desc").First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *DBQuestionnaireRepo) WithTx(tx *gorm.DB) QuestionnaireRepo {
	if tx == nil {
		return r
	}
	return &DBQuestionnaireRepo{db: tx}
}

package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User          UserRepo
	Request       RequestRepo
	Questionnaire QuestionnaireRepo
	Attachment    AttachmentRepo
	Payment       PaymentRepo
	Contact       ContactRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:          NewUserRepo(db),
		Request:       NewRequestRepo(db),
		Questionnaire: NewQuestionnaireRepo(db),
		Attachment:    NewAttachmentRepo(db),
		Payment:       NewPaymentRepo(db),
		Contact:       NewContactRepo(db),
		db:            db,
	}
}

func (r *Repos) DB() *gorm.DB {
	return r.db
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:          r.User.WithTx(tx),
		Request:       r.Request.WithTx(tx),
		Questionnaire: r.Questionnaire.WithTx(tx),
		Attachment:    r.Attachment.WithTx(tx),
		Payment:       r.Payment.WithTx(tx),
		Contact:       r.Contact.WithTx(tx),
		db:            tx,
	}
}

// ExecTx runs fn against repositories bound to one transaction.
// Repos built without a database (tests with mocks) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

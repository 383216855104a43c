package repository

import (
	"strings"
	"time"

	"github.com/linskybing/portal-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(u *user.User) error
	GetByID(id uint) (user.User, error)
	GetByEmail(email string) (user.User, error)
	Save(u *user.User) error
	UpdateLastLogin(id uint, at time.Time) error
	UpdateRole(id uint, role user.Role) error
	List(role *user.Role) ([]user.User, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) Create(u *user.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.Create(u).Error
}

func (r *DBUserRepo) GetByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&u).Error
	return u, err
}

func (r *DBUserRepo) Save(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) UpdateLastLogin(id uint, at time.Time) error {
	return r.db.Model(&user.User{}).Where("id = ?", id).Update("last_login", at).Error
}

func (r *DBUserRepo) UpdateRole(id uint, role user.Role) error {
	res := r.db.Model(&user.User{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBUserRepo) List(role *user.Role) ([]user.User, error) {
	var users []user.User
	q := r.db.Order("created_at desc")
	if role != nil {
		q = q.Where("role = ?", *role)
	}
	err := q.Find(&users).Error
	return users, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}

package repository

import (
	"github.com/linskybing/litreview-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	ListUsersByIDs(ids []uint) ([]user.User, error)
	SaveUser(u *user.User) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) ListUsersByIDs(ids []uint) ([]user.User, error) {
	users := []user.User{}
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Where("u_id IN ?", ids).Order("username ASC").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}

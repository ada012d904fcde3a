package repository

import (
	"github.com/linskybing/litreview-go/internal/domain/social"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepo interface {
	ListFollowedIDs(followerID uint) ([]uint, error)
	ListFollowerIDs(followedID uint) ([]uint, error)
	FollowExists(followerID, followedID uint) (bool, error)
	// CreateFollow reports false when the edge already existed.
	CreateFollow(f *social.Follow) (bool, error)
	DeleteFollow(followerID, followedID uint) error
	WithTx(tx *gorm.DB) FollowRepo
}

type DBFollowRepo struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) *DBFollowRepo {
	return &DBFollowRepo{
		db: db,
	}
}

func (r *DBFollowRepo) ListFollowedIDs(followerID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.Model(&social.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("followed_id", &ids).Error
	return ids, err
}

func (r *DBFollowRepo) ListFollowerIDs(followedID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.Model(&social.Follow{}).
		Where("followed_id = ?", followedID).
		Pluck("follower_id", &ids).Error
	return ids, err
}

func (r *DBFollowRepo) FollowExists(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.db.Model(&social.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBFollowRepo) CreateFollow(f *social.Follow) (bool, error) {
	res := r.db.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(f)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DBFollowRepo) DeleteFollow(followerID, followedID uint) error {
	return r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&social.Follow{}).Error
}

func (r *DBFollowRepo) WithTx(tx *gorm.DB) FollowRepo {
	if tx == nil {
		return r
	}
	return &DBFollowRepo{
		db: tx,
	}
}

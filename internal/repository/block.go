package repository

import (
	"github.com/linskybing/litreview-go/internal/domain/social"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlockRepo interface {
	BlockExists(blockerID, blockedID uint) (bool, error)
	ListBlockedIDs(blockerID uint) ([]uint, error)
	// GetOrCreateBlock inserts the edge unless it exists and loads the stored row into b.
	GetOrCreateBlock(b *social.Block) error
	DeleteBlock(blockerID, blockedID uint) error
	WithTx(tx *gorm.DB) BlockRepo
}

type DBBlockRepo struct {
	db *gorm.DB
}

func NewBlockRepo(db *gorm.DB) *DBBlockRepo {
	return &DBBlockRepo{
		db: db,
	}
}

func (r *DBBlockRepo) BlockExists(blockerID, blockedID uint) (bool, error) {
	var count int64
	err := r.db.Model(&social.Block{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBBlockRepo) ListBlockedIDs(blockerID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.Model(&social.Block{}).
		Where("blocker_id = ?", blockerID).
		Pluck("blocked_id", &ids).Error
	return ids, err
}

func (r *DBBlockRepo) GetOrCreateBlock(b *social.Block) error {
	if err := r.db.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(b).Error; err != nil {
		return err
	}
	var stored social.Block
	if err := r.db.Where("blocker_id = ? AND blocked_id = ?", b.BlockerID, b.BlockedID).
		First(&stored).Error; err != nil {
		return err
	}
	*b = stored
	return nil
}

func (r *DBBlockRepo) DeleteBlock(blockerID, blockedID uint) error {
	return r.db.Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&social.Block{}).Error
}

func (r *DBBlockRepo) WithTx(tx *gorm.DB) BlockRepo {
	if tx == nil {
		return r
	}
	return &DBBlockRepo{
		db: tx,
	}
}

package repository

import (
	"time"

	"github.com/linskybing/litreview-go/internal/domain/audit"
	"gorm.io/gorm"
)

// AuditFilter narrows an actor's trail. Zero values mean "any".
type AuditFilter struct {
	ResourceType string
	ResourceID   string
	Since        *time.Time
	Limit        int
}

type AuditRepo interface {
	ListAuditLogsByUser(userID uint, filter AuditFilter) ([]audit.AuditLog, error)
	CreateAuditLog(entry *audit.AuditLog) error
	PurgeAuditLogsBefore(cutoff time.Time) (int64, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{
		db: db,
	}
}

func (r *DBAuditRepo) ListAuditLogsByUser(userID uint, filter AuditFilter) ([]audit.AuditLog, error) {
	logs := []audit.AuditLog{}
	query := r.db.Where("user_id = ?", userID)

	if filter.ResourceType != "" {
		query = query.Where("resource_type = ?", filter.ResourceType)
	}
	if filter.ResourceID != "" {
		query = query.Where("resource_id = ?", filter.ResourceID)
	}
	if filter.Since != nil {
		query = query.Where("created_at >= ?", *filter.Since)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	err := query.Order("created_at DESC").Order("id DESC").Find(&logs).Error
	return logs, err
}

func (r *DBAuditRepo) CreateAuditLog(entry *audit.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) PurgeAuditLogsBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&audit.AuditLog{})
	return res.RowsAffected, res.Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{
		db: tx,
	}
}

package application

import (
	"time"

	"github.com/linskybing/litreview-go/internal/domain/audit"
	"github.com/linskybing/litreview-go/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) ListMyAuditLogs(userID uint, filter repository.AuditFilter) ([]audit.AuditLog, error) {
	return s.Repos.Audit.ListAuditLogsByUser(userID, filter)
}

// CleanupOldLogs drops entries older than the retention window and returns how many were removed.
func (s *AuditService) CleanupOldLogs(days int) (int64, error) {
	if days <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	return s.Repos.Audit.PurgeAuditLogsBefore(cutoff)
}

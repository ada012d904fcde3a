package cron

import (
	"context"
	"log"
	"time"

	"github.com/linskybing/litreview-go/internal/application"
)

var cleanupInterval = 24 * time.Hour

// StartCleanupTask purges audit entries older than retentionDays once at
// startup and then on every interval until ctx is done.
func StartCleanupTask(ctx context.Context, auditService *application.AuditService, retentionDays int) {
	if retentionDays <= 0 {
		log.Println("Audit log cleanup disabled")
		return
	}

	interval := cleanupInterval
	go func() {
		log.Printf("Starting background cleanup task (retention: %d days)", retentionDays)
		runCleanup(auditService, retentionDays)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("Audit log cleanup stopped")
				return
			case <-ticker.C:
				runCleanup(auditService, retentionDays)
			}
		}
	}()
}

func runCleanup(auditService *application.AuditService, retentionDays int) {
	n, err := auditService.CleanupOldLogs(retentionDays)
	if err != nil {
		log.Printf("Failed to cleanup old audit logs: %v", err)
		return
	}
	log.Printf("Audit log cleanup removed %d entries", n)
}

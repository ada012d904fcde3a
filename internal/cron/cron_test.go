package cron

import (
	"context"
	"testing"
	"time"

	"github.com/linskybing/litreview-go/internal/application"
	"github.com/linskybing/litreview-go/internal/domain/audit"
	"github.com/linskybing/litreview-go/internal/repository"
	"github.com/linskybing/litreview-go/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartCleanupTask(t *testing.T) {
	gormDB := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(gormDB)
	svc := application.NewAuditService(repos)

	old := audit.AuditLog{UserID: 1, Action: "create", ResourceType: "ticket", CreatedAt: time.Now().AddDate(0, 0, -10)}
	require.NoError(t, repos.Audit.CreateAuditLog(&old))
	require.NoError(t, repos.Audit.CreateAuditLog(&audit.AuditLog{UserID: 1, Action: "update", ResourceType: "ticket"}))

	oldInterval := cleanupInterval
	cleanupInterval = 10 * time.Millisecond
	defer func() { cleanupInterval = oldInterval }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartCleanupTask(ctx, svc, 7)

	assert.Eventually(t, func() bool {
		logs, err := repos.Audit.ListAuditLogsByUser(1, repository.AuditFilter{})
		return err == nil && len(logs) == 1
	}, time.Second, 10*time.Millisecond)
}

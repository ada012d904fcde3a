package utils

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/litreview-go/internal/domain/audit"
	"github.com/linskybing/litreview-go/internal/repository"
	"gorm.io/datatypes"
)

const (
	AuditActionCreate   = "create"
	AuditActionUpdate   = "update"
	AuditActionDelete   = "delete"
	AuditActionFollow   = "follow"
	AuditActionUnfollow = "unfollow"
	AuditActionBlock    = "block"
	AuditActionUnblock  = "unblock"
)

// LogAuditWithConsole records the caller's mutation in the background. Request
// data is read before the goroutine starts because gin recycles the context.
var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repo repository.AuditRepo) {
	userID, _ := GetUserIDFromContext(c)
	ip := c.ClientIP()
	ua := c.GetHeader("User-Agent")

	go func() {
		if err := LogAudit(userID, ip, ua, action, resourceType, resourceID, oldData, newData, msg, repo); err != nil {
			log.Printf("[LogAudit] error: %v", err)
		}
	}()
}

var LogAudit = func(
	userID uint,
	ip string,
	ua string,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repo repository.AuditRepo,
) error {
	entry := &audit.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      toJSON(before),
		NewData:      toJSON(after),
		IPAddress:    ip,
		UserAgent:    ua,
		Description:  description,
	}
	return repo.CreateAuditLog(entry)
}

func toJSON(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("Audit marshal error: %v", err)
		return nil
	}
	return datatypes.JSON(raw)
}

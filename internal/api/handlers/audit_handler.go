package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/litreview-go/internal/application"
	"github.com/linskybing/litreview-go/internal/repository"
	"github.com/linskybing/litreview-go/pkg/response"
)

const maxAuditPageSize = 500

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary My audit trail
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param resource_type query string false "ticket, review or user"
// @Param resource_id query string false "Resource ID"
// @Param since query string false "RFC3339 lower bound"
// @Param limit query int false "Max entries (default 100)"
// @Success 200 {array} audit.AuditLog
// @Failure 400 {object} response.ErrorResponse "Invalid query"
// @Router /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	filter := repository.AuditFilter{
		ResourceType: c.Query("resource_type"),
		ResourceID:   c.Query("resource_id"),
		Limit:        100,
	}
	if s := c.Query("since"); s != "" {
		since, err := time.Parse(time.RFC3339, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "since must be an RFC3339 timestamp"})
			return
		}
		filter.Since = &since
	}
	if l := c.Query("limit"); l != "" {
		limit, err := strconv.Atoi(l)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		filter.Limit = min(limit, maxAuditPageSize)
	}

	logs, err := h.svc.ListMyAuditLogs(uid, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

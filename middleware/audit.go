package middleware

import (
	"time"

	"tripdesk/models"
	"tripdesk/services/audit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditMiddleware records every mutating request after the handler runs.
// Reads are skipped to keep the log focused on changes.
func AuditMiddleware(svc audit.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		switch c.Request.Method {
		case "POST", "PUT", "PATCH", "DELETE":
		default:
			return
		}

		svc.Record(models.AuditEntry{
			ID:        uuid.New().String(),
			ActorID:   c.GetString(CtxUserID),
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			ClientIP:  getClientIP(c),
			LatencyMS: time.Since(start).Milliseconds(),
			CreatedAt: time.Now(),
		})
	}
}

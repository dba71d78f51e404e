package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"aevia-legacy/internal/core/domain"
	"aevia-legacy/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that logs successful write operations.
// Routes are matched on their registered pattern, so :id is the legacy ID.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		action, resourceType := mapPathToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Subject:      c.GetString(CtxSubject),
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.Param("id"),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(route, method string) (domain.AuditAction, string) {
	switch {
	case route == "/api/v1/legacies" && method == http.MethodPost:
		return domain.AuditActionCreateLegacy, "legacy"
	case route == "/api/v1/legacies/:id/signature" && method == http.MethodPut:
		return domain.AuditActionSetSignature, "legacy"
	case route == "/api/v1/legacies/:id/execute" && method == http.MethodPost:
		return domain.AuditActionExecute, "legacy"
	case route == "/api/v1/legacies/:id/stake" && method == http.MethodPost:
		return domain.AuditActionStake, "investment_wallet"
	case route == "/api/v1/legacies/:id/claim" && method == http.MethodPost:
		return domain.AuditActionClaim, "investment_wallet"
	case route == "/api/v1/legacies/:id/withdraw" && method == http.MethodPost:
		return domain.AuditActionWithdraw, "investment_wallet"
	case route == "/api/v1/contracts" && method == http.MethodPost:
		return domain.AuditActionCreateContract, "contract"
	}
	return "", ""
}

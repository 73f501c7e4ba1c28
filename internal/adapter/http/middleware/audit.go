package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"chatmint-studio/internal/core/domain"
	"chatmint-studio/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxAuditResourceID lets a handler name the resource it created, e.g. the
// new asset's ipId.
const CtxAuditResourceID = "audit_resource_id"

// AuditLog creates an audit middleware that logs successful write operations.
// It maps the matched route to an audit action.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		resourceID := c.GetString(CtxAuditResourceID)
		if resourceID == "" {
			resourceID = c.Param("id")
		}
		if resourceID == "" {
			resourceID = c.Param("address")
		}

		var wallet string
		if w, ok := Wallet(c); ok {
			wallet = w.String()
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Wallet:       wallet,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapRouteToAction(route, method string) (domain.AuditAction, string) {
	switch {
	case route == "/api/v1/wallet/verify" && method == http.MethodPost:
		return domain.AuditActionWalletLogin, "session"
	case route == "/api/v1/registrations" && method == http.MethodPost:
		return domain.AuditActionRegisterAsset, "asset"
	case route == "/api/v1/gallery/:id" && method == http.MethodDelete:
		return domain.AuditActionDeleteAsset, "asset"
	case route == "/api/v1/ownership/draft/commit" && method == http.MethodPost:
		return domain.AuditActionCommitShare, "ownership"
	case route == "/api/v1/ownership/draft/co-owners/:address" && method == http.MethodDelete:
		return domain.AuditActionRemoveShare, "ownership"
	case route == "/api/v1/ownership/draft" && method == http.MethodDelete:
		return domain.AuditActionDiscardDraft, "ownership"
	}
	return "", ""
}

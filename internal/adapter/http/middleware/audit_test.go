package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatmint-studio/internal/core/domain"
	"chatmint-studio/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuditLog_RegisterAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := mustWallet(t)
	mockAudit := mocks.NewMockAuditService(ctrl)
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *domain.AuditLog) {
			assert.Equal(t, domain.AuditActionRegisterAsset, entry.Action)
			assert.Equal(t, "asset", entry.ResourceType)
			assert.Equal(t, "0xipid", entry.ResourceID)
			assert.Equal(t, testWallet, entry.Wallet)
			assert.Contains(t, entry.Details, `"status":201`)
		},
	)

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.POST("/api/v1/registrations", func(c *gin.Context) {
		c.Set(CtxWallet, wallet)
		c.Set(CtxAuditResourceID, "0xipid")
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/registrations", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAuditLog_DeleteUsesRouteParam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, entry *domain.AuditLog) {
			assert.Equal(t, domain.AuditActionDeleteAsset, entry.Action)
			assert.Equal(t, "1700000000123", entry.ResourceID)
		},
	)

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.DELETE("/api/v1/gallery/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/gallery/1700000000123", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuditLog_SkipsFailuresAndReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := mocks.NewMockAuditService(ctrl)
	mockAudit.EXPECT().Log(gomock.Any(), gomock.Any()).Times(0)

	r := gin.New()
	r.Use(AuditLog(mockAudit))
	r.POST("/api/v1/registrations", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad"})
	})
	r.GET("/api/v1/gallery", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.POST("/api/v1/chat", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/api/v1/registrations", nil),
		httptest.NewRequest(http.MethodGet, "/api/v1/gallery", nil),
		httptest.NewRequest(http.MethodPost, "/api/v1/chat", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
}

func TestMapRouteToAction(t *testing.T) {
	tests := []struct {
		route, method string
		action        domain.AuditAction
	}{
		{"/api/v1/wallet/verify", http.MethodPost, domain.AuditActionWalletLogin},
		{"/api/v1/ownership/draft/commit", http.MethodPost, domain.AuditActionCommitShare},
		{"/api/v1/ownership/draft/co-owners/:address", http.MethodDelete, domain.AuditActionRemoveShare},
		{"/api/v1/ownership/draft", http.MethodDelete, domain.AuditActionDiscardDraft},
		{"/api/v1/ownership/draft/percentage", http.MethodPut, ""},
	}

	for _, tt := range tests {
		action, _ := mapRouteToAction(tt.route, tt.method)
		assert.Equal(t, tt.action, action, tt.route)
	}
}

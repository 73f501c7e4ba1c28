package handler

import (
	"chatmint-studio/internal/adapter/http/middleware"
	"chatmint-studio/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletAuthSvc   ports.WalletAuthService
	TokenSvc        ports.TokenService
	AllocationSvc   ports.AllocationBuilder
	RegistrationSvc ports.RegistrationService
	GallerySvc      ports.GalleryService
	ChatSvc         ports.ChatService
	AuditSvc        ports.AuditService   // nil = audit logging disabled
	RateLimitStore  ports.RateLimitStore // nil = rate limiting disabled
	RateLimitRules  map[string]middleware.RateLimitRule
	HealthCheckers  []ports.HealthChecker
	OpenAPISpec     []byte // empty = /swagger not served
	MaxBodySize     int64
	Mode            string
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	switch deps.Mode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(deps.Mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.MaxBodySize > 0 {
		r.Use(middleware.MaxBodySize(deps.MaxBodySize))
	}

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if len(deps.OpenAPISpec) > 0 {
		swagger := r.Group("/swagger")
		{
			swagger.GET("", SwaggerUI)
			swagger.GET("/spec", SwaggerSpec(deps.OpenAPISpec))
		}
	}

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		rule, ok := deps.RateLimitRules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	walletHandler := NewWalletHandler(deps.WalletAuthSvc)
	wallet := v1.Group("/wallet", rl(middleware.GroupWalletAuth))
	{
		wallet.POST("/challenge", walletHandler.Challenge)
		wallet.POST("/verify", walletHandler.Verify)
	}

	v1.GET("/addresses/:address", rl(middleware.GroupOwnership), ValidateAddress)

	chatHandler := NewChatHandler(deps.ChatSvc)
	v1.POST("/chat", rl(middleware.GroupChat), chatHandler.Reply)

	// --- Wallet-session routes ---
	walletAuth := middleware.WalletAuth(deps.TokenSvc, deps.Logger)

	ownershipHandler := NewOwnershipHandler(deps.AllocationSvc)
	ownership := v1.Group("/ownership/draft", walletAuth, rl(middleware.GroupOwnership))
	{
		ownership.GET("", ownershipHandler.GetDraft)
		ownership.DELETE("", ownershipHandler.Discard)
		ownership.PUT("/percentage", ownershipHandler.SetPercentage)
		ownership.PUT("/wallet", ownershipHandler.SetWallet)
		ownership.POST("/commit", ownershipHandler.Commit)
		ownership.DELETE("/co-owners/:address", ownershipHandler.RemoveCoOwner)
	}

	registrationHandler := NewRegistrationHandler(deps.RegistrationSvc)
	v1.POST("/registrations", walletAuth, rl(middleware.GroupRegistrations), registrationHandler.Register)

	galleryHandler := NewGalleryHandler(deps.GallerySvc)
	gallery := v1.Group("/gallery", walletAuth, rl(middleware.GroupGallery))
	{
		gallery.GET("", galleryHandler.List)
		gallery.DELETE("/:id", galleryHandler.Delete)
	}

	return r
}

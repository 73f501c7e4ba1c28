package main

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatmint-studio/config"
	apidocs "chatmint-studio/docs/api"
	"chatmint-studio/internal/adapter/gemini"
	httpHandler "chatmint-studio/internal/adapter/http/handler"
	"chatmint-studio/internal/adapter/http/middleware"
	"chatmint-studio/internal/adapter/pinata"
	"chatmint-studio/internal/adapter/storage"
	"chatmint-studio/internal/adapter/story"
	"chatmint-studio/internal/core/ports"
	"chatmint-studio/internal/service"
	"chatmint-studio/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("CMS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	warnings, err := cfg.Validate()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	for _, w := range warnings {
		log.Warn().Msg(w)
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("gallery_backend", cfg.Gallery.Backend).
		Msg("Starting ChatMint Studio")

	ctx := context.Background()

	stores, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer stores.Close()

	// Collaborators
	pinner := pinata.NewClient(cfg.Pinata, nil, logger.Component(log, "pinata"))
	chatModel := gemini.NewClient(cfg.Gemini, nil, logger.Component(log, "gemini"))
	balances, registrar, chainCheck := setupChain(ctx, cfg, log)
	healthCheckers := stores.Health
	if chainCheck != nil {
		healthCheckers = append(healthCheckers, chainCheck)
	}

	// Core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	walletAuthSvc := service.NewWalletAuthService(stores.Challenges, tokenSvc, cfg.Wallet.ChallengeTTL, cfg.Wallet.ExpectedChainID, log)
	allocationSvc := service.NewAllocationBuilder(stores.Drafts, log)
	registrationSvc := service.NewRegistrationService(pinner, balances, registrar, stores.Gallery, stores.Drafts, service.RegistrationConfig{
		SPGNFTContract: optionalAddress(cfg.Story.SPGNFTContract),
		Recipient:      optionalAddress(cfg.Story.Recipient),
		MinBalanceWei:  cfg.Story.MinBalance(),
		ExplorerURL:    cfg.Story.ExplorerURL,
	}, log)
	gallerySvc := service.NewGalleryService(stores.Gallery, log)
	chatSvc := service.NewChatService(chatModel, log)
	auditSvc := service.NewAuditService(stores.Audit, logger.Component(log, "audit"))

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletAuthSvc:   walletAuthSvc,
		TokenSvc:        tokenSvc,
		AllocationSvc:   allocationSvc,
		RegistrationSvc: registrationSvc,
		GallerySvc:      gallerySvc,
		ChatSvc:         chatSvc,
		AuditSvc:        auditSvc,
		RateLimitStore:  stores.RateLimits,
		RateLimitRules:  middleware.RateLimitRules(cfg.RateLimit),
		HealthCheckers:  healthCheckers,
		OpenAPISpec:     apidocs.OpenAPI,
		MaxBodySize:     cfg.Server.MaxUploadSize,
		Mode:            cfg.Server.Mode,
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// registrations can wait on a mined transaction
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Story.Timeout+10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := auditSvc.Close(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Audit entries still queued at shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupChain connects to the Story RPC endpoint. Without a signing key the
// registrar stays nil and registrations fail with COL_003.
func setupChain(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.BalanceChecker, ports.ChainRegistrar, ports.HealthChecker) {
	key, err := loadSigningKey(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load registrar signing key")
	}
	if key == nil {
		return nil, nil, nil
	}

	client, err := story.Dial(ctx, cfg.Story.RPCURL)
	if err != nil {
		log.Error().Err(err).Msg("Story RPC unavailable; registrations disabled")
		return nil, nil, nil
	}

	registrar, err := story.NewRegistrar(client, key, story.RegistrarConfig{
		ChainID:               cfg.Story.ChainID,
		RegistrationWorkflows: common.HexToAddress(cfg.Story.RegistrationWorkflows),
		IPAssetRegistry:       common.HexToAddress(cfg.Story.IPAssetRegistry),
		Timeout:               cfg.Story.Timeout,
	}, logger.Component(log, "story"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up registrar")
	}
	registrar.CheckChain(ctx)

	log.Info().
		Str("rpc", cfg.Story.RPCURL).
		Str("signer", registrar.Signer().Hex()).
		Msg("Story registrar ready")

	return story.NewBalanceReader(client), registrar, story.NewChainCheck(client, cfg.Story.ChainID)
}

// loadSigningKey reads story.private_key, or decrypts
// story.encrypted_private_key with the AES settings. Neither set is not an
// error.
func loadSigningKey(cfg *config.Config) (*ecdsa.PrivateKey, error) {
	if cfg.Story.PrivateKey != "" {
		return story.ParsePrivateKey(cfg.Story.PrivateKey)
	}
	if cfg.Story.EncryptedPrivateKey == "" {
		return nil, nil
	}

	encSvc, err := service.NewAESEncryptionServiceFromSecrets(cfg.AES.Key, cfg.AES.Passphrase, cfg.AES.Salt)
	if err != nil {
		return nil, fmt.Errorf("story.encrypted_private_key: %w", err)
	}
	plain, err := encSvc.Decrypt(cfg.Story.EncryptedPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("decrypting story.encrypted_private_key: %w", err)
	}
	return story.ParsePrivateKey(plain)
}

func optionalAddress(s string) common.Address {
	if s == "" {
		return common.Address{}
	}
	return common.HexToAddress(s)
}

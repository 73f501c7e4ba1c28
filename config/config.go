package config

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
)

// Gallery storage backends.
const (
	GalleryBackendFile     = "file"
	GalleryBackendRedis    = "redis"
	GalleryBackendPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Gallery   GalleryConfig   `mapstructure:"gallery"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	AES       AESConfig       `mapstructure:"aes"`
	Wallet    WalletConfig    `mapstructure:"wallet"`
	Pinata    PinataConfig    `mapstructure:"pinata"`
	Story     StoryConfig     `mapstructure:"story"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	Mode          string `mapstructure:"mode"` // debug, release, test
	MaxUploadSize int64  `mapstructure:"max_upload_size"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// GalleryConfig selects where registered assets and drafts are kept.
type GalleryConfig struct {
	Backend  string        `mapstructure:"backend"` // file, redis, postgres
	Key      string        `mapstructure:"key"`
	Dir      string        `mapstructure:"dir"`
	DraftTTL time.Duration `mapstructure:"draft_ttl"`
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	PoolSize    int           `mapstructure:"pool_size"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// AESConfig holds the key protecting story.encrypted_private_key.
// Either Key (64 hex chars) or Passphrase+Salt must be set.
type AESConfig struct {
	Key        string `mapstructure:"key"`
	Passphrase string `mapstructure:"passphrase"`
	Salt       string `mapstructure:"salt"`
}

type WalletConfig struct {
	ChallengeTTL    time.Duration `mapstructure:"challenge_ttl"`
	ExpectedChainID int64         `mapstructure:"expected_chain_id"`
}

type PinataConfig struct {
	JWT        string        `mapstructure:"jwt"`
	APIURL     string        `mapstructure:"api_url"`
	GatewayURL string        `mapstructure:"gateway_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// StoryConfig configures the on-chain registration collaborator.
type StoryConfig struct {
	RPCURL                string        `mapstructure:"rpc_url"`
	ChainID               int64         `mapstructure:"chain_id"`
	SPGNFTContract        string        `mapstructure:"spg_nft_contract"`
	RegistrationWorkflows string        `mapstructure:"registration_workflows"`
	IPAssetRegistry       string        `mapstructure:"ip_asset_registry"`
	Recipient             string        `mapstructure:"recipient"`
	PrivateKey            string        `mapstructure:"private_key"`
	EncryptedPrivateKey   string        `mapstructure:"encrypted_private_key"`
	MinBalanceWei         string        `mapstructure:"min_balance_wei"`
	ExplorerURL           string        `mapstructure:"explorer_url"`
	Timeout               time.Duration `mapstructure:"timeout"`
}

// MinBalance parses MinBalanceWei. Callers run Validate first.
func (s StoryConfig) MinBalance() *big.Int {
	v, ok := new(big.Int).SetString(s.MinBalanceWei, 10)
	if !ok {
		return new(big.Int)
	}
	return v
}

type GeminiConfig struct {
	APIKey          string        `mapstructure:"api_key"`
	BaseURL         string        `mapstructure:"base_url"`
	Model           string        `mapstructure:"model"`
	Temperature     float64       `mapstructure:"temperature"`
	MaxOutputTokens int           `mapstructure:"max_output_tokens"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig holds per-group request budgets.
type RateLimitConfig struct {
	Window        time.Duration `mapstructure:"window"`
	Chat          int64         `mapstructure:"chat"`
	Registrations int64         `mapstructure:"registrations"`
	WalletAuth    int64         `mapstructure:"wallet_auth"`
	Ownership     int64         `mapstructure:"ownership"`
	Gallery       int64         `mapstructure:"gallery"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CMS_ (ChatMint Studio).
// Nested keys use underscore: CMS_PINATA_JWT, CMS_STORY_RPC_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_upload_size", 12<<20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("gallery.backend", GalleryBackendFile)
	v.SetDefault("gallery.key", "visualGallery")
	v.SetDefault("gallery.dir", "./data/gallery")
	v.SetDefault("gallery.draft_ttl", "24h")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "chatmint")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.dial_timeout", "5s")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "chatmint-studio")
	v.SetDefault("aes.key", "")
	v.SetDefault("aes.passphrase", "")
	v.SetDefault("aes.salt", "")
	v.SetDefault("wallet.challenge_ttl", "5m")
	v.SetDefault("wallet.expected_chain_id", 1315)
	v.SetDefault("pinata.jwt", "")
	v.SetDefault("pinata.api_url", "https://api.pinata.cloud")
	v.SetDefault("pinata.gateway_url", "https://gateway.pinata.cloud/ipfs/")
	v.SetDefault("pinata.timeout", "60s")
	v.SetDefault("story.rpc_url", "https://aeneid.storyrpc.io")
	v.SetDefault("story.chain_id", 1315)
	v.SetDefault("story.spg_nft_contract", "")
	v.SetDefault("story.registration_workflows", "0xbe39E1C756e921BD25DF86e7AAa31106d1eb0424")
	v.SetDefault("story.ip_asset_registry", "0x77319B4031e6eF1250907aa00018B8B1c67a244b")
	v.SetDefault("story.recipient", "")
	v.SetDefault("story.private_key", "")
	v.SetDefault("story.encrypted_private_key", "")
	v.SetDefault("story.min_balance_wei", "1000000000000000") // 0.001 ETH
	v.SetDefault("story.explorer_url", "https://aeneid.explorer.storyprotocol.xyz/tx/")
	v.SetDefault("story.timeout", "2m")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.temperature", 0.8)
	v.SetDefault("gemini.max_output_tokens", 220)
	v.SetDefault("gemini.timeout", "30s")
	v.SetDefault("ratelimit.window", "1m")
	v.SetDefault("ratelimit.chat", 20)
	v.SetDefault("ratelimit.registrations", 10)
	v.SetDefault("ratelimit.wallet_auth", 10)
	v.SetDefault("ratelimit.ownership", 120)
	v.SetDefault("ratelimit.gallery", 60)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// CMS_STORY_RPC_URL -> story.rpc_url
	v.SetEnvPrefix("CMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// env vars alone are enough
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate rejects malformed values. Missing collaborator credentials are
// not errors here; they are returned as warnings so the server can start
// with those features degraded.
func (c *Config) Validate() (warnings []string, err error) {
	var errs []error

	switch c.Gallery.Backend {
	case GalleryBackendFile:
	case GalleryBackendRedis:
		if !c.Redis.Enabled {
			errs = append(errs, errors.New("gallery.backend=redis requires redis.enabled"))
		}
	case GalleryBackendPostgres:
		if !c.Database.Enabled {
			errs = append(errs, errors.New("gallery.backend=postgres requires database.enabled"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown gallery.backend %q", c.Gallery.Backend))
	}

	for key, addr := range map[string]string{
		"story.spg_nft_contract":       c.Story.SPGNFTContract,
		"story.registration_workflows": c.Story.RegistrationWorkflows,
		"story.ip_asset_registry":      c.Story.IPAssetRegistry,
		"story.recipient":              c.Story.Recipient,
	} {
		if addr != "" && !common.IsHexAddress(addr) {
			errs = append(errs, fmt.Errorf("%s is not a valid address: %q", key, addr))
		}
	}

	if _, ok := new(big.Int).SetString(c.Story.MinBalanceWei, 10); !ok {
		errs = append(errs, fmt.Errorf("story.min_balance_wei is not an integer: %q", c.Story.MinBalanceWei))
	}

	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	}

	if c.Pinata.JWT == "" {
		warnings = append(warnings, "pinata.jwt is not set; registrations will fail")
	}
	if c.Story.SPGNFTContract == "" {
		warnings = append(warnings, "story.spg_nft_contract is not set; registrations will fail")
	}
	if c.Story.PrivateKey == "" && c.Story.EncryptedPrivateKey == "" {
		warnings = append(warnings, "story signing key is not set; registrations will fail")
	}
	if c.Gemini.APIKey == "" {
		warnings = append(warnings, "gemini.api_key is not set; chat will fail")
	}

	return warnings, errors.Join(errs...)
}

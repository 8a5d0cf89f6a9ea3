package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
)

// Revoke response shapes.
const (
	RevokeResponseTx      = "tx"
	RevokeResponseMessage = "message"
)

// Config holds application level configuration loaded from the environment and an optional .env file.
type Config struct {
	ServerPort string
	DBDriver   string
	DBDSN      string
	ResetDB    bool

	RPCURL          string
	PrivateKey      string
	ContractAddress string
	ChainTimeout    time.Duration

	FrontendURL string
	PinataJWT   string
	PinataURL   string
	PinTimeout  time.Duration

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret         string
	AdminPasswordHash string

	VerifyQR       bool
	RevokeResponse string

	LogLevel    string
	SwaggerHost string
}

// AdminAuthEnabled reports whether admin routes are guarded by an admin token.
func (c *Config) AdminAuthEnabled() bool {
	return c.AdminPasswordHash != ""
}

// Load builds Config from environment with sensible defaults. Values in the file named by CONFIG_FILE
// (default ".env") are read first; real environment variables always win.
func Load() *Config {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(getEnv("CONFIG_FILE", ".env"))
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("config file ignored: %v", err)
	}

	v.AutomaticEnv()
	_ = v.BindEnv("server_port", "SERVER_PORT", "PORT")

	return &Config{
		ServerPort: v.GetString("server_port"),
		DBDriver:   strings.ToLower(v.GetString("db_driver")),
		DBDSN:      v.GetString("db_dsn"),
		ResetDB:    v.GetBool("reset_db"),

		RPCURL:          v.GetString("rpc_url"),
		PrivateKey:      v.GetString("private_key"),
		ContractAddress: v.GetString("contract_address"),
		ChainTimeout:    v.GetDuration("chain_timeout"),

		FrontendURL: strings.TrimRight(v.GetString("frontend_url"), "/"),
		PinataJWT:   v.GetString("pinata_jwt"),
		PinataURL:   strings.TrimRight(v.GetString("pinata_url"), "/"),
		PinTimeout:  v.GetDuration("pin_timeout"),

		RedisAddr: v.GetString("redis_addr"),
		RedisDB:   v.GetInt("redis_db"),
		RedisPass: v.GetString("redis_password"),

		JWTSecret:         v.GetString("jwt_secret"),
		AdminPasswordHash: v.GetString("admin_password_hash"),

		VerifyQR:       v.GetBool("verify_qr"),
		RevokeResponse: strings.ToLower(v.GetString("revoke_response")),

		LogLevel:    strings.ToLower(v.GetString("log_level")),
		SwaggerHost: v.GetString("swagger_host"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_port", "5000")
	v.SetDefault("db_driver", "sqlite")
	v.SetDefault("db_dsn", "pharma.db")
	v.SetDefault("reset_db", false)
	v.SetDefault("rpc_url", "http://127.0.0.1:8545")
	v.SetDefault("private_key", "")
	v.SetDefault("contract_address", "")
	v.SetDefault("chain_timeout", 2*time.Minute)
	v.SetDefault("frontend_url", "http://localhost:3000")
	v.SetDefault("pinata_jwt", "")
	v.SetDefault("pinata_url", "https://api.pinata.cloud")
	v.SetDefault("pin_timeout", 30*time.Second)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_password", "")
	v.SetDefault("jwt_secret", "change-me")
	v.SetDefault("admin_password_hash", "")
	v.SetDefault("verify_qr", false)
	v.SetDefault("revoke_response", RevokeResponseTx)
	v.SetDefault("log_level", "info")
	v.SetDefault("swagger_host", "")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

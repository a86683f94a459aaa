package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config アプリケーション設定
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Cache    CacheConfig
	Log      LogConfig
}

// DatabaseConfig データベース設定
type DatabaseConfig struct {
	Driver          string // mysql, postgres, sqlite
	Host            string
	Port            string
	Username        string
	Password        string
	DBName          string
	SQLitePath      string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
}

// AuthConfig 認証設定
type AuthConfig struct {
	BcryptCost         int
	RememberTokenBytes int
}

// CacheConfig ユーザーキャッシュ設定
type CacheConfig struct {
	UserTTL         time.Duration
	CleanupInterval time.Duration
}

// LogConfig ログ設定
type LogConfig struct {
	Level        string
	Format       string // json or text
	ReportCaller bool
}

// Load 環境変数から設定をロード
func Load() (*Config, error) {
	// .env ファイルをロード (存在すれば)
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "mysql"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "3306"),
			Username:        getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			DBName:          getEnv("DB_NAME", "sample_app"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "sample_app.db"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			LogLevel:        getEnv("DB_LOG_LEVEL", "warn"),
		},
		Auth: AuthConfig{
			BcryptCost:         getEnvAsInt("BCRYPT_COST", 10),
			RememberTokenBytes: getEnvAsInt("REMEMBER_TOKEN_BYTES", 16),
		},
		Cache: CacheConfig{
			UserTTL:         getEnvAsDuration("USER_CACHE_TTL", 5*time.Minute),
			CleanupInterval: getEnvAsDuration("USER_CACHE_CLEANUP", 10*time.Minute),
		},
		Log: LogConfig{
			Level:        getEnv("LOG_LEVEL", "info"),
			Format:       getEnv("LOG_FORMAT", "text"),
			ReportCaller: getEnvAsBool("LOG_REPORT_CALLER", false),
		},
	}

	return config, nil
}

// getEnv 環境変数を取得、存在しない場合はデフォルト値を返す
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt 環境変数を整数として取得
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool 環境変数をboolとして取得
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsDuration 環境変数を time.Duration として取得 (例: "30s", "5m")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	StoreBackendFile     = "file"
	StoreBackendPostgres = "postgres"
	StoreBackendRedis    = "redis"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	StoreBackend string // file / postgres / redis
	DataDir      string // fileバックエンドの保存先

	PostgresURL      string // あれば最優先で使うDSN
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート
	PostgresSSLMode  string

	RedisAddr string // redisバックエンドの接続先

	JWTSecret string // JWT署名シークレット

	AdminUsername string // 管理者ログインの固定ユーザー名
	AdminPassword string // 管理者ログインの固定パスワード

	DeliveryFee int64 // 配達時の固定手数料（セント）

	FEURL string // フロントURL（CORSで使う）
}

// Loadは環境変数から設定を読む。
// デモ用途なので未設定はデフォルトで埋め、backendが必要とする値だけ必須にする。
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		StoreBackend: getenv("STORE_BACKEND", StoreBackendFile),
		DataDir:      getenv("DATA_DIR", "./data"),

		PostgresURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "foodpreorder"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		RedisAddr: getenv("REDIS_ADDR", "localhost:6379"),

		JWTSecret: getenv("JWT_SECRET", "dev_secret_change_me"),

		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "password123"),

		FEURL: os.Getenv("FE_URL"),
	}

	pgPort, err := atoiDefault("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	cfg.PostgresPort = pgPort

	fee, err := atoi64Default("DELIVERY_FEE", 500)
	if err != nil {
		return Config{}, err
	}
	if fee < 0 {
		return Config{}, fmt.Errorf("DELIVERY_FEE must be >= 0")
	}
	cfg.DeliveryFee = fee

	//バックエンド名チェック
	switch cfg.StoreBackend {
	case StoreBackendFile, StoreBackendPostgres, StoreBackendRedis:
	default:
		return Config{}, fmt.Errorf("STORE_BACKEND must be file, postgres or redis")
	}

	if cfg.StoreBackend == StoreBackendFile && cfg.DataDir == "" {
		return Config{}, fmt.Errorf("DATA_DIR is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func atoi64Default(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

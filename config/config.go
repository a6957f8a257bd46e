package config

import (
	"os"
	"strconv"
)

type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Pricing  PricingConfig
	Receipts ReceiptsConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// PricingConfig 特殊廳（IMAX、4DX 等）的加價設定
type PricingConfig struct {
	SpecialHallSurcharge float64
	Currency             string
}

// ReceiptsConfig 購票收據服務的位置
type ReceiptsConfig struct {
	BaseURL string
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Pricing:  GetPricingConfig(),
		Receipts: GetReceiptsConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Database: *testConfig,
		Redis:    testRedisConfig,
		Pricing: PricingConfig{
			SpecialHallSurcharge: 50.0,
			Currency:             "TWD",
		},
		Receipts: ReceiptsConfig{
			BaseURL: "http://localhost:8090",
		},
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetPricingConfig() PricingConfig {
	surcharge, err := strconv.ParseFloat(getEnv("SPECIAL_HALL_SURCHARGE", "50"), 64)
	if err != nil {
		panic(err)
	}

	return PricingConfig{
		SpecialHallSurcharge: surcharge,
		Currency:             getEnv("PRICING_CURRENCY", "TWD"),
	}
}

func GetReceiptsConfig() ReceiptsConfig {
	return ReceiptsConfig{
		BaseURL: getEnv("RECEIPTS_BASE_URL", "http://localhost:8090"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Mongo      MongoConfig      `yaml:"mongo"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Storage    StorageConfig    `yaml:"storage"`
	Classifier ClassifierConfig `yaml:"classifier"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	PublicBaseURL   string        `yaml:"public_base_url"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// StoreConfig 選擇事件資料的儲存後端：mongo、postgres 或 memory
type StoreConfig struct {
	Driver string `yaml:"driver"`
}

type MongoConfig struct {
	URI            string        `yaml:"uri"`
	Database       string        `yaml:"database"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// RedisConfig Enabled=false 時不使用分析快取，清理佇列改用記憶體版
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type StorageConfig struct {
	UploadDir   string        `yaml:"upload_dir"`
	SweepCron   string        `yaml:"sweep_cron"`
	OrphanGrace time.Duration `yaml:"orphan_grace"`
}

type ClassifierConfig struct {
	APIKey    string        `yaml:"api_key"`
	Model     string        `yaml:"model"`
	MaxTokens int64         `yaml:"max_tokens"`
	Timeout   time.Duration `yaml:"timeout"`
	CacheTTL  time.Duration `yaml:"cache_ttl"`
}

var AppConfig *Config

// LoadConfig 讀取順序：預設值 -> CONFIG_FILE (YAML) -> 環境變數 (.env 會先載入)
func LoadConfig() (*Config, error) {
	// .env 不存在時直接使用系統環境變數
	_ = godotenv.Load()

	cfg := defaultConfig()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	AppConfig = cfg
	return AppConfig, nil
}

func LoadTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Database = DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}
	cfg.Redis = RedisConfig{
		Enabled:  true,
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}
	cfg.Mongo.URI = "mongodb://localhost:27018"
	cfg.Mongo.Database = "calendar_test"
	return cfg
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "5000",
			PublicBaseURL:   "http://localhost:5000",
			AllowedOrigins:  []string{"http://localhost:3000"},
			MaxUploadBytes:  10 << 20,
			ShutdownTimeout: 10 * time.Second,
		},
		Store: StoreConfig{Driver: StoreDriverMongo},
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "calendar",
			ConnectTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			DBName:   "postgres",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: "6379",
		},
		Storage: StorageConfig{
			UploadDir:   "uploads",
			SweepCron:   "@hourly",
			OrphanGrace: time.Hour,
		},
		Classifier: ClassifierConfig{
			Model:     "claude-3-5-sonnet-20240620",
			MaxTokens: 1024,
			Timeout:   60 * time.Second,
			CacheTTL:  24 * time.Hour,
		},
	}
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %s not found", path)
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var err error

	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.PublicBaseURL = getEnv("PUBLIC_BASE_URL", cfg.Server.PublicBaseURL)
	cfg.Server.AllowedOrigins = getEnvList("CORS_ALLOWED_ORIGINS", cfg.Server.AllowedOrigins)
	if cfg.Server.MaxUploadBytes, err = getEnvInt64("MAX_UPLOAD_BYTES", cfg.Server.MaxUploadBytes); err != nil {
		return err
	}
	if cfg.Server.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout); err != nil {
		return err
	}

	cfg.Store.Driver = strings.ToLower(getEnv("STORE_DRIVER", cfg.Store.Driver))

	cfg.Mongo.URI = getEnv("MONGO_URI", cfg.Mongo.URI)
	cfg.Mongo.Database = getEnv("MONGO_DATABASE", cfg.Mongo.Database)
	if cfg.Mongo.ConnectTimeout, err = getEnvDuration("MONGO_CONNECT_TIMEOUT", cfg.Mongo.ConnectTimeout); err != nil {
		return err
	}

	cfg.Database.Host = getEnv("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnv("DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnv("DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.DBName = getEnv("DB_NAME", cfg.Database.DBName)
	cfg.Database.SSLMode = getEnv("DB_SSL_MODE", cfg.Database.SSLMode)

	if cfg.Redis.Enabled, err = getEnvBool("REDIS_ENABLED", cfg.Redis.Enabled); err != nil {
		return err
	}
	cfg.Redis.Host = getEnv("REDIS_HOST", cfg.Redis.Host)
	cfg.Redis.Port = getEnv("REDIS_PORT", cfg.Redis.Port)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	db, err := getEnvInt64("REDIS_DB", int64(cfg.Redis.DB))
	if err != nil {
		return err
	}
	cfg.Redis.DB = int(db)

	cfg.Storage.UploadDir = getEnv("UPLOAD_DIR", cfg.Storage.UploadDir)
	cfg.Storage.SweepCron = getEnv("UPLOAD_SWEEP_CRON", cfg.Storage.SweepCron)
	if cfg.Storage.OrphanGrace, err = getEnvDuration("UPLOAD_ORPHAN_GRACE", cfg.Storage.OrphanGrace); err != nil {
		return err
	}

	cfg.Classifier.APIKey = getEnv("ANTHROPIC_API_KEY", cfg.Classifier.APIKey)
	cfg.Classifier.Model = getEnv("CLASSIFIER_MODEL", cfg.Classifier.Model)
	if cfg.Classifier.MaxTokens, err = getEnvInt64("CLASSIFIER_MAX_TOKENS", cfg.Classifier.MaxTokens); err != nil {
		return err
	}
	if cfg.Classifier.Timeout, err = getEnvDuration("CLASSIFIER_TIMEOUT", cfg.Classifier.Timeout); err != nil {
		return err
	}
	if cfg.Classifier.CacheTTL, err = getEnvDuration("CLASSIFIER_CACHE_TTL", cfg.Classifier.CacheTTL); err != nil {
		return err
	}
	return nil
}

// Validate 檢查啟動時就能發現的設定錯誤
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverMongo, StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	if c.Storage.UploadDir == "" {
		return fmt.Errorf("UPLOAD_DIR must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

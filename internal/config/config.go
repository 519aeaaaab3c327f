package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Classifier ClassifierConfig
	Overpass   OverpassConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// ClassifierConfig - настройки удалённого классификатора намерений.
// Provider: huggingface | gemini | local (без удалённого вызова).
type ClassifierConfig struct {
	Provider       string
	BaseURL        string
	Model          string
	RequestTimeout int // seconds

	GeminiAPIKey string
	GeminiModel  string
}

// OverpassConfig - настройки геопровайдера Overpass API
type OverpassConfig struct {
	BaseURL        string
	RequestTimeout int // seconds, передаётся и в [timeout:N] запроса
	RadiusMeters   int
	ResultLimit    int // максимум мест в ответе после нормализации
	LooseLimit     int // лимит на стороне провайдера для loose запроса
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	// SearchTTL = 0 отключает кеширование ответов поиска
	SearchTTL time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env опционален: в контейнере конфигурация приходит из окружения
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Classifier: ClassifierConfig{
			Provider:       viper.GetString("CLASSIFIER_PROVIDER"),
			BaseURL:        viper.GetString("CLASSIFIER_BASE_URL"),
			Model:          viper.GetString("CLASSIFIER_MODEL"),
			RequestTimeout: viper.GetInt("CLASSIFIER_REQUEST_TIMEOUT"),
			GeminiAPIKey:   viper.GetString("GEMINI_API_KEY"),
			GeminiModel:    viper.GetString("GEMINI_MODEL"),
		},
		Overpass: OverpassConfig{
			BaseURL:        viper.GetString("OVERPASS_BASE_URL"),
			RequestTimeout: viper.GetInt("OVERPASS_REQUEST_TIMEOUT"),
			RadiusMeters:   viper.GetInt("OVERPASS_RADIUS_METERS"),
			ResultLimit:    viper.GetInt("OVERPASS_RESULT_LIMIT"),
			LooseLimit:     viper.GetInt("OVERPASS_LOOSE_LIMIT"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SearchTTL: time.Duration(viper.GetInt("CACHE_SEARCH_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Classifier.Provider == "" {
		cfg.Classifier.Provider = "huggingface"
	}
	if cfg.Classifier.BaseURL == "" {
		cfg.Classifier.BaseURL = "https://api-inference.huggingface.co"
	}
	if cfg.Classifier.Model == "" {
		cfg.Classifier.Model = "microsoft/DialoGPT-medium"
	}
	if cfg.Classifier.RequestTimeout == 0 {
		cfg.Classifier.RequestTimeout = 5
	}
	if cfg.Classifier.GeminiModel == "" {
		cfg.Classifier.GeminiModel = "gemini-2.0-flash"
	}
	if cfg.Overpass.BaseURL == "" {
		cfg.Overpass.BaseURL = "https://overpass-api.de"
	}
	if cfg.Overpass.RequestTimeout == 0 {
		cfg.Overpass.RequestTimeout = 25
	}
	if cfg.Overpass.RadiusMeters == 0 {
		cfg.Overpass.RadiusMeters = 5000
	}
	if cfg.Overpass.ResultLimit == 0 {
		cfg.Overpass.ResultLimit = 10
	}
	if cfg.Overpass.LooseLimit == 0 {
		cfg.Overpass.LooseLimit = 20
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// CacheEnabled - кеширование ответов включено только при явном TTL
// и настроенном Redis; по умолчанию пайплайн полностью stateless
func (c *Config) CacheEnabled() bool {
	return c.Cache.SearchTTL > 0 && c.Redis.Host != ""
}

package config

import (
	"os"
	"strconv"
	"time"
)

// Config конфигурация сервиса извлечения
type Config struct {
	// Сервер
	Port           string        `json:"port"`
	RequestTimeout time.Duration `json:"request_timeout"`

	// Логирование
	LogLevel string `json:"log_level"`

	// Извлечение
	MaxItems             int  `json:"max_items"`
	MaxTextLength        int  `json:"max_text_length"`
	Workers              int  `json:"workers"`
	MaxBatchSize         int  `json:"max_batch_size"`
	PreferHighConfidence bool `json:"prefer_high_confidence"`

	// Дополнительный словарь сущностей (JSON)
	GazetteerPath string `json:"gazetteer_path"`

	// Rate limiting
	RateLimitRPS   float64 `json:"rate_limit_rps"`
	RateLimitBurst int     `json:"rate_limit_burst"`

	// Хранилище результатов, пустой путь - без сохранения
	DatabasePath    string        `json:"database_path"`
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	config := &Config{
		// Сервер
		Port:           getEnv("SERVER_PORT", "8090"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),

		// Логирование
		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		// Извлечение
		MaxItems:             getEnvInt("EXTRACT_MAX_ITEMS", 10),
		MaxTextLength:        getEnvInt("EXTRACT_MAX_TEXT_LENGTH", 100000),
		Workers:              getEnvInt("EXTRACT_WORKERS", 4),
		MaxBatchSize:         getEnvInt("EXTRACT_MAX_BATCH_SIZE", 100),
		PreferHighConfidence: getEnv("EXTRACT_PREFER_HIGH_CONFIDENCE", "false") == "true",

		GazetteerPath: os.Getenv("GAZETTEER_PATH"),

		// Rate limiting
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),

		// Хранилище
		DatabasePath:    os.Getenv("DATABASE_PATH"),
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как Duration или возвращает значение по умолчанию
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

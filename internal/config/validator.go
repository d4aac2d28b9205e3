package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidLogLevels допустимые уровни логирования
var ValidLogLevels = []string{"DEBUG", "INFO", "WARN", "ERROR"}

// Validate проверяет корректность конфигурации и возвращает все найденные проблемы разом
func (c *Config) Validate() error {
	var errors []string

	// Валидация порта
	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	if c.RequestTimeout < time.Second {
		errors = append(errors, "request timeout must be at least 1 second")
	}

	// Валидация уровня логирования
	if c.LogLevel != "" {
		valid := false
		logLevelUpper := strings.ToUpper(c.LogLevel)
		for _, level := range ValidLogLevels {
			if logLevelUpper == level {
				valid = true
				break
			}
		}
		if !valid {
			errors = append(errors, fmt.Sprintf("invalid log level: %s (valid: %s)",
				c.LogLevel, strings.Join(ValidLogLevels, ", ")))
		}
	}

	// Валидация параметров извлечения
	if c.MaxItems < 1 {
		errors = append(errors, "max items must be at least 1")
	}
	if c.MaxTextLength < 1 {
		errors = append(errors, "max text length must be at least 1")
	}
	if c.Workers < 1 {
		errors = append(errors, "workers must be at least 1")
	}
	if c.MaxBatchSize < 1 {
		errors = append(errors, "max batch size must be at least 1")
	}

	// Валидация rate limiting
	if c.RateLimitRPS <= 0 {
		errors = append(errors, "rate limit rps must be positive")
	}
	if c.RateLimitBurst < 1 {
		errors = append(errors, "rate limit burst must be at least 1")
	}

	// Connection pooling проверяется только при включенном хранилище
	if c.DatabasePath != "" {
		if c.MaxOpenConns < 1 {
			errors = append(errors, "max open connections must be at least 1")
		}
		if c.MaxIdleConns < 1 {
			errors = append(errors, "max idle connections must be at least 1")
		}
		if c.MaxIdleConns > c.MaxOpenConns {
			errors = append(errors, "max idle connections cannot be greater than max open connections")
		}
		if c.ConnMaxLifetime < time.Second {
			errors = append(errors, "connection max lifetime must be at least 1 second")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}

// GetDefaults возвращает конфигурацию со значениями по умолчанию
func GetDefaults() *Config {
	return &Config{
		Port:            "8090",
		RequestTimeout:  30 * time.Second,
		LogLevel:        "INFO",
		MaxItems:        10,
		MaxTextLength:   100000,
		Workers:         4,
		MaxBatchSize:    100,
		RateLimitRPS:    20,
		RateLimitBurst:  40,
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

package main

import (
	"fmt"
	"os"

	"transportner/extraction"
	"transportner/gazetteer"
	"transportner/internal/config"
)

func main() {
	fmt.Println("=== Проверка конфигурации ===")
	fmt.Println("")

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("❌ Ошибка загрузки конфигурации: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Конфигурация успешно загружена")
	fmt.Println("")

	fmt.Println("Сервер:")
	fmt.Printf("  Порт: %s\n", cfg.Port)
	fmt.Printf("  Таймаут запроса: %v\n", cfg.RequestTimeout)
	fmt.Printf("  Уровень логирования: %s\n", cfg.LogLevel)
	fmt.Printf("  Rate limit: %.1f rps, burst %d\n", cfg.RateLimitRPS, cfg.RateLimitBurst)
	fmt.Println("")

	fmt.Println("Извлечение:")
	fmt.Printf("  Максимум элементов: %d\n", cfg.MaxItems)
	fmt.Printf("  Максимальная длина текста: %d\n", cfg.MaxTextLength)
	fmt.Printf("  Воркеры: %d\n", cfg.Workers)
	fmt.Printf("  Максимальный размер пакета: %d\n", cfg.MaxBatchSize)
	fmt.Printf("  Только уверенные термины: %v\n", cfg.PreferHighConfidence)
	fmt.Println("")

	var extra []gazetteer.Entry
	if cfg.GazetteerPath != "" {
		extra, err = gazetteer.LoadFile(cfg.GazetteerPath)
		if err != nil {
			fmt.Printf("❌ Словарь сущностей %s: %v\n", cfg.GazetteerPath, err)
			os.Exit(1)
		}
		fmt.Printf("Словарь сущностей: %s (%d записей)\n", cfg.GazetteerPath, len(extra))
	} else {
		fmt.Println("Словарь сущностей: [встроенный]")
	}

	extractor, err := extraction.New(extraction.Options{MaxItems: cfg.MaxItems}, extra...)
	if err != nil {
		fmt.Printf("❌ Ошибка создания экстрактора: %v\n", err)
		os.Exit(1)
	}
	total := 0
	for _, n := range extractor.OntologyStats() {
		total += n
	}
	fmt.Printf("Терминов в онтологии: %d\n", total)
	fmt.Println("")

	if cfg.DatabasePath != "" {
		fmt.Println("Хранилище:")
		fmt.Printf("  База: %s\n", cfg.DatabasePath)
		fmt.Printf("  Max Open Connections: %d\n", cfg.MaxOpenConns)
		fmt.Printf("  Max Idle Connections: %d\n", cfg.MaxIdleConns)
		fmt.Printf("  Connection Max Lifetime: %v\n", cfg.ConnMaxLifetime)
	} else {
		fmt.Println("Хранилище: [отключено]")
	}
}

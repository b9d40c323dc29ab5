// Package config загружает настройки сервиса: YAML-файл плюс переопределения
// через переменные окружения.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Config struct {
	HTTPAddr      string      `yaml:"http_addr"`
	ModelPath     string      `yaml:"model_path"` // без расширения; пусто — равномерный режим
	MaxCandidates int         `yaml:"max_candidates"`
	CacheSize     int         `yaml:"cache_size"`
	TopK          int         `yaml:"top_k"`
	Redis         RedisConfig `yaml:"redis"`
}

func defaults() Config {
	return Config{
		HTTPAddr:  ":8080",
		CacheSize: 4096,
		TopK:      8,
		Redis:     RedisConfig{Addr: "localhost:6379"},
	}
}

// Load читает конфигурацию из path. Отсутствующий файл — не ошибка:
// остаются значения по умолчанию. Переменные окружения применяются поверх.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("ошибка разбора конфигурации %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("ошибка чтения конфигурации %s: %w", path, err)
		}
	}

	cfg.HTTPAddr = Getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.ModelPath = Getenv("MODEL_PATH", cfg.ModelPath)
	cfg.Redis.Addr = Getenv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = Getenv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = GetenvInt("REDIS_DB", cfg.Redis.DB)
	return cfg, nil
}

func Getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func GetenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}

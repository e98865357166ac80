package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Имя конфигурационного файла, подхватываемого из рабочего каталога.
const defaultPath = "./filepart.yaml"

type Config struct {
	// DefaultParts и DefaultMaxSize задают стратегию разбиения по умолчанию,
	// когда она не указана флагами. Нулевые значения означают "не задано".
	DefaultParts   int    `yaml:"default_parts" json:"default_parts"`
	DefaultMaxSize string `yaml:"default_max_size" json:"default_max_size"`
	// Progress включает индикацию прогресса по частям.
	Progress bool `yaml:"progress" json:"progress"`
}

// Defaults возвращает встроенные значения по умолчанию.
func Defaults() Config {
	return Config{Progress: true}
}

// Load читает YAML-конфигурацию (если она есть), применяет ENV-переопределения
// и возвращает актуальную структуру. Отсутствие файла не является ошибкой:
// путь из CONFIG_PATH обязателен, дефолтный ./filepart.yaml — опционален.
func Load() (*Config, error) {
	c := Defaults()

	path := os.Getenv("CONFIG_PATH")
	required := path != ""
	if path == "" {
		path = defaultPath
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
		// работаем на встроенных дефолтах
	default:
		return nil, err
	}

	// ENV override
	if v := os.Getenv("FILEPART_PARTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("FILEPART_PARTS: %w", err)
		}
		c.DefaultParts = n
	}
	if v := os.Getenv("FILEPART_MAX_SIZE"); v != "" {
		c.DefaultMaxSize = v
	}
	if v := os.Getenv("FILEPART_PROGRESS"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("FILEPART_PROGRESS: %w", err)
		}
		c.Progress = on
	}

	return &c, nil
}

package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabasePath    string
	OutputDir       string
	RedisURL        string
	PrimaryDictURL  string
	FallbackDictURL string
	DictTimeout     time.Duration
	TesseractCmd    string
	EnrichEnabled   bool
	EnrichInterval  time.Duration
}

func Load() *Config {
	return &Config{
		DatabasePath:    getEnv("WORDNEST_DB", "vocabulary.db"),
		OutputDir:       getEnv("WORDNEST_OUTPUT_DIR", "output"),
		RedisURL:        getEnv("REDIS_URL", ""),
		PrimaryDictURL:  getEnv("PRIMARY_DICT_URL", "https://dict.youdao.com/suggest"),
		FallbackDictURL: getEnv("FALLBACK_DICT_URL", "https://api.dictionaryapi.dev/api/v2/entries/en"),
		DictTimeout:     getDuration("DICT_TIMEOUT", 10*time.Second),
		TesseractCmd:    getEnv("TESSERACT_CMD", "tesseract"),
		EnrichEnabled:   getBool("ENRICH_ENABLED", false),
		EnrichInterval:  getDuration("ENRICH_INTERVAL", 30*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

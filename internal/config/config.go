// internal/config/config.go
// Loader konfigurasi dari environment variables

package config

import (
	"fmt"
	"log"
	"os"
	"time"
)

type Config struct {
	AppName   string
	AppEnv    string
	AppPort   string
	LogLevel  string

	// Sumber data insiden: "json" (default) atau "mysql"
	DataSource string
	DataPath   string

	// TTL cache hasil statistik
	CacheTTL time.Duration

	MySQL struct {
		Host     string
		Port     string
		DB       string
		User     string
		Password string
		MaxOpen  int
		MaxIdle  int
	}

	LLM struct {
		Provider string // default: openai
		APIKey   string
		APIBase  string
		Model    string
	}
}

func Load() *Config {
	c := &Config{}
	c.AppName = getEnv("APP_NAME", "nearmiss-api")
	c.AppEnv = getEnv("APP_ENV", "development")
	c.AppPort = getEnv("APP_PORT", "5000")
	c.LogLevel = getEnv("LOG_LEVEL", "debug")

	c.DataSource = getEnv("DATA_SOURCE", "json")
	c.DataPath = getEnv("DATA_PATH", "data/db.dashboard_incidents.json")
	c.CacheTTL = time.Duration(getEnvInt("STATS_CACHE_TTL_SECONDS", 600)) * time.Second

	c.MySQL.Host = getEnv("MYSQL_HOST", "localhost")
	c.MySQL.Port = getEnv("MYSQL_PORT", "3306")
	c.MySQL.DB = getEnv("MYSQL_DB", "nearmiss")
	c.MySQL.User = getEnv("MYSQL_USER", "root")
	c.MySQL.Password = getEnv("MYSQL_PASSWORD", "")
	c.MySQL.MaxOpen = getEnvInt("MYSQL_MAX_OPEN_CONNS", 10)
	c.MySQL.MaxIdle = getEnvInt("MYSQL_MAX_IDLE_CONNS", 5)

	// LLM / OpenAI
	c.LLM.Provider = getEnv("LLM_PROVIDER", "openai")
	c.LLM.APIKey = getEnv("OPENAI_API_KEY", "")
	c.LLM.APIBase = getEnv("OPENAI_API_BASE", "https://api.openai.com/v1")
	c.LLM.Model = getEnv("OPENAI_MODEL", "gpt-4o-mini")

	if c.LLM.APIKey == "" {
		log.Println("[WARN] OPENAI_API_KEY is not set, AI insights will use the rule-based fallback")
	}

	return c
}

// DSN merakit connection string MySQL dari blok config.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		c.MySQL.User, c.MySQL.Password, c.MySQL.Host, c.MySQL.Port, c.MySQL.DB)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		_, err := fmt.Sscanf(v, "%d", &i)
		if err == nil {
			return i
		}
	}
	return def
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AI       AIConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// AIConfig carries the API keys the platform recognizes. Only the Google
// key is used by the analysis pipeline; the others are optional
// integrations surfaced as capability flags.
type AIConfig struct {
	GoogleAPIKey   string
	OpenAIAPIKey   string
	LinkedInAPIKey string
	GitHubToken    string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8501"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "smartats"),
		},
		AI: AIConfig{
			GoogleAPIKey:   getEnv("GOOGLE_API_KEY", ""),
			OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
			LinkedInAPIKey: getEnv("LINKEDIN_API_KEY", ""),
			GitHubToken:    getEnv("GITHUB_TOKEN", ""),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
	}
}

// Validate checks the required settings. GOOGLE_API_KEY is the only hard
// requirement; the server refuses to start without it.
func (c *Config) Validate() error {
	if c.AI.GoogleAPIKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY is required")
	}
	return nil
}

// OptionalIntegrations reports which optional API keys are configured.
func (c *Config) OptionalIntegrations() map[string]bool {
	return map[string]bool{
		"openai":   c.AI.OpenAIAPIKey != "",
		"linkedin": c.AI.LinkedInAPIKey != "",
		"github":   c.AI.GitHubToken != "",
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

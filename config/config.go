package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string

	JWTSecret string
	Port      string

	// Google OAuth для входа в админку
	GoogleClientID string
	GoogleSecret   string
	GoogleRedirect string

	// Первичный администратор (сидируется при пустой таблице users)
	AdminEmail    string
	AdminPassword string

	// Разрешённые origin'ы фронтенда, через запятую
	AllowedOrigins string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         getenvOrDefault("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		Port:           getenvOrDefault("PORT", "8080"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleSecret:   os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirect: os.Getenv("GOOGLE_REDIRECT_URI"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		AllowedOrigins: getenvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000,https://podoloog.ee,https://www.podoloog.ee"),
	}
}

// HasDB сообщает, достаточно ли настроек для подключения к PostgreSQL.
// Без них сервис стартует в деградированном режиме (данные отдают 503).
func (c *Config) HasDB() bool {
	return c.DBHost != "" && c.DBUser != "" && c.DBName != ""
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

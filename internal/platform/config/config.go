package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string
	JWTKey  []byte
	JWTExp  time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBConnStr  string

	UploadDir       string
	UploadURLPrefix string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LoginRateLimit  int
	LoginRateWindow time.Duration

	SetupAdminEmail    string
	SetupAdminPassword string
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:            getEnv("API_PORT", "8080"),
		JWTKey:             []byte(os.Getenv("JWT_SECRET")),
		JWTExp:             time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 72)) * time.Hour,
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", ""),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBName:             getEnv("DB_NAME", "galactic_pets"),
		DBSslMode:          getEnv("DB_SSLMODE", "disable"),
		UploadDir:          getEnv("UPLOAD_DIR", "public/uploads"),
		UploadURLPrefix:    getEnv("UPLOAD_URL_PREFIX", "/uploads"),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		LoginRateLimit:     getEnvAsInt("LOGIN_RATE_LIMIT", 10),
		LoginRateWindow:    time.Duration(getEnvAsInt("LOGIN_RATE_WINDOW_SECONDS", 60)) * time.Second,
		SetupAdminEmail:    getEnv("SETUP_ADMIN_EMAIL", "admin@galactic.com"),
		SetupAdminPassword: getEnv("SETUP_ADMIN_PASSWORD", "admin123"),
	}

	// The signing secret and database credentials have no safe defaults.
	if len(AppConfig.JWTKey) == 0 {
		log.Fatal("JWT_SECRET must be set")
	}
	if AppConfig.DBUser == "" {
		log.Fatal("DB_USER must be set")
	}

	AppConfig.DBConnStr = "host=" + AppConfig.DBHost +
		" port=" + AppConfig.DBPort +
		" user=" + AppConfig.DBUser +
		" password=" + AppConfig.DBPassword +
		" dbname=" + AppConfig.DBName +
		" sslmode=" + AppConfig.DBSslMode
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

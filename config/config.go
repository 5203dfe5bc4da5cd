package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads the .env file once at startup. A missing file is fine in
// deployed environments where variables come from the process environment.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
}

// SessionSecret signs the session cookie JWT. The server refuses to start
// without it; see main.
func SessionSecret() string {
	return os.Getenv("SESSION_SECRET")
}

// SheetsWebAppURL is the single endpoint of the spreadsheet-backed service.
// Checked at request time, not startup, so the server can come up and report
// the misconfiguration per request.
func SheetsWebAppURL() string {
	return os.Getenv("SHEETS_WEBAPP_URL")
}

func AdminID() string {
	return os.Getenv("ADMIN_ID")
}

func AdminPassword() string {
	return os.Getenv("ADMIN_PASSWORD")
}

// AdminPasswordHash is the bcrypt form of the admin password. When set it
// takes precedence over ADMIN_PASSWORD.
func AdminPasswordHash() string {
	return os.Getenv("ADMIN_PASSWORD_HASH")
}

func GoogleClientID() string {
	return os.Getenv("GOOGLE_CLIENT_ID")
}

func GoogleClientSecret() string {
	return os.Getenv("GOOGLE_CLIENT_SECRET")
}

func GoogleRedirectURL() string {
	return os.Getenv("GOOGLE_REDIRECT_URL")
}

func RedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}

func RemindersEnabled() bool {
	return os.Getenv("ENABLE_REMINDERS") == "true"
}

func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}

func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	return port
}

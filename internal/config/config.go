// Package config loads runtime configuration from the environment, with a
// best-effort .env file for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Google Classroom API
	ClassroomBaseURL string
	DriveBaseURL     string

	// OAuth (installed-app flow; token cached on disk)
	GoogleClientID     string
	GoogleClientSecret string
	TokenFile          string

	// Grading
	PoliciesFile string

	// HTTP API
	ServerPort     string
	AllowedOrigins string
	CacheTTL       time.Duration

	// Snapshots (what's-new diffing)
	SnapshotFile string

	// WhatsApp reminders (CallMeBot); disabled when phone or key is empty
	WhatsAppPhone  string
	WhatsAppAPIKey string
	Timezone       string

	// SFTP report upload
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool
}

func Load() Config {
	// .env is optional; in deployed environments everything comes from the
	// real environment.
	_ = godotenv.Load()

	return Config{
		ClassroomBaseURL: getenv("CLASSROOM_BASE_URL", "https://classroom.googleapis.com/v1"),
		DriveBaseURL:     getenv("DRIVE_BASE_URL", "https://www.googleapis.com/drive/v3"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		TokenFile:          getenv("GOOGLE_TOKEN_FILE", "token.json"),

		PoliciesFile: getenv("GRADING_POLICIES_FILE", "grading_policies.json"),

		ServerPort:     getenv("SERVER_PORT", "8080"),
		AllowedOrigins: getenv("ALLOWED_ORIGINS", "http://localhost:5173"),
		CacheTTL:       time.Duration(getenvInt("CACHE_TTL_MINUTES", 60)) * time.Minute,

		SnapshotFile: getenv("SNAPSHOT_FILE", "classroom_snapshot.json"),

		WhatsAppPhone:  os.Getenv("WHATSAPP_PHONE"),
		WhatsAppAPIKey: os.Getenv("WHATSAPP_APIKEY"),
		Timezone:       getenv("TIMEZONE", "UTC"),

		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/inbound"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", true),
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

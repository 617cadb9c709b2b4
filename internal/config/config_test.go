package config

import (
	"os"
	"testing"
)

func TestGetenv(t *testing.T) {
	os.Unsetenv("TEST_GETENV")
	result := getenv("TEST_GETENV", "default")
	if result != "default" {
		t.Errorf("Expected default value 'default', got '%s'", result)
	}

	os.Setenv("TEST_GETENV", "test-value")
	result = getenv("TEST_GETENV", "default")
	if result != "test-value" {
		t.Errorf("Expected 'test-value', got '%s'", result)
	}

	os.Unsetenv("TEST_GETENV")
}

func TestGetenvInt(t *testing.T) {
	os.Unsetenv("TEST_GETENV_INT")
	result := getenvInt("TEST_GETENV_INT", 42)
	if result != 42 {
		t.Errorf("Expected default value 42, got %d", result)
	}

	os.Setenv("TEST_GETENV_INT", "100")
	result = getenvInt("TEST_GETENV_INT", 42)
	if result != 100 {
		t.Errorf("Expected 100, got %d", result)
	}

	os.Setenv("TEST_GETENV_INT", "not-an-int")
	result = getenvInt("TEST_GETENV_INT", 42)
	if result != 42 {
		t.Errorf("Expected default value 42, got %d", result)
	}

	os.Unsetenv("TEST_GETENV_INT")
}

func TestGetenvBool(t *testing.T) {
	os.Unsetenv("TEST_GETENV_BOOL")
	result := getenvBool("TEST_GETENV_BOOL", true)
	if result != true {
		t.Errorf("Expected default value true, got %v", result)
	}

	os.Setenv("TEST_GETENV_BOOL", "false")
	result = getenvBool("TEST_GETENV_BOOL", true)
	if result != false {
		t.Errorf("Expected false, got %v", result)
	}

	os.Setenv("TEST_GETENV_BOOL", "not-a-bool")
	result = getenvBool("TEST_GETENV_BOOL", true)
	if result != true {
		t.Errorf("Expected default value true, got %v", result)
	}

	os.Unsetenv("TEST_GETENV_BOOL")
}

func TestLoad(t *testing.T) {
	envVars := []string{
		"CLASSROOM_BASE_URL", "DRIVE_BASE_URL", "GOOGLE_CLIENT_ID",
		"GOOGLE_CLIENT_SECRET", "GOOGLE_TOKEN_FILE", "GRADING_POLICIES_FILE",
		"SERVER_PORT", "ALLOWED_ORIGINS", "CACHE_TTL_MINUTES", "SNAPSHOT_FILE",
		"SFTP_HOST", "SFTP_PORT", "SFTP_USER", "SFTP_PASS", "SFTP_DIR",
		"SFTP_INSECURE_IGNORE_HOSTKEY",
	}

	origEnv := make(map[string]string)
	for _, env := range envVars {
		origEnv[env] = os.Getenv(env)
		os.Unsetenv(env)
	}

	os.Setenv("CLASSROOM_BASE_URL", "https://classroom.test/v1")
	os.Setenv("GOOGLE_CLIENT_ID", "client-id")
	os.Setenv("SFTP_HOST", "sftp.test")
	os.Setenv("SFTP_PORT", "2222")
	os.Setenv("SFTP_INSECURE_IGNORE_HOSTKEY", "false")

	cfg := Load()

	if cfg.ClassroomBaseURL != "https://classroom.test/v1" {
		t.Errorf("Expected ClassroomBaseURL to be 'https://classroom.test/v1', got '%s'", cfg.ClassroomBaseURL)
	}
	if cfg.GoogleClientID != "client-id" {
		t.Errorf("Expected GoogleClientID to be 'client-id', got '%s'", cfg.GoogleClientID)
	}
	if cfg.SFTPPort != 2222 {
		t.Errorf("Expected SFTPPort to be 2222, got %d", cfg.SFTPPort)
	}
	if cfg.SFTPInsecureIgnoreHostKey != false {
		t.Errorf("Expected SFTPInsecureIgnoreHostKey to be false, got %v", cfg.SFTPInsecureIgnoreHostKey)
	}

	// Defaults
	os.Unsetenv("CLASSROOM_BASE_URL")
	os.Unsetenv("SFTP_PORT")
	os.Unsetenv("SFTP_INSECURE_IGNORE_HOSTKEY")

	cfg = Load()
	if cfg.ClassroomBaseURL != "https://classroom.googleapis.com/v1" {
		t.Errorf("Expected default ClassroomBaseURL, got '%s'", cfg.ClassroomBaseURL)
	}
	if cfg.SFTPPort != 22 {
		t.Errorf("Expected default SFTPPort to be 22, got %d", cfg.SFTPPort)
	}
	if cfg.SFTPDir != "/inbound" {
		t.Errorf("Expected default SFTPDir to be '/inbound', got '%s'", cfg.SFTPDir)
	}
	if cfg.PoliciesFile != "grading_policies.json" {
		t.Errorf("Expected default PoliciesFile, got '%s'", cfg.PoliciesFile)
	}
	if !cfg.SFTPInsecureIgnoreHostKey {
		t.Errorf("Expected default SFTPInsecureIgnoreHostKey to be true")
	}

	for env, val := range origEnv {
		if val != "" {
			os.Setenv(env, val)
		} else {
			os.Unsetenv(env)
		}
	}
}

package sftpclient

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestUploadFileMissingCredentials(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
	}{
		{"no host", Config{User: "reports", Pass: "secret"}},
		{"no user", Config{Host: "drop.uni.edu", Pass: "secret"}},
		{"no pass", Config{Host: "drop.uni.edu", User: "reports"}},
		{"empty config", Config{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := UploadFile(context.Background(), tc.cfg, "works.csv", "works.csv")
			if err == nil || !strings.Contains(err.Error(), "missing env") {
				t.Errorf("Expected missing-credentials error, got %v", err)
			}
		})
	}
}

func TestUploadFileUnreachableHost(t *testing.T) {
	// 203.0.113.0/24 is reserved for documentation and never routes, so
	// the dial can only end via the context deadline or a refusal.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	cfg := Config{
		Host:      "203.0.113.1",
		User:      "reports",
		Pass:      "secret",
		RemoteDir: "/reports",
	}

	err := UploadFile(ctx, cfg, "works.csv", "works.csv")
	if err == nil {
		t.Fatal("Expected error against unreachable host")
	}
	if !strings.Contains(err.Error(), "sftp:") {
		t.Errorf("Expected wrapped sftp error, got %v", err)
	}
}

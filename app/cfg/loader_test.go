package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		ResendAPIKey: "re_test_key",
		ContactTo:    "inbox@example.com",
		DevReqTo:     "staffing@example.com",
		FromAddress:  "Portfolio <onboarding@resend.dev>",
		ContentDir:   "./content",
		Port:         "8080",
		Timezone:     "UTC",
		Debug:        true,
		Version:      "test-version",
	}

	if cfg.ResendAPIKey != "re_test_key" {
		t.Errorf("Expected API key 're_test_key', got '%s'", cfg.ResendAPIKey)
	}
	if cfg.ContactTo != "inbox@example.com" {
		t.Errorf("Expected contact recipient 'inbox@example.com', got '%s'", cfg.ContactTo)
	}
	if cfg.DevReqTo != "staffing@example.com" {
		t.Errorf("Expected dev request recipient 'staffing@example.com', got '%s'", cfg.DevReqTo)
	}
	if cfg.FromAddress != "Portfolio <onboarding@resend.dev>" {
		t.Errorf("Expected from address 'Portfolio <onboarding@resend.dev>', got '%s'", cfg.FromAddress)
	}
	if cfg.ContentDir != "./content" {
		t.Errorf("Expected content dir './content', got '%s'", cfg.ContentDir)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("Expected timezone 'UTC', got '%s'", cfg.Timezone)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
}

func TestDefaultRecipient(t *testing.T) {
	if DefaultRecipient == "" {
		t.Error("DefaultRecipient must not be empty")
	}
}

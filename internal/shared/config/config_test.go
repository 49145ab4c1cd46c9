package config

import (
	"os"
	"testing"
)

func setRequiredEnvVars(t *testing.T) {
	t.Helper()
	t.Setenv("FIRESTORE_PROJECT_ID", "imovel-test")
}

func TestLoad_Success(t *testing.T) {
	setRequiredEnvVars(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Firestore.ProjectID != "imovel-test" {
		t.Errorf("Firestore.ProjectID = %q, want %q", cfg.Firestore.ProjectID, "imovel-test")
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "8080")
	}
	if cfg.Telemetry.ServiceName != "imovel-api" {
		t.Errorf("Telemetry.ServiceName = %q, want %q", cfg.Telemetry.ServiceName, "imovel-api")
	}
}

func TestLoad_MissingProjectID(t *testing.T) {
	t.Setenv("FIRESTORE_PROJECT_ID", "")
	os.Unsetenv("FIRESTORE_PROJECT_ID")

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error for missing FIRESTORE_PROJECT_ID, got nil")
	}
}

func TestLoad_TLSRequiresCertAndKey(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("TLS_ENABLED", "true")
	t.Setenv("TLS_CERT_PATH", "")
	t.Setenv("TLS_KEY_PATH", "")

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error for TLS without cert/key, got nil")
	}

	t.Setenv("TLS_CERT_PATH", "/tls/cert.pem")
	t.Setenv("TLS_KEY_PATH", "/tls/key.pem")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed with full TLS config: %v", err)
	}
	if !cfg.TLS.Enabled {
		t.Error("TLS.Enabled = false, want true")
	}
}

func TestLoad_AllowedHosts(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("ALLOWED_HOSTS", "imovel.example.com, api.imovel.example.com ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := []string{"imovel.example.com", "api.imovel.example.com"}
	if len(cfg.Server.AllowedHosts) != len(want) {
		t.Fatalf("AllowedHosts = %v, want %v", cfg.Server.AllowedHosts, want)
	}
	for i := range want {
		if cfg.Server.AllowedHosts[i] != want[i] {
			t.Errorf("AllowedHosts[%d] = %q, want %q", i, cfg.Server.AllowedHosts[i], want[i])
		}
	}
}

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.App.Port)
	}
	if cfg.Storage.Backend != StorageBackendFile {
		t.Fatalf("expected default file backend, got %q", cfg.Storage.Backend)
	}
	if cfg.Checkout.ServiceFee != "4.50" || cfg.Checkout.TaxRate != "0.08" {
		t.Fatalf("unexpected checkout defaults %+v", cfg.Checkout)
	}
	if cfg.Cart.NotificationTTL.Milliseconds() != 3200 {
		t.Fatalf("unexpected notification ttl %s", cfg.Cart.NotificationTTL)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("FOODHUB_STORAGE_BACKEND", "s3")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestLoadRejectsFileBackendWithoutDir(t *testing.T) {
	t.Setenv("FOODHUB_STORAGE_BACKEND", "file")
	t.Setenv("FOODHUB_STORAGE_FILE_DIR", "  ")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for blank file dir")
	}
}

func TestEnvHelpers(t *testing.T) {
	dev := AppConfig{Env: "Development"}
	if !dev.IsDev() || dev.IsProd() {
		t.Fatal("expected case-insensitive dev match")
	}
	prod := AppConfig{Env: "production"}
	if !prod.IsProd() || prod.IsDev() {
		t.Fatal("expected prod match")
	}
}

package redis

import "testing"

func TestParseOptionsHostPort(t *testing.T) {
	opt, err := parseOptions("cache.example.com:6379", "secret")
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if opt.Addr != "cache.example.com:6379" {
		t.Errorf("Addr = %q", opt.Addr)
	}
	if opt.Username != "default" || opt.Password != "secret" {
		t.Errorf("credentials = %q/%q", opt.Username, opt.Password)
	}
	if opt.TLSConfig == nil {
		t.Error("expected TLS for a bare host")
	}
}

func TestParseOptionsFullURL(t *testing.T) {
	opt, err := parseOptions("redis://localhost:6379/2", "fallback")
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if opt.Addr != "localhost:6379" || opt.DB != 2 {
		t.Errorf("Addr/DB = %q/%d", opt.Addr, opt.DB)
	}
	if opt.Password != "fallback" {
		t.Errorf("Password = %q, want fallback", opt.Password)
	}
	if opt.TLSConfig != nil {
		t.Error("unexpected TLS for redis://")
	}
}

func TestParseOptionsErrors(t *testing.T) {
	if _, err := parseOptions("", "x"); err == nil {
		t.Error("expected error for empty url")
	}
	if _, err := parseOptions("http://localhost", ""); err == nil {
		t.Error("expected error for unsupported scheme")
	}
}

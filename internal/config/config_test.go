package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 5000},
		Database: DatabaseConfig{Driver: DriverOpenSearch, Addrs: []string{"http://localhost:9200"}},
		Index:    IndexConfig{Name: "documents"},
	}
}

func TestValidate_OK(t *testing.T) {
	for _, driver := range []string{DriverOpenSearch, DriverRedis} {
		cfg := validConfig()
		cfg.Database.Driver = driver
		if err := cfg.Validate(); err != nil {
			t.Errorf("driver %q: unexpected error: %v", driver, err)
		}
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "valkey"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}

	expected := `database.driver must be "opensearch" or "redis", got "valkey"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	for _, port := range []int{-1, 0, 70000} {
		cfg := validConfig()
		cfg.HTTP.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for port %d", port)
		}
	}
}

func TestValidate_MissingAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing addrs")
	}
}

func TestValidate_MissingIndexName(t *testing.T) {
	cfg := validConfig()
	cfg.Index.Name = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing index name")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 5000 {
		t.Errorf("expected Port=5000, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.Driver != DriverOpenSearch {
		t.Errorf("expected Driver=opensearch, got %q", cfg.Database.Driver)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Index.Name != "documents" {
		t.Errorf("expected Name=documents, got %q", cfg.Index.Name)
	}
	if cfg.Index.Shards != 1 {
		t.Errorf("expected Shards=1, got %d", cfg.Index.Shards)
	}
	if cfg.Index.KeyPrefix != "docsearch:" {
		t.Errorf("expected KeyPrefix='docsearch:', got %q", cfg.Index.KeyPrefix)
	}
	if cfg.Bootstrap.MaxAttempts != 10 {
		t.Errorf("expected MaxAttempts=10, got %d", cfg.Bootstrap.MaxAttempts)
	}
	if cfg.Bootstrap.RetryIntervalSec != 5 {
		t.Errorf("expected RetryIntervalSec=5, got %d", cfg.Bootstrap.RetryIntervalSec)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:      HTTPConfig{Port: 8080, ReadTimeoutSec: 30},
		Database:  DatabaseConfig{Driver: DriverRedis},
		Index:     IndexConfig{Name: "docs", Shards: 3, KeyPrefix: "custom:"},
		Bootstrap: BootstrapConfig{MaxAttempts: 2, RetryIntervalSec: 1},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 8080 {
		t.Errorf("expected Port=8080, got %d", cfg.HTTP.Port)
	}
	if cfg.Database.Driver != DriverRedis {
		t.Errorf("expected Driver=redis, got %q", cfg.Database.Driver)
	}
	if cfg.Index.Shards != 3 || cfg.Index.KeyPrefix != "custom:" || cfg.Index.Name != "docs" {
		t.Errorf("index overridden: %+v", cfg.Index)
	}
	if cfg.Bootstrap.MaxAttempts != 2 || cfg.Bootstrap.RetryIntervalSec != 1 {
		t.Errorf("bootstrap overridden: %+v", cfg.Bootstrap)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("DOCSEARCH_TEST_ADDR", "http://opensearch:9200")
	t.Setenv("DOCSEARCH_TEST_EMPTY", "")

	tests := []struct {
		in   string
		want string
	}{
		{"addr: ${DOCSEARCH_TEST_ADDR}", "addr: http://opensearch:9200"},
		{"addr: ${DOCSEARCH_TEST_ADDR:-x}", "addr: http://opensearch:9200"},
		{"addr: ${DOCSEARCH_TEST_EMPTY:-fallback}", "addr: fallback"},
		{"addr: ${DOCSEARCH_TEST_UNSET_VAR}", "addr: "},
		{"plain: value", "plain: value"},
	}

	for _, tc := range tests {
		if got := string(expandEnvVars([]byte(tc.in))); got != tc.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := `
http:
  port: ${DOCSEARCH_TEST_PORT:-5001}
database:
  driver: redis
  addrs:
    - "localhost:6379"
seed:
  random_seed: 42
`
	if err := os.WriteFile(filepath.Join(dir, "config", "unittest.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load("unittest")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 5001 {
		t.Errorf("expected Port=5001, got %d", cfg.HTTP.Port)
	}
	if cfg.Database.Driver != DriverRedis || cfg.Database.Addrs[0] != "localhost:6379" {
		t.Errorf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.Seed.RandomSeed != 42 {
		t.Errorf("expected RandomSeed=42, got %d", cfg.Seed.RandomSeed)
	}
	if cfg.Index.Name != "documents" {
		t.Errorf("defaults not applied: %+v", cfg.Index)
	}
}

func TestLoad_Missing(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Load("does-not-exist"); err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv() = %q, want local", got)
	}
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv() = %q, want prod", got)
	}
}

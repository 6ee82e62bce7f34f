package main

import (
	"bytes"
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by config.Load
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set build info variables
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2025-09-26") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

// ----------------- Tests for run -----------------

func TestRun_MissingAPIKey(t *testing.T) {
	resetEnv()

	if code := run(context.Background(), "nonexistent.env"); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}

func TestRun_RejectedAPIKey(t *testing.T) {
	resetEnv()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	errorLog := filepath.Join(t.TempDir(), "etl_errors.log")
	os.Setenv("CURRENCYBEACON_API_KEY", "bad")
	os.Setenv("CURRENCYBEACON_BASE_URL", srv.URL)
	os.Setenv("ERROR_LOG_PATH", errorLog)

	if code := run(context.Background(), "nonexistent.env"); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}

	data, err := os.ReadFile(errorLog)
	if err != nil {
		t.Fatalf("error log not written: %v", err)
	}
	if !contains(string(data), "authentication error") {
		t.Errorf("error log does not mention the rejected key:\n%s", data)
	}
}

func TestRun_InvalidLogLevel(t *testing.T) {
	resetEnv()
	os.Setenv("CURRENCYBEACON_API_KEY", "key")
	os.Setenv("APP_LOG_LEVEL", "loud")

	if code := run(context.Background(), "nonexistent.env"); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "No args", args: nil},
		{name: "Not an integer", args: []string{"abc"}},
		{name: "Negative port", args: []string{"-1"}},
		{name: "Negative port after separator", args: []string{"--", "-1"}},
		{name: "Port out of range", args: []string{"70000"}},
		{name: "Two positionals", args: []string{"1", "2"}},
		{name: "Unknown flag", args: []string{"-verbose", "8080"}},
		{name: "Help", args: []string{"-h"}},
		{name: "Flag without value", args: []string{"8080", "-root"}},
		{name: "Missing config file", args: []string{"-config", "/nonexistent/httpd.toml", "8080"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if code := run(context.Background(), tt.args, &stderr); code != exUsage {
				t.Errorf("run(%q) = %d, want %d; stderr: %s", tt.args, code, exUsage, stderr.String())
			}
			if stderr.Len() == 0 {
				t.Error("expected a message on stderr")
			}
		})
	}
}

func TestRun_UsageText(t *testing.T) {
	var stderr bytes.Buffer
	run(context.Background(), nil, &stderr)
	if !strings.Contains(stderr.String(), "Usage: httpd [options] PORT") {
		t.Errorf("unexpected usage text %q", stderr.String())
	}
}

func TestParseArgs_FlagsAfterPort(t *testing.T) {
	var stderr bytes.Buffer
	opts, err := parseArgs([]string{"-host", "127.0.0.1", "8080", "-root", "www"}, &stderr)
	if err != nil {
		t.Fatalf("parseArgs() error: %v", err)
	}
	if opts.port != "8080" || opts.host != "127.0.0.1" || opts.root != "www" {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestRun_StopsWhenCancelled(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("ok"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stderr bytes.Buffer
	if code := run(ctx, []string{"-host", "127.0.0.1", "0", "-root", root}, &stderr); code != 0 {
		t.Errorf("run() = %d, want 0; stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "Starting http server on port") {
		t.Errorf("missing bind log in %q", stderr.String())
	}
}

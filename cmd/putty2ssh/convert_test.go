package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testExport = "Windows Registry Editor Version 5.00\r\n" +
	"\r\n" +
	"[\\Software\\SimonTatham\\PuTTY\\Sessions\\cli-test]\r\n" +
	"\"HostName\"=hex(1):31,00,30,00,2e,00,30,00,2e,00,30,00,2e,00,31,00,00,00\r\n" +
	"\"Protocol\"=hex(1):73,00,73,00,68,00,00,00\r\n" +
	"\"PortNumber\"=dword:00000016\r\n"

// writeTestExport drops a .reg file into a temp dir and returns its path
func writeTestExport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sessions.reg")
	if err := os.WriteFile(path, []byte(testExport), 0o644); err != nil {
		t.Fatalf("writing test export: %v", err)
	}
	return path
}

// resetFlags restores the package-level flag state after a test
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		outputPath = ""
		includeDefaultSettings = false
		verbose = false
		quiet = false
	})
}

// captureStdout captures stdout while running a function
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = origStdout

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured output: %v", err)
	}
	return string(out), runErr
}

func TestRunConvertToStdout(t *testing.T) {
	resetFlags(t)
	regPath := writeTestExport(t)

	out, err := captureStdout(t, func() error {
		return runConvert(regPath)
	})
	if err != nil {
		t.Fatalf("runConvert: %v", err)
	}

	for _, want := range []string{"Host cli-test", "HostName 10.0.0.1", "Port 22"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunConvertToFile(t *testing.T) {
	resetFlags(t)
	regPath := writeTestExport(t)
	outputPath = filepath.Join(t.TempDir(), "config")

	out, err := captureStdout(t, func() error {
		return runConvert(regPath)
	})
	if err != nil {
		t.Fatalf("runConvert: %v", err)
	}
	if out != "" {
		t.Errorf("expected no stdout output when writing to a file, got %q", out)
	}

	written, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if !strings.Contains(string(written), "Host cli-test") {
		t.Errorf("output file missing host block:\n%s", written)
	}
}

func TestRunConvertMissingFile(t *testing.T) {
	resetFlags(t)

	err := runConvert(filepath.Join(t.TempDir(), "nope.reg"))
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
	if !strings.Contains(err.Error(), "nope.reg") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestRunConvertIncludeDefaultSettings(t *testing.T) {
	resetFlags(t)

	export := "Windows Registry Editor Version 5.00\r\n" +
		"\r\n" +
		"[\\Software\\SimonTatham\\PuTTY\\Sessions\\Default%20Settings]\r\n" +
		"\"HostName\"=hex(1):68,00,00,00\r\n" +
		"\"Protocol\"=hex(1):73,00,73,00,68,00,00,00\r\n"
	regPath := filepath.Join(t.TempDir(), "sessions.reg")
	if err := os.WriteFile(regPath, []byte(export), 0o644); err != nil {
		t.Fatalf("writing test export: %v", err)
	}

	out, err := captureStdout(t, func() error {
		return runConvert(regPath)
	})
	if err != nil {
		t.Fatalf("runConvert: %v", err)
	}
	if strings.Contains(out, "Default Settings") {
		t.Errorf("template session should be excluded by default:\n%s", out)
	}

	includeDefaultSettings = true
	out, err = captureStdout(t, func() error {
		return runConvert(regPath)
	})
	if err != nil {
		t.Fatalf("runConvert: %v", err)
	}
	if !strings.Contains(out, `Host "Default Settings"`) {
		t.Errorf("template session should be included when requested:\n%s", out)
	}
}

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/salesdash/scaffolder/internal/scaffold"
)

// runCLI executes the root command in a fresh working directory with an
// isolated HOME and returns captured stdout and stderr.
func runCLI(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()

	oldWD, wdErr := os.Getwd()
	if wdErr != nil {
		t.Fatalf("getting working directory: %v", wdErr)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing to %s: %v", dir, err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })
	t.Setenv("HOME", t.TempDir())

	listJSON, versionShort, versionJSON = false, false, false
	if err := rootCmd.PersistentFlags().Set("verbose", "false"); err != nil {
		t.Fatalf("resetting verbose flag: %v", err)
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootScaffolds(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, err := runCLI(t, dir)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if stdout != completionMessage+"\n" {
		t.Errorf("stdout = %q, want single completion line", stdout)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty without --verbose", stderr)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "components"))
	if err != nil {
		t.Fatalf("reading components: %v", err)
	}
	if len(entries) != 11 {
		t.Errorf("components has %d entries, want 11", len(entries))
	}
}

func TestRootRerun(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := runCLI(t, dir); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	header := filepath.Join(dir, "components", "Header.jsx")
	if err := os.WriteFile(header, []byte("<header/>"), 0644); err != nil {
		t.Fatalf("writing Header.jsx: %v", err)
	}
	if _, _, err := runCLI(t, dir); err != nil {
		t.Fatalf("second run error: %v", err)
	}

	info, err := os.Stat(header)
	if err != nil {
		t.Fatalf("stat Header.jsx: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("Header.jsx size = %d, want 0 after rerun", info.Size())
	}
}

func TestRootVerbose(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, err := runCLI(t, dir, "--verbose")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if strings.Count(stdout, "\n") != 1 {
		t.Errorf("stdout should hold one line, got %q", stdout)
	}
	if strings.Count(stderr, "Created ") != 11 {
		t.Errorf("expected 11 progress lines on stderr, got:\n%s", stderr)
	}
}

func TestRootBlockedByFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "components"), nil, 0644); err != nil {
		t.Fatalf("writing blocker: %v", err)
	}

	stdout, _, err := runCLI(t, dir)
	var fsErr *scaffold.FilesystemError
	if !errors.As(err, &fsErr) {
		t.Fatalf("error = %v, want *scaffold.FilesystemError", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty on failure", stdout)
	}
}

func TestRootRejectsArguments(t *testing.T) {
	if _, _, err := runCLI(t, t.TempDir(), "extra"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestVerifyCommand(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := runCLI(t, dir, "verify"); err == nil {
		t.Error("verify should fail before scaffolding")
	}

	if _, _, err := runCLI(t, dir); err != nil {
		t.Fatalf("scaffold error: %v", err)
	}
	stdout, _, err := runCLI(t, dir, "verify")
	if err != nil {
		t.Fatalf("verify after scaffold error: %v", err)
	}
	if !strings.Contains(stdout, "11 files present") {
		t.Errorf("verify output = %q", stdout)
	}

	os.WriteFile(filepath.Join(dir, "components", "Extra.jsx"), nil, 0644)
	stdout, _, err = runCLI(t, dir, "verify")
	if err == nil {
		t.Fatal("verify should fail with an unexpected entry")
	}
	if !strings.Contains(stdout, "Extra.jsx") {
		t.Errorf("verify output should name Extra.jsx, got %q", stdout)
	}
}

func TestListCommand(t *testing.T) {
	stdout, _, err := runCLI(t, t.TempDir(), "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if !strings.HasPrefix(stdout, "components/\n") {
		t.Errorf("list output should start with base path, got %q", stdout)
	}
	if !strings.Contains(stdout, "  SearchAndControls.jsx\n") {
		t.Errorf("list output missing SearchAndControls.jsx: %q", stdout)
	}

	stdout, _, err = runCLI(t, t.TempDir(), "list", "--json")
	if err != nil {
		t.Fatalf("list --json error: %v", err)
	}
	var out listOutput
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("decoding list JSON: %v", err)
	}
	if out.BasePath != "components" || len(out.Files) != 11 {
		t.Errorf("list JSON = %+v", out)
	}
}

func TestVersionCommand(t *testing.T) {
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-01-01"

	stdout, _, err := runCLI(t, t.TempDir(), "version", "--short")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if stdout != "1.2.3\n" {
		t.Errorf("version --short = %q, want %q", stdout, "1.2.3\n")
	}

	stdout, _, err = runCLI(t, t.TempDir(), "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.Contains(stdout, "scaffolder version 1.2.3 (commit: abc123") {
		t.Errorf("version output = %q", stdout)
	}
}

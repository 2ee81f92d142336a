package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and exercises its cheap surface: version,
// help, listing and flag validation. A real tuning run takes minutes, so it
// stays out of the test suite.
func TestCLI_E2E(t *testing.T) {
	tmpDir := t.TempDir()
	binName := "bigtune"
	if runtime.GOOS == "windows" {
		binName = "bigtune.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs with the package directory as CWD; the module root is
	// two levels up.
	build := exec.Command("go", "build", "-o", binPath, "./cmd/bigtune")
	build.Dir = "../.."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to build bigtune: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "bigtune",
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "List Pairs",
			args:     []string{"-list"},
			wantOut:  "mul",
			wantCode: 0,
		},
		{
			name:     "Bash Completion",
			args:     []string{"-completion", "bash"},
			wantOut:  "complete -F _bigtune_completions",
			wantCode: 0,
		},
		{
			name:     "Unknown Flag",
			args:     []string{"-bogus"},
			wantOut:  "",
			wantCode: 1,
		},
		{
			name:     "Unknown Pair",
			args:     []string{"-pair", "sqrt"},
			wantOut:  "",
			wantCode: 1,
		},
		{
			name:     "Start Out Of Range",
			args:     []string{"-start", "99"},
			wantOut:  "",
			wantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()

			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
				}
			} else if err == nil {
				t.Errorf("Expected non-zero exit code, but command succeeded.\nOutput: %s", outStr)
			}

			if tt.wantOut != "" {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
				}
			}
		})
	}
}

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildCLI compiles the updateversion binary from the repository root into a
// temp directory and returns its path.
func buildCLI(t *testing.T) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "updateversion")
	buildCmd := exec.Command("go", "build", "-o", binPath, "../..")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build CLI binary: %v; build output: %s", err, out)
	}
	return binPath
}

func TestCLIBinaryPinIntegration(t *testing.T) {
	binPath := buildCLI(t)

	tmpDir := t.TempDir()
	asmInfo := filepath.Join(tmpDir, "AssemblyInfo.cs")
	content := `using System.Reflection;

[assembly: AssemblyVersion("9.9.9.9")]
[assembly: AssemblyFileVersion("9.9.9.9")]
`
	if err := os.WriteFile(asmInfo, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write AssemblyInfo.cs: %v", err)
	}

	cliCmd := exec.Command(binPath, "-i", asmInfo, "-o", asmInfo, "--pin", "1.2.3.4")
	var cliStdout, cliStderr bytes.Buffer
	cliCmd.Stdout = &cliStdout
	cliCmd.Stderr = &cliStderr
	if err := cliCmd.Run(); err != nil {
		t.Fatalf("CLI command failed: %v; stdout: %s; stderr: %s", err, cliStdout.String(), cliStderr.String())
	}

	updated, err := os.ReadFile(asmInfo)
	if err != nil {
		t.Fatalf("failed to read AssemblyInfo.cs: %v", err)
	}
	if !strings.Contains(string(updated), `AssemblyVersion("1.2.3.4")`) {
		t.Errorf("assembly version not pinned; got:\n%s", updated)
	}
	// Only the assembly attribute is targeted; the file attribute stays.
	if !strings.Contains(string(updated), `AssemblyFileVersion("9.9.9.9")`) {
		t.Errorf("file version should be untouched; got:\n%s", updated)
	}
}

func TestCLIBinaryIncrementStdinIntegration(t *testing.T) {
	binPath := buildCLI(t)

	input := `[assembly: AssemblyVersion("1.2.3.4")]` + "\n"
	cliCmd := exec.Command(binPath, "-b", "increment", "-r", "fixed")
	cliCmd.Stdin = strings.NewReader(input)
	var cliStdout, cliStderr bytes.Buffer
	cliCmd.Stdout = &cliStdout
	cliCmd.Stderr = &cliStderr
	if err := cliCmd.Run(); err != nil {
		t.Fatalf("CLI command failed: %v; stderr: %s", err, cliStderr.String())
	}

	want := `[assembly: AssemblyVersion("1.2.4.4")]` + "\n"
	if cliStdout.String() != want {
		t.Errorf("stdout = %q, want %q", cliStdout.String(), want)
	}
}

func TestCLIBinaryNoMatchIntegration(t *testing.T) {
	binPath := buildCLI(t)

	cliCmd := exec.Command(binPath, "-b", "increment")
	cliCmd.Stdin = strings.NewReader("no version here")
	var cliStdout, cliStderr bytes.Buffer
	cliCmd.Stdout = &cliStdout
	cliCmd.Stderr = &cliStderr
	if err := cliCmd.Run(); err != nil {
		t.Fatalf("no-match must exit zero: %v; stderr: %s", err, cliStderr.String())
	}
	if cliStdout.String() != "no version here" {
		t.Errorf("output must equal input, got %q", cliStdout.String())
	}
	if !strings.Contains(cliStderr.String(), "no version attribute found") {
		t.Errorf("expected warning on stderr, got:\n%s", cliStderr.String())
	}
}

package extcmd

import (
	"os"
	"testing"
)

func TestShellBinaryPrefersCLIFMShell(t *testing.T) {
	t.Setenv("CLIFM_SHELL", "/bin/zsh")
	t.Setenv("SHELL", "/bin/bash")
	if got := shellBinary(); got != "/bin/zsh" {
		t.Fatalf("expected CLIFM_SHELL to win, got %q", got)
	}
}

func TestShellBinaryFallsBackToSHELL(t *testing.T) {
	os.Unsetenv("CLIFM_SHELL")
	t.Setenv("SHELL", "/bin/dash")
	if got := shellBinary(); got != "/bin/dash" {
		t.Fatalf("expected SHELL fallback, got %q", got)
	}
}

func TestShellBinaryDefaultsToBinSh(t *testing.T) {
	os.Unsetenv("CLIFM_SHELL")
	os.Unsetenv("SHELL")
	if got := shellBinary(); got != "/bin/sh" {
		t.Fatalf("expected /bin/sh default, got %q", got)
	}
}

func TestSpawnForeground(t *testing.T) {
	t.Setenv("CLIFM_SHELL", "/bin/sh")
	res, err := Spawn("exit 3")
	if err != nil {
		t.Fatal(err)
	}
	if res.Background {
		t.Fatalf("expected foreground result")
	}
	if res.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d", res.ExitCode)
	}
}

func TestSpawnBackgroundTrimsAmpersand(t *testing.T) {
	t.Setenv("CLIFM_SHELL", "/bin/sh")
	res, err := Spawn("sleep 0 &")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Background {
		t.Fatalf("expected background result for trailing &")
	}
}

func TestShellTypePath(t *testing.T) {
	if Bash.Path() != "bash" {
		t.Fatalf("unexpected path for Bash: %q", Bash.Path())
	}
	if ShellType("").Path() != "bash" {
		t.Fatalf("expected empty ShellType to default to bash")
	}
}

func TestDetectFromEnv(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")
	if got := Detect(); got != Zsh {
		t.Fatalf("expected Zsh from $SHELL, got %v", got)
	}
}

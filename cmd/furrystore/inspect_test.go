package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInspect_MergeFansOutOnce(t *testing.T) {
	out, err := execute(t, "inspect", "--set", "number=2", "--set", "string=B")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out, "writes: 1 accepted, 0 suppressed") {
		t.Fatalf("expected one accepted merge, got %q", out)
	}
	if strings.Count(out, "record -> ") != 1 {
		t.Fatalf("expected one whole-record notification, got %q", out)
	}
	if !strings.Contains(out, "field number -> 2") || !strings.Contains(out, "field string -> B") {
		t.Fatalf("expected both field notifications, got %q", out)
	}
	if !strings.Contains(out, `"number": 2`) {
		t.Fatalf("expected final record json, got %q", out)
	}
}

func TestInspect_EachSuppressesSameValue(t *testing.T) {
	out, err := execute(t, "inspect", "--each", "--set", "number=1", "--set", "number=3")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out, "writes: 1 accepted, 1 suppressed") {
		t.Fatalf("expected same-value write suppressed, got %q", out)
	}
}

func TestInspect_SeedAndFormats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	if err := os.WriteFile(path, []byte("number = 7\nlabel = \"x\"\n"), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	out, err := execute(t, "inspect", "--seed", path, "--format", "markdown")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out, "| number | int | 7 |") || !strings.Contains(out, "| label | string | x |") {
		t.Fatalf("expected markdown rows from seed, got %q", out)
	}

	out, err = execute(t, "inspect", "--format", "html")
	if err != nil || !strings.Contains(out, "<table>") {
		t.Fatalf("expected html output, got %q %v", out, err)
	}
}

func TestInspect_Errors(t *testing.T) {
	if _, err := execute(t, "inspect", "--set", "broken"); err == nil {
		t.Fatalf("expected invalid assignment error")
	}
	if _, err := execute(t, "inspect", "--format", "xml"); err == nil {
		t.Fatalf("expected unknown format error")
	}
	if _, err := execute(t, "inspect", "--seed", "seed.ini"); err == nil {
		t.Fatalf("expected unsupported seed error")
	}
	if _, err := execute(t, "demo", "--watch"); err == nil {
		t.Fatalf("expected --watch without --seed to fail")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil || !strings.Contains(out, "furrystore dev") {
		t.Fatalf("unexpected version output %q %v", out, err)
	}
}

func TestVerboseLogsStoreActivity(t *testing.T) {
	out, err := execute(t, "inspect", "-v", "--set", "number=1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out, "merge suppressed") {
		t.Fatalf("expected debug log for suppressed merge, got %q", out)
	}
}

package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/odvcencio/furry-store/store"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_Formats(t *testing.T) {
	want := store.Record{"number": 1, "string": "A"}
	cases := []struct {
		name    string
		content string
	}{
		{"seed.yaml", "number: 1\nstring: A\n"},
		{"seed.yml", "number: 1\nstring: A\n"},
		{"seed.toml", "number = 1\nstring = \"A\"\n"},
		{"seed.json", `{"number": 1, "string": "A"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := Load(writeFile(t, tc.name, tc.content))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !rec.Equal(want) {
				t.Fatalf("expected %v, got %v (%T)", want, rec, rec["number"])
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(writeFile(t, "seed.ini", "x=1")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := Load(writeFile(t, "bad.json", "{")); err == nil {
		t.Fatalf("expected parse error for bad json")
	}
}

func TestParse_Empty(t *testing.T) {
	rec, err := Parse([]byte("  \n"), FormatYAML)
	if err != nil || rec == nil || len(rec) != 0 {
		t.Fatalf("expected empty record, got %v %v", rec, err)
	}
	if _, err := Parse([]byte("a: 1"), Format("xml")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestParse_JSONFloat(t *testing.T) {
	rec, err := Parse([]byte(`{"ratio": 0.5}`), FormatJSON)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec["ratio"] != 0.5 {
		t.Fatalf("expected float 0.5, got %v (%T)", rec["ratio"], rec["ratio"])
	}
}

func TestParseAssignment(t *testing.T) {
	cases := []struct {
		in    string
		key   string
		value any
	}{
		{"number=10", "number", 10},
		{"string=Hello", "string", "Hello"},
		{"flag=true", "flag", true},
		{" spaced = B ", "spaced", "B"},
		{"empty=", "empty", ""},
	}
	for _, tc := range cases {
		key, value, err := ParseAssignment(tc.in)
		if err != nil {
			t.Fatalf("%q: expected no error, got %v", tc.in, err)
		}
		if key != tc.key || value != tc.value {
			t.Fatalf("%q: expected %s=%v, got %s=%v", tc.in, tc.key, tc.value, key, value)
		}
	}

	for _, bad := range []string{"novalue", "=1"} {
		if _, _, err := ParseAssignment(bad); !errors.Is(err, ErrInvalidAssignment) {
			t.Fatalf("%q: expected ErrInvalidAssignment, got %v", bad, err)
		}
	}
}

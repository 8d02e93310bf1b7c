package processing

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverInputs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.csv"), "x\n1\n")
	writeFile(t, filepath.Join(root, "sub", "b.csv"), "x\n1\n")
	writeFile(t, filepath.Join(root, "sub", "b-out.csv"), "x\n1\n")
	writeFile(t, filepath.Join(root, "notes.txt"), "ignored")

	inputs, err := DiscoverInputs(root, DefaultPattern)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(root, "a.csv"),
		filepath.Join(root, "sub", "b.csv"),
	}
	if len(inputs) != len(want) {
		t.Fatalf("inputs = %v, want %v", inputs, want)
	}
	for i := range want {
		if inputs[i] != want[i] {
			t.Errorf("inputs[%d] = %q, want %q", i, inputs[i], want[i])
		}
	}
}

func TestDiscoverInputs_ShallowPattern(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.csv"), "x\n1\n")
	writeFile(t, filepath.Join(root, "sub", "b.csv"), "x\n1\n")

	inputs, err := DiscoverInputs(root, "*.csv")
	if err != nil {
		t.Fatal(err)
	}
	if len(inputs) != 1 || inputs[0] != filepath.Join(root, "a.csv") {
		t.Errorf("inputs = %v, want only the root-level file", inputs)
	}
}

func TestDiscoverInputs_BadPattern(t *testing.T) {
	if _, err := DiscoverInputs(t.TempDir(), "[broken"); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a.csv", "a-out.csv"},
		{filepath.Join("dir", "b.csv"), filepath.Join("dir", "b-out.csv")},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.in); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReadJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	in := []json.RawMessage{
		json.RawMessage(`{"a":1}`),
		json.RawMessage(`{"b":"二"}`),
	}
	if err := writeJSONL(path, in); err != nil {
		t.Fatalf("writeJSONL failed: %v", err)
	}

	out, skipped, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d records, want %d", len(out), len(in))
	}
	for i := range in {
		if string(out[i]) != string(in[i]) {
			t.Errorf("record %d = %s, want %s", i, out[i], in[i])
		}
	}
}

func TestWriteJSONLReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.jsonl")
	if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := writeJSONL(path, nil); err != nil {
		t.Fatalf("writeJSONL failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty file, got %q", data)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestReadJSONLSkipsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.jsonl")
	if err := os.WriteFile(path, []byte("{\"ok\":true}\n{broken\n\n[1,2]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, skipped, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if len(out) != 2 || skipped != 1 {
		t.Errorf("got %d records, %d skipped; want 2, 1", len(out), skipped)
	}
}

func TestWriteJSONLMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.jsonl")
	if err := writeJSONL(path, nil); err == nil {
		t.Error("expected error for missing directory")
	}
}

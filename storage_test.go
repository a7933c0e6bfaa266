package deniverse

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadDocumentMissingFile(t *testing.T) {
	var v map[string]string
	err := readDocument(filepath.Join(t.TempDir(), AgendaFile), &v)
	if !isNotExist(err) {
		t.Errorf("readDocument on a missing file: %v, want not-exist", err)
	}
}

func TestWriteDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", AgendaFile)
	in := map[string]string{"2026-03-14": "pi day"}
	if err := writeDocument(path, in); err != nil {
		t.Fatalf("writeDocument: %v", err)
	}

	var out map[string]string
	if err := readDocument(path, &out); err != nil {
		t.Fatalf("readDocument: %v", err)
	}
	if out["2026-03-14"] != "pi day" {
		t.Errorf("round trip lost data: %+v", out)
	}
}

func TestWriteDocumentLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := writeDocument(filepath.Join(dir, AgendaFile), map[string]int{"a": 1}); err != nil {
		t.Fatalf("writeDocument: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), tempFilePrefix) {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestWriteDocumentIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, AgendaFile)
	doc := map[string]string{"b": "2", "a": "1", "c": "3"}

	if err := writeDocument(path, doc); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := writeDocument(path, doc); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("same document serialized differently:\n%s\n%s", first, second)
	}
	if !strings.HasSuffix(string(first), "\n") {
		t.Error("document should end with a newline")
	}
}

func TestWriteDocumentReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FinanceFile)

	if err := writeDocument(path, map[string]int{"v": 1}); err != nil {
		t.Fatal(err)
	}
	if err := writeDocument(path, map[string]int{"v": 2}); err != nil {
		t.Fatal(err)
	}

	var out map[string]int
	if err := readDocument(path, &out); err != nil {
		t.Fatal(err)
	}
	if out["v"] != 2 {
		t.Errorf("document = %+v, want v=2", out)
	}
}

package sample

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fnolagent/internal/model"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()

	paths, err := Generate(filepath.Join(dir, "sample_fnols"))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(paths) != 5 {
		t.Fatalf("expected 5 documents, got %d", len(paths))
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if !strings.Contains(string(data), "FIRST NOTICE OF LOSS") {
			t.Errorf("%s missing FNOL header", filepath.Base(path))
		}
	}
}

func TestDocuments_CoverEveryRoute(t *testing.T) {
	seen := make(map[model.Route]bool)
	for _, doc := range Documents() {
		seen[doc.Route] = true
	}

	for _, route := range model.Routes() {
		if !seen[route] {
			t.Errorf("no sample document expects route %s", route)
		}
	}
}

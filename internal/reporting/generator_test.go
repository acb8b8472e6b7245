package reporting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGenerator_WritesTimestampedFiles(t *testing.T) {
	dir := t.TempDir()

	a, err := Build("12345", sampleScan(), time.Date(2025, 1, 4, 12, 30, 45, 0, time.UTC))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	paths, err := NewGenerator(dir).Write(a)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 files, got %d", len(paths))
	}

	base := "lottery_analysis_12345_20250104_123045"
	for i, ext := range []string{".json", ".md", ".csv"} {
		want := filepath.Join(dir, base+ext)
		if paths[i] != want {
			t.Errorf("expected path %s, got %s", want, paths[i])
		}
		data, err := os.ReadFile(want)
		if err != nil {
			t.Fatalf("read %s: %v", want, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", want)
		}
	}
}

func TestGenerator_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")

	a, err := Build("00001", sampleScan(), time.Now().UTC())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, err := NewGenerator(dir).Write(a); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output dir not created: %v", err)
	}
}

func TestGenerator_RunsDoNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	gen := NewGenerator(dir)

	first, err := Build("12345", sampleScan(), time.Date(2025, 1, 4, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	second, err := Build("12345", sampleScan(), time.Date(2025, 1, 11, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, err := gen.Write(first); err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	if _, err := gen.Write(second); err != nil {
		t.Fatalf("second Write failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	jsonFiles := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".json") {
			jsonFiles++
		}
	}
	if jsonFiles != 2 {
		t.Errorf("expected 2 JSON reports, got %d", jsonFiles)
	}
}

package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/arcade/internal/adapters/fs"
	"github.com/example/arcade/internal/core/library"
)

func writeFile(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte("binary"), mode); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return path
}

func TestScanner_Scan_FindsExeFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "BeatVR.exe", 0o644)

	scanner := fs.NewScanner()
	found, err := scanner.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(found) != 1 {
		t.Fatalf("expected 1 executable, got %d", len(found))
	}
	if found["BeatVR"] != path {
		t.Errorf("expected BeatVR at '%s', got '%s'", path, found["BeatVR"])
	}
}

func TestScanner_Scan_StripsExtensionFromName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Half-Life 2.exe", 0o644)

	scanner := fs.NewScanner()
	found, err := scanner.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if _, ok := found["Half-Life 2"]; !ok {
		t.Errorf("expected display name without extension, got %v", found)
	}
	if _, ok := found["Half-Life 2.exe"]; ok {
		t.Error("display name must not include the extension")
	}
}

func TestScanner_Scan_FindsExecutableModeBits(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "aurora", 0o755)

	scanner := fs.NewScanner()
	found, err := scanner.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if _, ok := found["aurora"]; !ok {
		t.Errorf("expected executable-mode file to be discovered, got %v", found)
	}
}

func TestScanner_Scan_IgnoresPlainFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "readme.txt", 0o644)
	writeFile(t, dir, "save.dat", 0o644)

	scanner := fs.NewScanner()
	found, err := scanner.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(found) != 0 {
		t.Errorf("expected no executables, got %v", found)
	}
}

func TestScanner_Scan_Recursive(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, filepath.Join("SteamLibrary", "BeatVR", "bin", "BeatVR.exe"), 0o644)

	scanner := fs.NewScanner()
	found, err := scanner.Scan(context.Background(), dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if found["BeatVR"] != path {
		t.Errorf("expected nested executable to be discovered, got %v", found)
	}
}

func TestScanner_Scan_MissingFolder(t *testing.T) {
	scanner := fs.NewScanner()
	_, err := scanner.Scan(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	if !errors.Is(err, library.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing folder, got %v", err)
	}
}

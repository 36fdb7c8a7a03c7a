package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "nested", "gallery")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := EnsureDir(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := EnsureDir(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestEnsureDir_EmptyPath(t *testing.T) {
	if err := EnsureDir(""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestDataDir(t *testing.T) {
	dir, err := DataDir()
	if err != nil {
		t.Skipf("No user config directory available: %v", err)
	}

	if dir == "" {
		t.Fatal("Data directory is empty")
	}

	if !IsAndroid() && filepath.Base(dir) != AppDirName {
		t.Errorf("Expected directory to end with %q, got: %s", AppDirName, dir)
	}
}

func TestDefaultPaths(t *testing.T) {
	storePath, err := DefaultStorePath()
	if err != nil {
		t.Skipf("No user config directory available: %v", err)
	}
	if filepath.Base(storePath) != StoreFileName {
		t.Errorf("Expected store file %s, got: %s", StoreFileName, storePath)
	}

	configPath, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("Failed to get config path: %v", err)
	}
	if filepath.Base(configPath) != ConfigFileName {
		t.Errorf("Expected config file %s, got: %s", ConfigFileName, configPath)
	}

	if filepath.Dir(storePath) != filepath.Dir(configPath) {
		t.Errorf("Store and config should share a directory: %s vs %s", storePath, configPath)
	}
}

func TestDefaultExportDir(t *testing.T) {
	dir, err := DefaultExportDir()
	if err != nil {
		t.Skipf("No home directory available: %v", err)
	}
	if IsAndroid() {
		if !strings.HasPrefix(dir, AndroidFilesDir) {
			t.Errorf("Expected export dir under %s, got: %s", AndroidFilesDir, dir)
		}
		return
	}
	if filepath.Base(dir) != AppDirName {
		t.Errorf("Expected export dir to end with %q, got: %s", AppDirName, dir)
	}
	if filepath.Base(filepath.Dir(dir)) != PicturesDirName {
		t.Errorf("Expected export dir inside %s, got: %s", PicturesDirName, dir)
	}
}

func TestOpenURL_RejectsNonWebURL(t *testing.T) {
	tests := []string{
		"",
		"/tmp/file.jpg",
		"file:///etc/passwd",
		"javascript:alert(1)",
	}

	for _, input := range tests {
		err := OpenURL(input)
		if err == nil {
			t.Errorf("OpenURL(%q) expected error, got nil", input)
			continue
		}
		if !strings.Contains(err.Error(), "not a web URL") {
			t.Errorf("OpenURL(%q) error = %v, expected 'not a web URL'", input, err)
		}
	}
}

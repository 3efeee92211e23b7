package roles

import (
	"os"
	"path/filepath"
	"testing"
)

const libraryJSON = `[
  {
    "title": "Backend Engineer",
    "category": "engineering",
    "seniority": "mid",
    "requiredSkills": [{"term": "Go", "weight": 2}],
    "preferredSkills": [],
    "commonKeywords": [{"term": "microservices", "weight": 2}]
  }
]`

func writeLibraryFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roles.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLibraryFile(t *testing.T) {
	path := writeLibraryFile(t, libraryJSON)
	profiles, err := LoadLibraryFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(profiles) != 1 || profiles[0].Title != "Backend Engineer" {
		t.Errorf("profiles = %+v", profiles)
	}
}

func TestLoadLibraryFileErrors(t *testing.T) {
	if _, err := LoadLibraryFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadLibraryFile(writeLibraryFile(t, "not json")); err == nil {
		t.Error("expected error for malformed file")
	}
	if _, err := LoadLibraryFile(writeLibraryFile(t, "[]")); err == nil {
		t.Error("expected error for empty library")
	}
}

func TestWatcherStartLoadsLibrary(t *testing.T) {
	path := writeLibraryFile(t, libraryJSON)
	lib := NewLibrary(BuiltinLibrary())

	w := NewWatcher(path, lib, 0, nil)
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	profiles := lib.Profiles()
	if len(profiles) != 1 || profiles[0].Title != "Backend Engineer" {
		t.Errorf("library not replaced on start: %+v", profiles)
	}

	if err := w.Start(); err == nil {
		t.Error("second Start should fail while running")
	}
}

func TestWatcherReloadKeepsPreviousOnFailure(t *testing.T) {
	path := writeLibraryFile(t, libraryJSON)
	lib := NewLibrary(nil)

	w := NewWatcher(path, lib, 0, nil)
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	w.reload()

	profiles := lib.Profiles()
	if len(profiles) != 1 {
		t.Errorf("failed reload should keep previous snapshot, got %+v", profiles)
	}
}

func TestWatcherReloadPicksUpChanges(t *testing.T) {
	path := writeLibraryFile(t, libraryJSON)
	lib := NewLibrary(nil)

	w := NewWatcher(path, lib, 0, nil)
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	updated := `[
  {"title": "Data Analyst", "category": "business", "seniority": "mid",
   "requiredSkills": [{"term": "SQL", "weight": 3}],
   "preferredSkills": [], "commonKeywords": []}
]`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}
	w.reload()

	profiles := lib.Profiles()
	if len(profiles) != 1 || profiles[0].Title != "Data Analyst" {
		t.Errorf("reload did not pick up changes: %+v", profiles)
	}
}

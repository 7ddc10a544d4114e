package db

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	// Use temp directory for test isolation
	tmpDir := t.TempDir()

	db, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	// Verify database file was created
	dbPath := filepath.Join(tmpDir, "dayplan.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file not created at %s", dbPath)
	}

	// Verify exports directory was created
	exportsDir := filepath.Join(tmpDir, "exports")
	info, err := os.Stat(exportsDir)
	if os.IsNotExist(err) {
		t.Errorf("exports directory not created at %s", exportsDir)
	} else if !info.IsDir() {
		t.Errorf("exports path is not a directory")
	}

	// Verify WAL mode is active
	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		t.Fatalf("failed to query journal_mode: %v", err)
	}
	if journalMode != "wal" {
		t.Errorf("journal_mode = %s, want wal", journalMode)
	}

	// Verify schema was created by checking for the slots table
	var tableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='slots'").Scan(&tableName)
	if err != nil {
		t.Fatalf("slots table not found: %v", err)
	}
	if tableName != "slots" {
		t.Errorf("table name = %s, want slots", tableName)
	}
}

func TestInit_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	baseDir := filepath.Join(tmpDir, "nested", "path", ".dayplan")

	db, err := Init(baseDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	// Verify nested directories were created
	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		t.Errorf("base directory not created at %s", baseDir)
	}
}

func TestUserVersion(t *testing.T) {
	tmpDir := t.TempDir()

	db, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	// After Init, version should be CurrentSchemaVersion (migration ran)
	version, err := GetUserVersion(db)
	if err != nil {
		t.Fatalf("GetUserVersion() error = %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("user_version after Init = %d, want %d", version, CurrentSchemaVersion)
	}
}

func TestInit_MigrationIdempotent(t *testing.T) {
	tmpDir := t.TempDir()

	// First Init
	db1, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("first Init() error = %v", err)
	}
	db1.Close()

	// Second Init on same DB should succeed (migrations skip if already applied)
	db2, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	defer db2.Close()

	// Version should still be CurrentSchemaVersion
	version, err := GetUserVersion(db2)
	if err != nil {
		t.Fatalf("GetUserVersion() error = %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("user_version after second Init = %d, want %d", version, CurrentSchemaVersion)
	}
}

func TestSlots_GetAbsent(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	// Absence is not an error
	value, found, err := GetSlot(db, "activities")
	if err != nil {
		t.Fatalf("GetSlot() error = %v", err)
	}
	if found {
		t.Error("found = true, want false for absent slot")
	}
	if value != "" {
		t.Errorf("value = %q, want empty", value)
	}
}

func TestSlots_PutGet(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	if err := PutSlot(db, "activities", `[{"id":"1"}]`); err != nil {
		t.Fatalf("PutSlot() error = %v", err)
	}

	value, found, err := GetSlot(db, "activities")
	if err != nil {
		t.Fatalf("GetSlot() error = %v", err)
	}
	if !found {
		t.Fatal("found = false, want true")
	}
	if value != `[{"id":"1"}]` {
		t.Errorf("value = %q, want stored document", value)
	}
}

func TestSlots_PutOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	if err := PutSlot(db, "activities", "[]"); err != nil {
		t.Fatalf("first PutSlot() error = %v", err)
	}
	if err := PutSlot(db, "activities", `[{"id":"2"}]`); err != nil {
		t.Fatalf("second PutSlot() error = %v", err)
	}

	value, _, err := GetSlot(db, "activities")
	if err != nil {
		t.Fatalf("GetSlot() error = %v", err)
	}
	if value != `[{"id":"2"}]` {
		t.Errorf("value = %q, want the overwritten document", value)
	}
}

func TestSlots_DeleteAbsentIsNoOp(t *testing.T) {
	tmpDir := t.TempDir()
	db, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer db.Close()

	if err := DeleteSlot(db, "missing"); err != nil {
		t.Errorf("DeleteSlot() on absent key error = %v, want nil", err)
	}
}

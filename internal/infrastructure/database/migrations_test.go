package database

import "testing"

func TestParseMigrationFilename(t *testing.T) {
	tests := []struct {
		name        string
		wantVersion string
		wantUp      bool
		wantOK      bool
	}{
		{"20260115_090000_initial_schema.up.sql", "20260115_090000", true, true},
		{"20260115_090000_initial_schema.down.sql", "20260115_090000", false, true},
		{"20260115_090000_initial_schema.sql", "", false, false},
		{"readme.md", "", false, false},
		{"bad.up.sql", "", false, false},
	}

	for _, tt := range tests {
		version, isUp, ok := parseMigrationFilename(tt.name)
		if ok != tt.wantOK {
			t.Errorf("parseMigrationFilename(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if version != tt.wantVersion {
			t.Errorf("parseMigrationFilename(%q) version = %q, want %q", tt.name, version, tt.wantVersion)
		}
		if isUp != tt.wantUp {
			t.Errorf("parseMigrationFilename(%q) isUp = %v, want %v", tt.name, isUp, tt.wantUp)
		}
	}
}

func TestMigrationName(t *testing.T) {
	if got := migrationName("20260115_090000_initial_schema.up.sql"); got != "initial_schema" {
		t.Errorf("migrationName() = %q, want %q", got, "initial_schema")
	}
}

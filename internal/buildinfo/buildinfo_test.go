package buildinfo

import "testing"

func TestInfoString(t *testing.T) {
	info := Info{Name: "notepad0", Version: "1.2.3"}
	if got := info.String(); got != "notepad0 1.2.3" {
		t.Errorf("Expected 'notepad0 1.2.3', got '%s'", got)
	}
}

func TestCurrent_ReflectsLinkTimeVars(t *testing.T) {
	origName, origVersion := Name, Version
	defer func() { Name, Version = origName, origVersion }()

	Name, Version = "editor", "9.9.9"
	info := Current()
	if info.Name != "editor" || info.Version != "9.9.9" {
		t.Errorf("Expected editor/9.9.9, got %s/%s", info.Name, info.Version)
	}
	if info.Description != Description {
		t.Errorf("Expected description %q, got %q", Description, info.Description)
	}
}

package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func testPreferenceDefaults() Preferences {
	return Preferences{ShowHUD: true, ShowBasis: false, LineWidth: 1}
}

// openTestStorage points gdata at a temp directory.
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

func TestPreferencesNilManager(t *testing.T) {
	ps := NewPreferencesStore(nil, testPreferenceDefaults())

	if ps.Persistent() {
		t.Error("Expected a nil manager to be in-memory only")
	}
	if ps.Get() != testPreferenceDefaults() {
		t.Errorf("Expected defaults, got %+v", ps.Get())
	}

	ps.ToggleBasis()
	if err := ps.Save(); err != nil {
		t.Errorf("Save() without storage should not fail: %v", err)
	}
	if !ps.Get().ShowBasis {
		t.Error("Expected the in-memory toggle to stick")
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	manager := openTestStorage(t, "followcam_test_prefs")

	ps1 := NewPreferencesStore(manager, testPreferenceDefaults())
	if !ps1.Persistent() {
		t.Fatal("Expected a persistent store")
	}
	ps1.ToggleHUD()
	ps1.ToggleBasis()
	ps1.SetLineWidth(2.5)
	if err := ps1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	ps2 := NewPreferencesStore(manager, testPreferenceDefaults())
	want := Preferences{ShowHUD: false, ShowBasis: true, LineWidth: 2.5}
	if ps2.Get() != want {
		t.Errorf("Loaded %+v, want %+v", ps2.Get(), want)
	}
}

func TestPreferencesCorruptPayloadFallsBack(t *testing.T) {
	manager := openTestStorage(t, "followcam_test_prefs_corrupt")
	if err := manager.SaveObjectProp(preferencesObject, preferencesProperty, []byte("show_hud: [1, 2")); err != nil {
		t.Fatalf("Failed to seed payload: %v", err)
	}

	ps := NewPreferencesStore(manager, testPreferenceDefaults())
	if ps.Get() != testPreferenceDefaults() {
		t.Errorf("Expected defaults after a corrupt payload, got %+v", ps.Get())
	}
	if err := ps.Load(); err == nil {
		t.Error("Expected Load() to report the corrupt payload")
	}
}

func TestPreferencesZeroLineWidthUsesDefault(t *testing.T) {
	manager := openTestStorage(t, "followcam_test_prefs_width")
	if err := manager.SaveObjectProp(preferencesObject, preferencesProperty, []byte("show_hud: false\nline_width: 0\n")); err != nil {
		t.Fatalf("Failed to seed payload: %v", err)
	}

	ps := NewPreferencesStore(manager, testPreferenceDefaults())
	if ps.Get().LineWidth != 1 {
		t.Errorf("Expected default line width, got %v", ps.Get().LineWidth)
	}
	if ps.Get().ShowHUD {
		t.Error("Expected the saved ShowHUD to win")
	}
}

func TestSetLineWidthIgnoresNonPositive(t *testing.T) {
	ps := NewPreferencesStore(nil, testPreferenceDefaults())
	ps.SetLineWidth(0)
	ps.SetLineWidth(-3)
	if ps.Get().LineWidth != 1 {
		t.Errorf("Expected line width 1, got %v", ps.Get().LineWidth)
	}
}

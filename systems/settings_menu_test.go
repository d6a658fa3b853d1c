package systems

import (
	"testing"

	"github.com/kwert1k887/new-year-26/components"
	cfg "github.com/kwert1k887/new-year-26/config"
)

func TestDefaultIntensityIndex(t *testing.T) {
	got := defaultIntensityIndex()
	if cfg.SettingsMenu.IntensitySteps[got] != cfg.Fireworks.TargetCount {
		t.Fatalf("default intensity step %d does not match target count %d",
			cfg.SettingsMenu.IntensitySteps[got], cfg.Fireworks.TargetCount)
	}
}

func TestGetOrCreateSettings_SeedsFromSaved(t *testing.T) {
	loadedSettings = &SavedSettings{
		SnowEnabled:     false,
		IntensityIndex:  3,
		ResolutionIndex: 2,
		FactIndex:       4,
	}
	t.Cleanup(func() { loadedSettings = nil })

	e := newTestECS()
	s := GetOrCreateSettings(e)
	if s.SnowEnabled {
		t.Fatal("saved snow toggle not applied")
	}
	if s.IntensityIndex != 3 {
		t.Fatalf("intensity index %d, want 3", s.IntensityIndex)
	}
	if s.ResolutionIndex != 2 {
		t.Fatalf("resolution index %d, want 2", s.ResolutionIndex)
	}
	if got := GetOrCreateTrivia(e).FactIndex; got != 4 {
		t.Fatalf("fact rotation resumed at %d, want 4", got)
	}
}

func TestGetOrCreateSettings_IgnoresOutOfRangeSaved(t *testing.T) {
	loadedSettings = &SavedSettings{
		SnowEnabled:     true,
		IntensityIndex:  99,
		ResolutionIndex: -1,
	}
	t.Cleanup(func() { loadedSettings = nil })

	e := newTestECS()
	s := GetOrCreateSettings(e)
	if s.IntensityIndex != defaultIntensityIndex() {
		t.Fatalf("out-of-range intensity index accepted: %d", s.IntensityIndex)
	}
	if s.ResolutionIndex != cfg.SettingsMenu.DefaultResolutionIndex {
		t.Fatalf("out-of-range resolution index accepted: %d", s.ResolutionIndex)
	}
}

func TestAdjustSetting_IntensityWraps(t *testing.T) {
	s := &components.SettingsMenuData{SelectedOption: components.SettingIntensity}
	n := len(cfg.SettingsMenu.IntensitySteps)

	adjustSetting(s, -1)
	if s.IntensityIndex != n-1 {
		t.Fatalf("left from index 0 gave %d, want %d", s.IntensityIndex, n-1)
	}
	adjustSetting(s, 1)
	if s.IntensityIndex != 0 {
		t.Fatalf("right from last index gave %d, want 0", s.IntensityIndex)
	}
}

func TestAdjustSetting_SnowToggles(t *testing.T) {
	s := &components.SettingsMenuData{SelectedOption: components.SettingSnow, SnowEnabled: true}
	adjustSetting(s, 1)
	if s.SnowEnabled {
		t.Fatal("snow toggle did not flip off")
	}
	adjustSetting(s, -1)
	if !s.SnowEnabled {
		t.Fatal("snow toggle did not flip back on")
	}
}

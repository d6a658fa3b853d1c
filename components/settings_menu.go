package components

import "github.com/yohamta/donburi"

// SettingsOption represents rows in the settings menu
type SettingsOption int

const (
	SettingSnow SettingsOption = iota
	SettingIntensity
	SettingFullscreen
	SettingResolution
	SettingBack
)

// SettingsMenuData stores the settings screen state and the live values it
// edits. Values are applied immediately and persisted on close.
type SettingsMenuData struct {
	IsOpen         bool
	SelectedOption SettingsOption

	SnowEnabled     bool
	IntensityIndex  int // index into config.SettingsMenu.IntensitySteps
	Fullscreen      bool
	ResolutionIndex int
}

var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()

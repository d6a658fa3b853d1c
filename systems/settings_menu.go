package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kwert1k887/new-year-26/components"
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/kwert1k887/new-year-26/fonts"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton settings component. On first
// creation it seeds from the saved settings loaded at startup, or defaults.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsMenuData {
	entry, ok := components.SettingsMenu.First(e.World)
	if ok {
		return components.SettingsMenu.Get(entry)
	}

	entry = e.World.Entry(e.World.Create(components.SettingsMenu))
	s := components.SettingsMenu.Get(entry)
	s.SnowEnabled = true
	s.IntensityIndex = defaultIntensityIndex()
	s.ResolutionIndex = cfg.SettingsMenu.DefaultResolutionIndex

	if saved := loadedSettings; saved != nil {
		s.SnowEnabled = saved.SnowEnabled
		if saved.IntensityIndex >= 0 && saved.IntensityIndex < len(cfg.SettingsMenu.IntensitySteps) {
			s.IntensityIndex = saved.IntensityIndex
		}
		s.Fullscreen = saved.Fullscreen
		if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
			s.ResolutionIndex = saved.ResolutionIndex
		}
	}
	return s
}

// defaultIntensityIndex finds the step matching the config target count.
func defaultIntensityIndex() int {
	for i, step := range cfg.SettingsMenu.IntensitySteps {
		if step == cfg.Fireworks.TargetCount {
			return i
		}
	}
	return 0
}

// OpenSettings shows the settings screen.
func OpenSettings(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.IsOpen = true
	s.SelectedOption = components.SettingSnow
}

// IsSettingsOpen reports whether the settings screen is showing.
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettings(e).IsOpen
}

// UpdateSettingsMenu handles settings navigation and value changes.
// Changes apply immediately; closing persists them.
func UpdateSettingsMenu(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	if !s.IsOpen {
		return
	}
	input := getOrCreateInput(e)

	numOptions := int(components.SettingBack) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		s.SelectedOption = components.SettingsOption(
			(int(s.SelectedOption) - 1 + numOptions) % numOptions,
		)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		s.SelectedOption = components.SettingsOption(
			(int(s.SelectedOption) + 1) % numOptions,
		)
	}

	left := GetAction(input, cfg.ActionMenuLeft).JustPressed
	right := GetAction(input, cfg.ActionMenuRight).JustPressed
	if left || right {
		delta := 1
		if left {
			delta = -1
		}
		adjustSetting(s, delta)
	}

	selected := GetAction(input, cfg.ActionMenuSelect).JustPressed
	if selected && s.SelectedOption != components.SettingBack {
		adjustSetting(s, 1)
	}

	if GetAction(input, cfg.ActionMenuBack).JustPressed ||
		(selected && s.SelectedOption == components.SettingBack) {
		s.IsOpen = false
		SaveCurrentSettings(e, s)
	}
}

func adjustSetting(s *components.SettingsMenuData, delta int) {
	switch s.SelectedOption {
	case components.SettingSnow:
		s.SnowEnabled = !s.SnowEnabled
	case components.SettingIntensity:
		n := len(cfg.SettingsMenu.IntensitySteps)
		s.IntensityIndex = (s.IntensityIndex + delta + n) % n
	case components.SettingFullscreen:
		s.Fullscreen = !s.Fullscreen
		ebiten.SetFullscreen(s.Fullscreen)
	case components.SettingResolution:
		n := len(cfg.SettingsMenu.Resolutions)
		s.ResolutionIndex = (s.ResolutionIndex + delta + n) % n
		if !s.Fullscreen {
			res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
			ebiten.SetWindowSize(res.Width, res.Height)
		}
	}
}

func settingLabel(s *components.SettingsMenuData, opt components.SettingsOption) string {
	switch opt {
	case components.SettingSnow:
		return fmt.Sprintf("Snow: %s", onOff(s.SnowEnabled))
	case components.SettingIntensity:
		return fmt.Sprintf("Fireworks: %d", cfg.SettingsMenu.IntensitySteps[s.IntensityIndex])
	case components.SettingFullscreen:
		return fmt.Sprintf("Fullscreen: %s", onOff(s.Fullscreen))
	case components.SettingResolution:
		return fmt.Sprintf("Resolution: %s", cfg.SettingsMenu.Resolutions[s.ResolutionIndex].Label)
	}
	return "Back"
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

// DrawSettingsMenu renders the settings screen over the pause overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	s := GetOrCreateSettings(e)
	if !s.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height),
		cfg.Pause.OverlayColor, false)

	options := []components.SettingsOption{
		components.SettingSnow,
		components.SettingIntensity,
		components.SettingFullscreen,
		components.SettingResolution,
		components.SettingBack,
	}

	totalHeight := float64(len(options)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalHeight) / 2

	fontFace := fonts.Regular.Get()
	for i, opt := range options {
		label := settingLabel(s, opt)
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if opt == s.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		textWidth := len(label) * 9
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, label, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	hint := "Left/Right: Change   Esc: Save and close"
	hintFace := fonts.Small.Get()
	hintWidth := len(hint) * 6
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFace, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

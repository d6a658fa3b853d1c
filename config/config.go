package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all systems and renderers run on.
const Default ecs.LayerID = 0

// FireworkColor is a hue/saturation pair; lightness is chosen per draw call.
type FireworkColor struct {
	Hue        float64 // degrees, 0-360
	Saturation float64 // 0.0-1.0
}

// FireworksConfig contains the launcher and rocket simulation values
type FireworksConfig struct {
	// Launcher
	TargetCount   int // live rockets the auto-spawner maintains
	BurstSize     int // max rockets scheduled per spawn event
	StaggerFrames int // frames between staggered spawns (150ms at 60 TPS)
	FinaleCount   int // rockets launched when the countdown elapses

	// Rocket kinematics
	InitialSpeed float64 // pixels per frame at launch
	Acceleration float64 // speed multiplier per frame, > 1
	TrailLength  int     // retained positions for the fading tail
	LineWidth    float64

	// Launch/target randomization (fractions of screen size)
	TargetMinYFrac float64 // top of the target band
	TargetMaxYFrac float64 // bottom of the target band

	// Explosion sparks
	SparkCount    int     // sparks per explosion
	SparkMaxSpeed float64 // initial speed drawn from [0, SparkMaxSpeed)
	Friction      float64 // speed multiplier per frame, < 1
	Gravity       float64 // constant downward displacement per frame
	DecayMin      float64 // per-spark opacity decay lower bound
	DecayMax      float64 // per-spark opacity decay upper bound
	DecayFloor    float64 // opacity at or below this removes the spark
	SparkTrail    int     // retained positions for spark tails
	CoreRadius    float64 // bright-core radius at full opacity

	// Palette of hue/saturation pairs, one picked per rocket
	Palette []FireworkColor
}

// CountdownConfig contains the clock configuration
type CountdownConfig struct {
	TargetYear     int   // 0 = next January 1 relative to startup
	IntervalMillis int64 // wall-clock recompute cadence

	// Remaining-time thresholds (milliseconds) that trigger a bonus burst.
	// Each fires at most once; a skipped tick may silently miss one.
	ThresholdsMillis []int64
	ThresholdBurst   int // rockets per threshold celebration
}

// SnowConfig contains the snowfall decoration values
type SnowConfig struct {
	FlakeCount   int
	MinFallSpeed float64
	MaxFallSpeed float64
	SwayAmount   float64 // horizontal sway amplitude in pixels
	SwayRate     float64 // radians per frame
	MinRadius    float64
	MaxRadius    float64
}

// TriviaConfig contains the trivia modal configuration
type TriviaConfig struct {
	RotateFrames int // frames between automatic fact changes while open
	Facts        []string
}

// EntranceConfig contains the scene entrance animation values
type EntranceConfig struct {
	TitleSlide    float32 // pixels the headline slides down
	TitleDuration float32 // seconds
	TimerDuration float32 // seconds for the countdown fade-in
}

// UIConfig contains HUD text layout and colors
type UIConfig struct {
	TitleY      float64
	TimerY      float64
	HintY       float64
	TitleColor  color.RGBA
	TimerColor  color.RGBA
	HintColor   color.RGBA
	LabelColor  color.RGBA
	Title       string
	ElapsedText string
	Hint        string
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Fireworks FireworksConfig
var Countdown CountdownConfig
var Snow SnowConfig
var Trivia TriviaConfig
var Entrance EntranceConfig
var UI UIConfig
var Pause PauseConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 80, A: 255}
	SoftWhite    = color.RGBA{R: 230, G: 235, B: 245, A: 255}
	DimWhite     = color.RGBA{R: 160, G: 170, B: 190, A: 255}
	NightSky     = color.RGBA{R: 6, G: 8, B: 24, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Selected     = color.RGBA{R: 255, G: 220, B: 120, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "New Year Countdown",
	}

	Fireworks = FireworksConfig{
		TargetCount:   8,
		BurstSize:     8,
		StaggerFrames: 9, // 150ms at 60 TPS
		FinaleCount:   24,

		InitialSpeed: 2.0,
		Acceleration: 1.02,
		TrailLength:  3,
		LineWidth:    2.0,

		TargetMinYFrac: 0.08,
		TargetMaxYFrac: 0.5,

		SparkCount:    120,
		SparkMaxSpeed: 10.0,
		Friction:      0.95,
		Gravity:       1.0,
		DecayMin:      0.015,
		DecayMax:      0.03,
		DecayFloor:    0.01,
		SparkTrail:    5,
		CoreRadius:    2.5,

		// 16 hues around the wheel at two saturations
		Palette: []FireworkColor{
			{Hue: 0, Saturation: 1.0},
			{Hue: 30, Saturation: 1.0},
			{Hue: 52, Saturation: 1.0},
			{Hue: 90, Saturation: 0.9},
			{Hue: 120, Saturation: 1.0},
			{Hue: 160, Saturation: 0.9},
			{Hue: 180, Saturation: 1.0},
			{Hue: 200, Saturation: 0.9},
			{Hue: 220, Saturation: 1.0},
			{Hue: 250, Saturation: 0.9},
			{Hue: 280, Saturation: 1.0},
			{Hue: 300, Saturation: 0.9},
			{Hue: 320, Saturation: 1.0},
			{Hue: 340, Saturation: 0.9},
			{Hue: 45, Saturation: 0.6},
			{Hue: 210, Saturation: 0.6},
		},
	}

	Countdown = CountdownConfig{
		TargetYear:     0, // next January 1
		IntervalMillis: 1000,
		ThresholdsMillis: []int64{
			60 * 60 * 1000, // one hour
			10 * 60 * 1000, // ten minutes
			60 * 1000,      // one minute
		},
		ThresholdBurst: 6,
	}

	Snow = SnowConfig{
		FlakeCount:   80,
		MinFallSpeed: 0.4,
		MaxFallSpeed: 1.4,
		SwayAmount:   12.0,
		SwayRate:     0.02,
		MinRadius:    1.0,
		MaxRadius:    2.6,
	}

	Trivia = TriviaConfig{
		RotateFrames: 720, // 12s at 60 TPS
		Facts: []string{
			"The ball drop in Times Square has happened nearly every year since 1907.",
			"In Spain it is tradition to eat twelve grapes, one per chime, at midnight.",
			"Kiribati and Samoa are among the first places on Earth to enter the new year.",
			"Julius Caesar made January 1 the start of the year in 45 BC.",
			"In Denmark people smash old plates on friends' doorsteps for good luck.",
			"Auld Lang Syne was set down by Robert Burns in 1788.",
			"In Japan, temple bells ring 108 times to cleanse the 108 worldly desires.",
			"About one billion people watch the Times Square celebration each year.",
			"In Brazil, wearing white on New Year's Eve is said to bring peace.",
			"The first ball dropped in Times Square weighed 700 pounds and was lit by 100 bulbs.",
		},
	}

	Entrance = EntranceConfig{
		TitleSlide:    40,
		TitleDuration: 1.2,
		TimerDuration: 1.8,
	}

	UI = UIConfig{
		TitleY:      96,
		TimerY:      170,
		HintY:       24,
		TitleColor:  Gold,
		TimerColor:  SoftWhite,
		HintColor:   DimWhite,
		LabelColor:  DimWhite,
		Title:       "Countdown to the New Year",
		ElapsedText: "Happy New Year!",
		Hint:        "Click to launch a firework   T: trivia   Esc: menu",
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: Selected,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Trivia", "Settings", "Exit"},
	}
}

package systems

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/kwert1k887/new-year-26/archetypes"
	"github.com/kwert1k887/new-year-26/components"
	cfg "github.com/kwert1k887/new-year-26/config"
	"github.com/kwert1k887/new-year-26/fonts"
	"github.com/yohamta/donburi/ecs"
)

// timeNow is swapped out by clock tests.
var timeNow = time.Now

// NextNewYear returns the upcoming January 1, 00:00:00 in now's location.
// If config pins a target year that instant is used instead.
func NextNewYear(now time.Time) time.Time {
	year := now.Year() + 1
	if cfg.Countdown.TargetYear > 0 {
		year = cfg.Countdown.TargetYear
	}
	return time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
}

// Decompose splits a duration into display parts using millisecond integer
// division. Negative input clamps to zero; days is unbounded.
func Decompose(d time.Duration) components.TimeParts {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return components.TimeParts{
		Days:    int(ms / 86400000),
		Hours:   int(ms / 3600000 % 24),
		Minutes: int(ms / 60000 % 60),
		Seconds: int(ms / 1000 % 60),
	}
}

// CreateCountdown spawns the singleton clock entity targeting the given
// instant. A target already in the past enters the elapsed state right away
// instead of reporting negative time. Thresholds already crossed at
// construction are marked fired so they never signal retroactively.
func CreateCountdown(e *ecs.ECS, target time.Time) *components.CountdownData {
	entry := archetypes.Countdown.Spawn(e)
	now := timeNow()

	cd := &components.CountdownData{
		Target:         target,
		Interval:       time.Duration(cfg.Countdown.IntervalMillis) * time.Millisecond,
		LastTick:       now,
		Running:        true,
		ThresholdFired: make([]bool, len(cfg.Countdown.ThresholdsMillis)),
	}
	if cd.Interval <= 0 {
		cd.Interval = time.Second
	}

	remaining := target.Sub(now)
	if remaining <= 0 {
		cd.Elapsed = true
		cd.Running = false
	} else {
		cd.Remaining = Decompose(remaining)
		for i, th := range cfg.Countdown.ThresholdsMillis {
			if remaining.Milliseconds() <= th {
				cd.ThresholdFired[i] = true
			}
		}
	}

	components.Countdown.Set(entry, cd)
	return cd
}

// GetCountdown returns the singleton clock, if one exists.
func GetCountdown(e *ecs.ECS) (*components.CountdownData, bool) {
	entry, ok := components.Countdown.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Countdown.Get(entry), true
}

// UpdateCountdown recomputes the remaining time on its wall-clock cadence,
// independent of the frame rate. Crossing zero happens exactly once: the
// clock stops itself, reports all zeros and triggers the finale.
func UpdateCountdown(e *ecs.ECS) {
	cd, ok := GetCountdown(e)
	if !ok || !cd.Running || cd.Elapsed {
		return
	}

	now := timeNow()
	if now.Sub(cd.LastTick) < cd.Interval {
		return
	}
	cd.LastTick = now

	remaining := cd.Target.Sub(now)
	if remaining <= 0 {
		cd.Remaining = components.TimeParts{}
		cd.Elapsed = true
		cd.Running = false
		celebrateNewYear(e)
		return
	}
	cd.Remaining = Decompose(remaining)

	// Threshold signals use a crossing test rather than second-exact
	// equality, so cadence drift cannot skip one that is still ahead.
	// A threshold missed entirely (clock started below it) stays silent.
	for i, th := range cfg.Countdown.ThresholdsMillis {
		if !cd.ThresholdFired[i] && remaining.Milliseconds() <= th {
			cd.ThresholdFired[i] = true
			ScheduleBurst(e, cfg.Countdown.ThresholdBurst, nil, nil)
		}
	}
}

// celebrateNewYear fires the grand finale once the target instant passes.
func celebrateNewYear(e *ecs.ECS) {
	launcher := GetOrCreateLauncher(e)
	if !launcher.Running {
		return
	}
	ScheduleBurst(e, cfg.Fireworks.FinaleCount, nil, nil)
}

// FormatParts renders the decomposed time for the main display.
func FormatParts(p components.TimeParts) string {
	if p.Days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", p.Days, p.Hours, p.Minutes, p.Seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", p.Hours, p.Minutes, p.Seconds)
}

// DrawCountdown renders the headline and the remaining time, honoring the
// entrance animation's offset and alpha.
func DrawCountdown(e *ecs.ECS, screen *ebiten.Image) {
	cd, ok := GetCountdown(e)
	if !ok {
		return
	}

	width := float64(screen.Bounds().Dx())
	offset, alpha := entranceState(e)

	title := cfg.UI.Title
	timerText := FormatParts(cd.Remaining)
	if cd.Elapsed {
		title = cfg.UI.ElapsedText
		timerText = FormatParts(components.TimeParts{})
	}

	titleFace := fonts.Title.Get()
	titleWidth := len(title) * 15
	titleX := int((width - float64(titleWidth)) / 2)
	titleY := int(cfg.UI.TitleY + float64(offset))
	text.Draw(screen, title, titleFace, titleX, titleY, withAlpha(cfg.UI.TitleColor, alpha))

	timerFace := fonts.Timer.Get()
	timerWidth := len(timerText) * 22
	timerX := int((width - float64(timerWidth)) / 2)
	text.Draw(screen, timerText, timerFace, timerX, int(cfg.UI.TimerY), withAlpha(cfg.UI.TimerColor, alpha))

	hintFace := fonts.Small.Get()
	hintWidth := len(cfg.UI.Hint) * 6
	hintX := int((width - float64(hintWidth)) / 2)
	hintY := screen.Bounds().Dy() - int(cfg.UI.HintY)
	text.Draw(screen, cfg.UI.Hint, hintFace, hintX, hintY, withAlpha(cfg.UI.HintColor, alpha))
}

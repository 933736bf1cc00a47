package config

import "math"

// DifficultyManager calculates spawn intervals and scroll speed from
// distance travelled or elapsed time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the global difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(distance float64, elapsedMs int64) float64 {
	return d.level(d.cfg.Progression.MaxAt, distance, elapsedMs)
}

func (d *DifficultyManager) level(maxDistance, distance float64, elapsedMs int64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case ProgressionDistance:
		if maxDistance <= 0 {
			maxDistance = 1 // Prevent division by zero
		}
		progress = distance / maxDistance
	case ProgressionTime:
		maxAt := d.cfg.Progression.MaxAt
		if maxAt <= 0 {
			maxAt = 1
		}
		progress = float64(elapsedMs) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Interval returns the spawn interval in seconds for curve c. With
// distance progression the curve's own MaxDistance sets the pace, so the
// interval falls linearly from Base to Floor and then holds at Floor.
func (d *DifficultyManager) Interval(c SpawnCurve, distance float64, elapsedMs int64) float64 {
	level := d.level(c.MaxDistance, distance, elapsedMs)
	return c.Base - level*(c.Base-c.Floor)
}

// IntervalMs is Interval expressed in whole milliseconds.
func (d *DifficultyManager) IntervalMs(c SpawnCurve, distance float64, elapsedMs int64) int64 {
	return int64(math.Round(d.Interval(c, distance, elapsedMs) * 1000))
}

// SpeedMultiplier returns the stepped scroll speed multiplier:
// +StepIncrease every StepDistance meters, capped at Max. Fixed
// difficulty keeps the base speed.
func (d *DifficultyManager) SpeedMultiplier(distance float64) float64 {
	s := d.cfg.Speed
	if !d.IsEnabled() || s.StepDistance <= 0 {
		return 1.0
	}
	steps := math.Floor(math.Max(distance, 0) / s.StepDistance)
	return clampF(1.0+steps*s.StepIncrease, 1.0, math.Max(s.Max, 1.0))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

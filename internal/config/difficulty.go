package config

import (
	"math"
	"time"
)

// DifficultyManager evaluates the milestone table against elapsed time and
// computes the platform parameters for each level-up.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && len(d.cfg.Milestones) > 0
}

// Due returns the indices of milestones that elapsed has crossed but that
// are not yet acknowledged, in ascending order. reached is the number of
// milestones already acknowledged.
func (d *DifficultyManager) Due(elapsed time.Duration, reached int) []int {
	if !d.IsEnabled() {
		return nil
	}

	seconds := elapsed.Seconds()
	var due []int
	for i := reached; i < len(d.cfg.Milestones); i++ {
		if seconds < d.cfg.Milestones[i] {
			break
		}
		due = append(due, i)
	}
	return due
}

// NextMilestone returns the elapsed time at which the next level-up fires.
func (d *DifficultyManager) NextMilestone(reached int) (time.Duration, bool) {
	if !d.IsEnabled() || reached >= len(d.cfg.Milestones) {
		return 0, false
	}
	return time.Duration(d.cfg.Milestones[reached] * float64(time.Second)), true
}

// Speed returns the platform speed after one level-up, capped at MaxSpeed.
func (d *DifficultyManager) Speed(current float64) float64 {
	next := current + d.cfg.SpeedStep
	if d.cfg.MaxSpeed > 0 {
		next = math.Min(next, d.cfg.MaxSpeed)
	}
	return next
}

// Width returns the platform width after one level-up, floored at MinWidth.
func (d *DifficultyManager) Width(current float64) float64 {
	return math.Max(current-d.cfg.WidthStep, d.cfg.MinWidth)
}

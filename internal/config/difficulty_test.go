package config

import (
	"testing"
	"time"
)

func TestDifficultyDue(t *testing.T) {
	d := NewDifficultyManager(DefaultConfig().Difficulty)

	tests := []struct {
		name     string
		elapsed  time.Duration
		reached  int
		expected []int
	}{
		{"before first milestone", 19 * time.Second, 0, nil},
		{"exactly at first milestone", 20 * time.Second, 0, []int{0}},
		{"already acknowledged", 25 * time.Second, 1, nil},
		{"several crossed at once", 65 * time.Second, 0, []int{0, 1, 2}},
		{"resume from acknowledged", 65 * time.Second, 2, []int{2}},
		{"past the end", time.Hour, 10, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := d.Due(tc.elapsed, tc.reached)
			if len(got) != len(tc.expected) {
				t.Fatalf("Due(%v, %d) = %v, expected %v", tc.elapsed, tc.reached, got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Fatalf("Due(%v, %d) = %v, expected %v", tc.elapsed, tc.reached, got, tc.expected)
				}
			}
		})
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultConfig().Difficulty
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if due := d.Due(time.Hour, 0); due != nil {
		t.Errorf("disabled manager should never report milestones, got %v", due)
	}
	if _, ok := d.NextMilestone(0); ok {
		t.Error("disabled manager should have no next milestone")
	}
}

func TestDifficultySpeedCapped(t *testing.T) {
	d := NewDifficultyManager(DefaultConfig().Difficulty)

	speed := 100.0
	for i := 0; i < 50; i++ {
		speed = d.Speed(speed)
		if speed > 300 {
			t.Fatalf("speed exceeded max after %d level-ups: %v", i+1, speed)
		}
	}
	if speed != 300 {
		t.Errorf("speed should saturate at 300, got %v", speed)
	}
}

func TestDifficultyWidthFloored(t *testing.T) {
	d := NewDifficultyManager(DefaultConfig().Difficulty)

	width := 100.0
	for i := 0; i < 20; i++ {
		width = d.Width(width)
	}
	if width != 50 {
		t.Errorf("width should floor at 50, got %v", width)
	}
}

func TestDifficultyNextMilestone(t *testing.T) {
	d := NewDifficultyManager(DefaultConfig().Difficulty)

	next, ok := d.NextMilestone(1)
	if !ok || next != 40*time.Second {
		t.Errorf("NextMilestone(1) = %v, %v; expected 40s, true", next, ok)
	}
	if _, ok := d.NextMilestone(10); ok {
		t.Error("no milestone should follow the last one")
	}
}

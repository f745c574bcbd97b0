package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/boxcoin/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(cfg core.RuntimeConfig) {}
func (g *stubGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	return core.StepResult{}
}
func (g *stubGame) Render(dst *core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestCreateReturnsFreshInstances(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	first, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if first.ID() != "stub_a" {
		t.Errorf("created game ID = %q, expected stub_a", first.ID())
	}

	second, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if first == second {
		t.Error("each Create should build a new game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("Create should fail for unknown games")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

package towerdefense

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tui-towers/internal/config"
	"github.com/vovakirdan/tui-towers/internal/games/towerdefense/sim"
)

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		in      string
		want    Placement
		wantErr bool
	}{
		{in: "Archer@3,-2", want: Placement{Tower: "Archer", X: 3, Y: -2}},
		{in: "mage@0,0:15", want: Placement{Tower: "mage", At: 15}},
		{in: " Mage @ 1, 2 ", want: Placement{Tower: "Mage", X: 1, Y: 2}},
		{in: "Archer", wantErr: true},
		{in: "@1,2", wantErr: true},
		{in: "Archer@1", wantErr: true},
		{in: "Archer@x,2", wantErr: true},
		{in: "Archer@1,2:soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlacement(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePlacement(%q) = %+v, expected error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePlacement(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePlacement(%q) = %+v, expected %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlacementCommands(t *testing.T) {
	catalog, err := Catalog(config.DefaultTowerDefenseConfig())
	if err != nil {
		t.Fatal(err)
	}

	p := Placement{Tower: "mage", X: 2, Y: -1}
	cmds, err := p.Commands(catalog, sim.Pt(0, 0), 10)
	if err != nil {
		t.Fatalf("Commands() failed: %v", err)
	}

	want := []sim.Command{
		sim.MoveCameraCmd{Direction: sim.DirRight},
		sim.MoveCameraCmd{Direction: sim.DirRight},
		sim.MoveCameraCmd{Direction: sim.DirDown},
		sim.PlaceTowerCmd{Index: catalog.TowerIndex("Mage Tower")},
	}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands %v, expected %v", len(cmds), cmds, want)
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d = %v, expected %v", i, cmds[i], want[i])
		}
	}

	// Already at the target: only the build.
	cmds, err = p.Commands(catalog, sim.Pt(20, -10), 10)
	if err != nil || len(cmds) != 1 {
		t.Errorf("Commands() from target = %v, %v", cmds, err)
	}

	if _, err := (Placement{Tower: "Cannon"}).Commands(catalog, sim.Point{}, 10); err == nil {
		t.Error("expected error for unknown tower")
	}
}

func TestFindTower(t *testing.T) {
	catalog, err := Catalog(config.DefaultTowerDefenseConfig())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		want int
	}{
		{"Archer Tower", 0},
		{"mage tower", 1},
		{"arch", 0},
		{"Mage", 1},
		{"", -1},
		{"Cannon", -1},
	}
	for _, tt := range tests {
		if got := FindTower(catalog, tt.name); got != tt.want {
			t.Errorf("FindTower(%q) = %d, expected %d", tt.name, got, tt.want)
		}
	}

	// "Archer" is a prefix of both.
	catalog.Towers = append(catalog.Towers, &sim.TowerType{Name: "Archer Nest"})
	if got := FindTower(catalog, "archer"); got != -1 {
		t.Errorf("ambiguous prefix matched %d", got)
	}
}

func TestRunHeadlessWin(t *testing.T) {
	var ticks int
	f, err := RunHeadless(context.Background(), ModeFor(config.DifficultyNormal), winConfig(), HeadlessOptions{
		MaxTicks:   100,
		Placements: []Placement{{Tower: "Spike"}},
		OnTick:     func(Frame) { ticks++ },
	})
	if err != nil {
		t.Fatalf("RunHeadless() failed: %v", err)
	}

	if f.Outcome != "win" || f.Tick != 1 {
		t.Errorf("got %s at tick %d, expected win at tick 1", f.Outcome, f.Tick)
	}
	if f.Stats.TowersBuilt != 1 || f.Stats.Earned != 20 {
		t.Errorf("stats = %+v", f.Stats)
	}
	if ticks != 1 {
		t.Errorf("OnTick called %d times, expected 1", ticks)
	}
	if f.Mode != "towers" {
		t.Errorf("Mode = %q", f.Mode)
	}
}

func TestRunHeadlessStopsAtLimit(t *testing.T) {
	f, err := RunHeadless(context.Background(), ModeFor(config.DifficultyNormal), config.DefaultTowerDefenseConfig(), HeadlessOptions{
		MaxTicks: 5,
	})
	if err != nil {
		t.Fatalf("RunHeadless() failed: %v", err)
	}
	if f.Tick != 5 || f.Outcome != "ongoing" {
		t.Errorf("got %s at tick %d, expected ongoing at tick 5", f.Outcome, f.Tick)
	}
	if f.World.Lives != 10 || len(f.World.Enemies) == 0 {
		t.Errorf("world = lives %d, %d enemies", f.World.Lives, len(f.World.Enemies))
	}
}

func TestRunHeadlessLaterPlacement(t *testing.T) {
	f, err := RunHeadless(context.Background(), ModeFor(config.DifficultyNormal), config.DefaultTowerDefenseConfig(), HeadlessOptions{
		MaxTicks:   4,
		Placements: []Placement{{Tower: "Archer", X: 1, At: 2}},
	})
	if err != nil {
		t.Fatalf("RunHeadless() failed: %v", err)
	}
	if len(f.World.Towers) != 1 {
		t.Fatalf("got %d towers, expected 1", len(f.World.Towers))
	}
	if got := f.World.Towers[0].Position; got != sim.Pt(10, 0) {
		t.Errorf("tower at %v, expected (10, 0)", got)
	}
	if f.World.Camera != sim.Pt(10, 0) {
		t.Errorf("camera at %v, expected (10, 0)", f.World.Camera)
	}
}

func TestRunHeadlessErrors(t *testing.T) {
	mode := ModeFor(config.DifficultyNormal)
	cfg := config.DefaultTowerDefenseConfig()

	if _, err := RunHeadless(context.Background(), mode, cfg, HeadlessOptions{}); !errors.Is(err, ErrNoLimit) {
		t.Errorf("no limit: err = %v, expected ErrNoLimit", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunHeadless(ctx, mode, cfg, HeadlessOptions{MaxTicks: 10}); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled: err = %v, expected context.Canceled", err)
	}

	opts := HeadlessOptions{MaxTicks: 10, Placements: []Placement{{Tower: "Cannon"}}}
	if _, err := RunHeadless(context.Background(), mode, cfg, opts); err == nil {
		t.Error("expected error for unknown tower")
	}

	cfg.Enemies = nil
	var cfgErr sim.ConfigurationError
	if _, err := RunHeadless(context.Background(), mode, cfg, HeadlessOptions{MaxTicks: 10}); !errors.As(err, &cfgErr) {
		t.Errorf("empty catalog: err = %v, expected ConfigurationError", err)
	}
}

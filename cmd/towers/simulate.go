package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-towers/internal/games/towerdefense"
)

var (
	flagTicks  uint64
	flagPlace  []string
	flagDump   string
	flagSave   bool
	flagReport uint64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [mode]",
	Short: "Run a session without a terminal UI",
	Long: `Run a session headless with the fixed frame time from the config and
print a summary. Towers are built from --place orders of the form

  <tower>@<x>,<y>[:<tick>]

where x and y count camera steps from the origin and tick is the tick
before which the order is queued (default 0). Tower names match
case-insensitively and may be shortened to a unique prefix.

Examples:
  towers simulate --ticks 200
  towers simulate --place archer@0,0 --place mage@2,0:50
  towers simulate towers-hard --ticks 1000 --dump last.msgpack --save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&flagTicks, "ticks", 1000, "Maximum number of ticks")
	simulateCmd.Flags().StringArrayVar(&flagPlace, "place", nil, "Build order <tower>@<x>,<y>[:<tick>] (repeatable)")
	simulateCmd.Flags().StringVar(&flagDump, "dump", "", "Write the final frame as MessagePack to this file")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Record the session in the database")
	simulateCmd.Flags().Uint64Var(&flagReport, "report-every", 0, "Log a progress line every N ticks (0 = off)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger := newLogger("simulate")

	mode, err := resolveMode(args)
	if err != nil {
		return err
	}
	cfg, err := towerdefense.LoadConfig(mode.Preset)
	if err != nil {
		return err
	}

	placements := make([]towerdefense.Placement, 0, len(flagPlace))
	for _, s := range flagPlace {
		p, err := towerdefense.ParsePlacement(s)
		if err != nil {
			return err
		}
		placements = append(placements, p)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := towerdefense.HeadlessOptions{
		MaxTicks:   flagTicks,
		Placements: placements,
		Logger:     logger,
	}
	if flagReport > 0 {
		opts.OnTick = func(f towerdefense.Frame) {
			if f.Tick%flagReport == 0 {
				logger.Info("progress", "tick", f.Tick, "enemies", len(f.World.Enemies),
					"resources", f.World.Resources, "defeated", f.Stats.Defeated)
			}
		}
	}

	logger.Info("simulating", "mode", mode.ID, "ticks", flagTicks, "orders", len(placements))
	frame, runErr := towerdefense.RunHeadless(ctx, mode, cfg, opts)
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}
	if runErr != nil {
		logger.Warn("interrupted", "tick", frame.Tick)
	}

	printFrame(frame)

	if flagDump != "" {
		data, err := towerdefense.EncodeFrame(frame)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagDump, data, 0o644); err != nil {
			return fmt.Errorf("cannot write frame: %w", err)
		}
		logger.Info("frame written", "path", flagDump, "bytes", len(data))
	}

	if flagSave {
		store := openStore(logger)
		if store == nil {
			return nil
		}
		defer store.Close()
		id, err := store.SaveSession(towerdefense.SessionFrom(frame))
		if err != nil {
			return err
		}
		logger.Info("session saved", "id", id)
	}
	return nil
}

// printFrame writes a human-readable summary of a frame to stdout.
func printFrame(f towerdefense.Frame) {
	fmt.Printf("Mode:      %s\n", f.Mode)
	fmt.Printf("Outcome:   %s after %d ticks\n", f.Outcome, f.Tick)
	fmt.Printf("Resources: %d\n", f.World.Resources)
	fmt.Printf("Lives:     %d\n", f.World.Lives)
	fmt.Printf("Camera:    (%.1f, %.1f)\n", f.World.Camera.X, f.World.Camera.Y)
	fmt.Printf("Towers:    %d built, %d spent\n", f.Stats.TowersBuilt, f.Stats.Spent)
	fmt.Printf("Enemies:   %d alive, %d spawned, %d defeated\n", len(f.World.Enemies), f.Stats.Spawned, f.Stats.Defeated)
	fmt.Printf("Earned:    %d\n", f.Stats.Earned)

	if len(f.World.Towers) > 0 {
		fmt.Println()
		for _, t := range f.World.Towers {
			fmt.Printf("  %-14s at (%.1f, %.1f) range %.0f\n", t.Type, t.Position.X, t.Position.Y, t.Range)
		}
	}
}

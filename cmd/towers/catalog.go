package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-towers/internal/config"
	"github.com/vovakirdan/tui-towers/internal/games/towerdefense"
)

var (
	flagCatalogYAML     bool
	flagCatalogDefaults bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [mode]",
	Short: "Show the configured towers and enemies",
	Long: `Print the effective configuration of a mode after the difficulty preset
is applied.

With --yaml the whole configuration is printed as YAML, ready to be saved
as ~/.arcade/configs/towers.yaml and edited. --defaults prints the
built-in file instead.

Examples:
  towers catalog
  towers catalog towers-hard
  towers catalog --defaults > ~/.arcade/configs/towers.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().BoolVar(&flagCatalogYAML, "yaml", false, "Print the effective config as YAML")
	catalogCmd.Flags().BoolVar(&flagCatalogDefaults, "defaults", false, "Print the built-in towers.yaml")
}

func runCatalog(_ *cobra.Command, args []string) error {
	if flagCatalogDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	mode, err := resolveMode(args)
	if err != nil {
		return err
	}
	cfg, err := towerdefense.LoadConfig(mode.Preset)
	if err != nil {
		return err
	}

	if flagCatalogYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("cannot encode config: %w", err)
		}
		return enc.Close()
	}

	fmt.Printf("%s\n\n", mode.Title)
	fmt.Printf("Start: %d resources, %d lives\n\n", cfg.Player.Resources, cfg.Player.Lives)

	fmt.Printf("  %-16s  %6s  %6s  %6s  %5s\n", "Tower", "Cost", "Damage", "Range", "Rate")
	fmt.Printf("  %-16s  %6s  %6s  %6s  %5s\n", "-----", "----", "------", "-----", "----")
	for _, t := range cfg.Towers {
		fmt.Printf("  %-16s  %6d  %6d  %6.0f  %5.1f\n", t.Name, t.Cost, t.Damage, t.Range, t.RateOfFire)
	}

	fmt.Println()
	fmt.Printf("  %-16s  %6s  %6s  %6s\n", "Enemy", "HP", "Speed", "Reward")
	fmt.Printf("  %-16s  %6s  %6s  %6s\n", "-----", "--", "-----", "------")
	for _, e := range cfg.Enemies {
		fmt.Printf("  %-16s  %6d  %6.1f  %6d\n", e.Name, e.HitPoints, e.Speed, e.Reward)
	}
	return nil
}

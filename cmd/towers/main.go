// towers is a terminal tower defense game built on a deterministic
// simulation core.
//
// Usage:
//
//	towers list                  - List game modes
//	towers play [mode]           - Play a mode in this terminal
//	towers menu                  - Pick modes interactively
//	towers simulate [mode]       - Run a session headless
//	towers inspect <frame>       - Print a dumped frame
//	towers catalog               - Show the configured towers and enemies
//	towers scores [mode]         - Show recorded sessions
//	towers serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.arcade/towers.db)
//	--config <path>       - Use a custom towers.yaml
//	--difficulty <name>   - easy, normal or hard when no mode is given
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-towers/internal/games/towerdefense"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "towers",
	Short: "Tower defense in your terminal",
	Long: `Towers is a terminal tower defense game. Enemies spawn every tick and
walk toward your base; build towers at the camera to stop them.

Available commands:
  list      - Show all game modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  simulate  - Run a session without a terminal UI
  inspect   - Print a frame written by simulate --dump
  catalog   - Show the configured towers and enemies
  scores    - View recorded sessions
  serve     - Start SSH server for remote play

Examples:
  towers play
  towers play towers-hard
  towers simulate --ticks 500 --place archer@0,0
  towers serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		log.SetLevel(level)
		towerdefense.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/towers.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom towers.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset when no mode is given: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs of interactive sessions to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
